package assistant

import (
	"context"
	"time"

	"go.uber.org/zap"

	conversationRepo "schedula/database/repository/conversation"
	"schedula/models"
)

// AssistantService defines the conversational scheduling API.
type AssistantService interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// DefaultAssistantService wires extraction, execution, and composition into
// the full message pipeline. Now is injectable so tests can pin the clock.
type DefaultAssistantService struct {
	Extractor *Extractor
	Executor  *Executor
	Composer  Composer
	CtxStore  ContextStore
	ConvRepo  conversationRepo.Repository
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewAssistantService(
	extractor *Extractor,
	executor *Executor,
	ctxStore ContextStore,
	convRepo conversationRepo.Repository,
	logger *zap.Logger,
) *DefaultAssistantService {
	return &DefaultAssistantService{
		Extractor: extractor,
		Executor:  executor,
		CtxStore:  ctxStore,
		ConvRepo:  convRepo,
		Logger:    logger,
		Now:       time.Now,
	}
}

const defaultSessionID = "default"

func (s *DefaultAssistantService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	now := s.Now()
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	convCtx := s.loadContext(ctx, sessionID)

	cmd := s.Extractor.Extract(req.Message, now)

	// A bare confirmation ("yes", "book it") carries no details of its own;
	// fill them in from the pending command of the same session.
	if isBareConfirmation(cmd) && convCtx.LastCommand != nil && convCtx.LastCommand.Intent == models.IntentCreate {
		prev := convCtx.LastCommand
		cmd.Date = prev.Date
		cmd.Time = prev.Time
		cmd.EndTime = prev.EndTime
		cmd.Duration = prev.Duration
		cmd.Category = prev.Category
	}

	result := s.Executor.Execute(ctx, cmd, now)
	resp := s.Composer.Compose(result, now)

	s.saveContext(ctx, sessionID, &models.ConversationContext{LastCommand: &cmd})
	s.saveTranscript(ctx, sessionID, req.Message, resp.Response, now)

	return &resp, nil
}

func (s *DefaultAssistantService) loadContext(ctx context.Context, sessionID string) *models.ConversationContext {
	convCtx, err := s.CtxStore.Get(ctx, sessionID)
	if err != nil {
		s.Logger.Warn("failed to load conversation context",
			zap.String("session_id", sessionID), zap.Error(err))
		return &models.ConversationContext{}
	}
	return convCtx
}

func (s *DefaultAssistantService) saveContext(ctx context.Context, sessionID string, convCtx *models.ConversationContext) {
	if err := s.CtxStore.Set(ctx, sessionID, convCtx); err != nil {
		s.Logger.Warn("failed to save conversation context",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}

// saveTranscript records the exchange for later review. A storage failure must
// not fail the chat turn, so errors are only logged.
func (s *DefaultAssistantService) saveTranscript(ctx context.Context, sessionID, message, response string, now time.Time) {
	conv := &models.Conversation{
		SessionID: sessionID,
		Message:   message,
		Response:  response,
		CreatedAt: now,
	}
	if err := s.ConvRepo.Save(ctx, conv); err != nil {
		s.Logger.Warn("failed to persist conversation transcript",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}

// isBareConfirmation reports whether the command came from a confirmation
// phrase alone, with no scheduling details extracted from the message itself.
func isBareConfirmation(cmd models.ExtractedCommand) bool {
	return cmd.Intent == models.IntentCreate &&
		cmd.Date == nil && cmd.Time == nil && cmd.Category == ""
}
