package assistant

import (
	"context"
	"encoding/json"
	"time"

	"schedula/models"

	"github.com/go-redis/redis/v8"
)

const sessionContextPrefix = "schedula:ctx:"

// ContextStore persists per-session conversation context between messages.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationContext, error)
	Set(ctx context.Context, sessionID string, convCtx *models.ConversationContext) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.ConversationContext, error) {
	key := sessionContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ConversationContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var convCtx models.ConversationContext
	if err := json.Unmarshal([]byte(data), &convCtx); err != nil {
		return nil, err
	}
	return &convCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, convCtx *models.ConversationContext) error {
	key := sessionContextPrefix + sessionID
	b, err := json.Marshal(convCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	key := sessionContextPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
