package conversationRepo

import (
	"context"
	"time"

	"schedula/models"
)

// Repository defines the persistence contract for chat transcripts.
type Repository interface {
	// Save persists one chat exchange, assigning its id.
	Save(ctx context.Context, conv *models.Conversation) error
	// DeleteOlderThan removes transcripts created before the cutoff,
	// returning the number deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
