package conversationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"schedula/config"
	"schedula/database"
	"schedula/models"
)

// MongoConversationRepo implements Repository using MongoDB.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo constructs a new instance of MongoConversationRepo.
func NewMongoConversationRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoConversationRepo{coll: db.Collection("conversations")}
}

// Save inserts one chat exchange.
func (repo *MongoConversationRepo) Save(ctx context.Context, conv *models.Conversation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now()
	}
	if _, err := repo.coll.InsertOne(ctx, conv); err != nil {
		return fmt.Errorf("error saving conversation: %w", err)
	}
	return nil
}

// DeleteOlderThan removes transcripts created before the cutoff.
func (repo *MongoConversationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("error pruning conversations: %w", err)
	}
	return res.DeletedCount, nil
}
