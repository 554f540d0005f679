package models

import "time"

// Conversation is one persisted chat exchange (transcript record).
type Conversation struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"session_id" json:"sessionId"`
	Message   string    `bson:"message" json:"message"`
	Response  string    `bson:"response" json:"response"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
