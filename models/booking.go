package models

import "time"

// Booking represents a confirmed calendar booking record.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID, assigned on create)
	Title       string    `bson:"title" json:"title"`             // e.g., "Azure Training"
	Description string    `bson:"description" json:"description"` // Free-text description
	Category    string    `bson:"category" json:"category"`       // e.g., "Training", "Meeting"
	ClientName  string    `bson:"client_name" json:"clientName"`  // Who the session is for
	StartTime   time.Time `bson:"start_time" json:"startTime"`    // Session start
	EndTime     time.Time `bson:"end_time" json:"endTime"`        // Session end, strictly after start
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`    // Timestamp when booking was created
}

// DurationHours returns the booking length in hours.
func (b Booking) DurationHours() float64 {
	return b.EndTime.Sub(b.StartTime).Hours()
}
