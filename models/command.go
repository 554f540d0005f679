package models

import "time"

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentCreate    Intent = "create"
	IntentUpdate    Intent = "update"
	IntentDelete    Intent = "delete"
	IntentList      Intent = "list"
	IntentFreeSlots Intent = "free_slots"
	IntentDateQuery Intent = "date_query"
	IntentUnknown   Intent = "unknown"
)

// ClockTime is a wall-clock time of day without a date component.
type ClockTime struct {
	Hour   int `json:"hour"`   // 0-23
	Minute int `json:"minute"` // 0-59
}

// ExtractedCommand is the structured form of a free-text scheduling request.
// Confidence is an additive score from matched cues, not a probability; the
// executor acts only when it clears the intent's activation threshold.
type ExtractedCommand struct {
	Intent       Intent     `json:"intent"`
	Date         *time.Time `json:"date,omitempty"`     // calendar date, normalized to local midnight
	Time         *ClockTime `json:"time,omitempty"`     // session start; for update, the new start
	EndTime      *ClockTime `json:"endTime,omitempty"`  // explicit end; wins over Duration when present
	Duration     float64    `json:"duration,omitempty"` // hours; 0 means unspecified
	Category     string     `json:"category,omitempty"` // from the fixed vocabulary; "" means unspecified
	Confidence   int        `json:"confidence"`
	IsRangeQuery bool       `json:"isRangeQuery"` // free-slot query over a whole month
}

// SlotRange is a single free time slot rendered as start/end labels.
type SlotRange struct {
	Start string `json:"start"` // e.g., "9:00 AM"
	End   string `json:"end"`   // e.g., "10:00 AM"
}

// FreeSlot lists the free slots of one calendar day. Derived, never persisted.
type FreeSlot struct {
	Date      time.Time   `json:"date"`
	TimeSlots []SlotRange `json:"timeSlots"`
}

// CommandResult is the structured outcome of executing one command. Every
// branch produces one; Err carries a user-facing message when the command was
// rejected, SystemError marks collaborator failures whose detail stays in logs.
type CommandResult struct {
	Intent          Intent
	ActionTaken     bool
	BookingCreated  bool
	Booking         *Booking  // created booking (create)
	UpdatedBooking  *Booking  // update
	OriginalBooking *Booking  // booking state before update
	DeletedCount    int       // delete
	DeletedBookings []Booking // the deletions that succeeded
	Bookings        []Booking // list
	FreeSlots       []FreeSlot
	TotalSlots      int
	TargetDate      *time.Time // the day/month the free-slot or list query resolved to
	IsRangeQuery    bool
	Err             string
	SystemError     bool
}
