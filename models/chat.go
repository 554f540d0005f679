package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`                 // conversation identifier; optional
	Message   string `json:"message" binding:"required"` // user's free-text request
}

// BookingRow is one row of a bookings table, ready for an external renderer.
type BookingRow struct {
	Title    string `json:"title"`
	Date     string `json:"date"`     // e.g., "Sat, Jul 12"
	Time     string `json:"time"`     // e.g., "2:00 PM - 3:00 PM"
	Duration string `json:"duration"` // e.g., "1h"
	Client   string `json:"client"`
}

// FreeSlotRow is one row of a free-slots table.
type FreeSlotRow struct {
	Date      string   `json:"date"` // e.g., "Jul 12"
	Day       string   `json:"day"`  // e.g., "Sat"
	TimeSlots []string `json:"timeSlots"`
	Count     int      `json:"count"`
}

// ChatResponse is what the chat handler returns to the frontend. Tables are
// ordered row sequences; rendering (HTML, markdown, TUI) is the caller's job.
type ChatResponse struct {
	Response       string        `json:"response"`
	Suggestions    []string      `json:"suggestions"` // always 3-4 entries
	ActionTaken    bool          `json:"actionTaken"`
	BookingCreated bool          `json:"bookingCreated"`
	Bookings       []BookingRow  `json:"bookings,omitempty"`
	FreeSlots      []FreeSlotRow `json:"freeSlots,omitempty"`
}

// ConversationContext is the last-extracted-info cache kept per session. A bare
// confirmation ("yes", "go ahead") replays the cached create command.
type ConversationContext struct {
	LastCommand *ExtractedCommand `json:"lastCommand,omitempty"`
}
