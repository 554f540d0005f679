package assistant

import (
	"time"

	"schedula/models"
)

// Scheduling policy defaults for under-specified create requests.
const (
	defaultStartHour      = 10
	defaultDurationHours  = 1
	defaultCategory       = "Training"
	defaultTitle          = "Training Session"
	defaultClientName     = "Client" // no client-identity extraction exists yet
	bookingDescription    = "Session scheduled via Schedula"
)

// BookingDefaults holds the fully resolved fields for a create command.
type BookingDefaults struct {
	StartTime  time.Time
	EndTime    time.Time
	Category   string
	ClientName string
	Title      string
}

// ApplyDefaults fills the gaps of an extracted create command: missing date
// means tomorrow, missing time means 10:00, missing duration means one hour.
// An explicit end time wins over any duration.
func ApplyDefaults(cmd models.ExtractedCommand, now time.Time) BookingDefaults {
	date := dateOnly(now.AddDate(0, 0, 1))
	if cmd.Date != nil {
		date = dateOnly(*cmd.Date)
	}

	hour, minute := defaultStartHour, 0
	if cmd.Time != nil {
		hour, minute = cmd.Time.Hour, cmd.Time.Minute
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())

	var end time.Time
	if cmd.EndTime != nil {
		end = time.Date(date.Year(), date.Month(), date.Day(), cmd.EndTime.Hour, cmd.EndTime.Minute, 0, 0, date.Location())
	} else {
		duration := cmd.Duration
		if duration <= 0 {
			duration = defaultDurationHours
		}
		end = start.Add(time.Duration(duration * float64(time.Hour)))
	}

	category := cmd.Category
	if category == "" {
		category = defaultCategory
	}
	title := defaultTitle
	if cmd.Category != "" {
		title = cmd.Category + " Training"
	}

	return BookingDefaults{
		StartTime:  start,
		EndTime:    end,
		Category:   category,
		ClientName: defaultClientName,
		Title:      title,
	}
}
