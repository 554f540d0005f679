package assistant

import (
	"fmt"
	"strings"
	"time"

	"schedula/models"
)

// Date and time layouts used in user-facing text.
const (
	fullDateLayout  = "Monday, January 2, 2006"
	shortDateLayout = "Jan 2"
	rowDateLayout   = "Mon, Jan 2"
	clockLayout     = "3:04 PM"
)

const greetingResponse = "I'm Schedula, your scheduling assistant! I can help you book training sessions and view your calendar. What would you like to do?"

var greetingSuggestions = []string{
	"Book a training session tomorrow at 2 PM",
	"Show me my calendar for July 12",
	"Schedule a meeting for today",
	"What sessions do I have this week?",
}

// Composer turns executor results into user-facing replies. It is pure
// presentation: response text, a suggestion list, and tables as data rows.
// It never embeds markup.
type Composer struct{}

// Compose builds the reply for one executed command. Suggestions always carry
// 3-4 entries reflecting the branch taken.
func (Composer) Compose(result *models.CommandResult, now time.Time) models.ChatResponse {
	switch result.Intent {
	case models.IntentDateQuery:
		return composeDateQuery(now)
	case models.IntentFreeSlots:
		return composeFreeSlots(result)
	case models.IntentCreate:
		return composeCreate(result)
	case models.IntentDelete:
		return composeDelete(result)
	case models.IntentUpdate:
		return composeUpdate(result)
	case models.IntentList:
		return composeList(result)
	default:
		return models.ChatResponse{
			Response:    greetingResponse,
			Suggestions: greetingSuggestions,
		}
	}
}

func composeDateQuery(now time.Time) models.ChatResponse {
	return models.ChatResponse{
		Response: fmt.Sprintf("Today is %s. What would you like to schedule for today or another date?",
			now.Format(fullDateLayout)),
		Suggestions: []string{
			"Schedule a meeting for today",
			"Show my calendar for this week",
			"Book a training session tomorrow",
			"What are my free slots today?",
		},
	}
}

func composeFreeSlots(result *models.CommandResult) models.ChatResponse {
	rangeText := "this month"
	if !result.IsRangeQuery && result.TargetDate != nil {
		rangeText = result.TargetDate.Format(fullDateLayout)
	}

	if result.SystemError {
		return models.ChatResponse{
			Response: result.Err,
			Suggestions: []string{
				"Show my calendar for today",
				"Book a training session",
				"Check my schedule for this week",
			},
		}
	}

	if len(result.FreeSlots) == 0 {
		return models.ChatResponse{
			Response: fmt.Sprintf("No free slots found for %s. Your calendar is fully booked during business hours on weekdays.", rangeText),
			Suggestions: []string{
				"Show my bookings for today",
				"Schedule a meeting for next week",
				"Check free slots for tomorrow",
				"Book a training session next month",
			},
		}
	}

	rows := make([]models.FreeSlotRow, 0, len(result.FreeSlots))
	for _, fs := range result.FreeSlots {
		var slots []string
		for _, sr := range fs.TimeSlots {
			slots = append(slots, sr.Start+" - "+sr.End)
		}
		rows = append(rows, models.FreeSlotRow{
			Date:      fs.Date.Format(shortDateLayout),
			Day:       fs.Date.Format("Mon"),
			TimeSlots: slots,
			Count:     len(fs.TimeSlots),
		})
	}

	bookTarget := "the next available slot"
	if !result.IsRangeQuery && result.TargetDate != nil {
		bookTarget = result.TargetDate.Format(fullDateLayout)
	}
	return models.ChatResponse{
		Response: fmt.Sprintf("You have %d free time slots for %s during business hours on weekdays. You can book any of them by asking me to schedule a session.",
			result.TotalSlots, rangeText),
		FreeSlots: rows,
		Suggestions: []string{
			"Book a training for " + bookTarget,
			"Show my current bookings",
			"Schedule a meeting tomorrow",
			"Check free slots for next week",
		},
	}
}

func composeCreate(result *models.CommandResult) models.ChatResponse {
	if result.Err != "" {
		return models.ChatResponse{
			Response: fmt.Sprintf("I wasn't able to create that booking. %s", result.Err),
			Suggestions: []string{
				"Try a different time slot",
				"Book for tomorrow instead",
				"Show me my calendar first",
				"Schedule for next week",
			},
		}
	}

	b := result.Booking
	return models.ChatResponse{
		Response: fmt.Sprintf("Perfect! I've booked your %s for %s from %s to %s. The booking is confirmed!",
			b.Title,
			b.StartTime.Format(fullDateLayout),
			b.StartTime.Format(clockLayout),
			b.EndTime.Format(clockLayout)),
		ActionTaken:    true,
		BookingCreated: true,
		Bookings:       []models.BookingRow{bookingRow(*b)},
		Suggestions: []string{
			"Show me my updated calendar",
			"Book another session this week",
			"Schedule a follow-up meeting",
			"What's my availability tomorrow?",
		},
	}
}

func composeDelete(result *models.CommandResult) models.ChatResponse {
	if result.Err != "" {
		return models.ChatResponse{
			Response: fmt.Sprintf("I wasn't able to delete those sessions. %s", result.Err),
			Suggestions: []string{
				"Show me my calendar first",
				"Try specifying a date",
				"Cancel a specific session",
				"Clear a different date",
			},
		}
	}

	dateText := "the specified date"
	if result.TargetDate != nil {
		dateText = result.TargetDate.Format(fullDateLayout)
	}

	var response string
	if result.DeletedCount > 0 {
		plural := ""
		if result.DeletedCount > 1 {
			plural = "s"
		}
		response = fmt.Sprintf("Successfully deleted %d session%s from %s. Your calendar has been updated!",
			result.DeletedCount, plural, dateText)

		titles := make([]string, 0, len(result.DeletedBookings))
		for _, b := range result.DeletedBookings {
			titles = append(titles, b.Title)
		}
		response += fmt.Sprintf("\n\nDeleted sessions: %s", strings.Join(titles, ", "))
	} else {
		response = fmt.Sprintf("No sessions found to delete on %s. Your calendar is already clear for that date.", dateText)
	}

	return models.ChatResponse{
		Response:    response,
		ActionTaken: true,
		Suggestions: []string{
			"Show me my updated calendar",
			"Book a new session",
			"Check my availability",
			"View next week's schedule",
		},
	}
}

func composeUpdate(result *models.CommandResult) models.ChatResponse {
	if result.Err != "" {
		return models.ChatResponse{
			Response: fmt.Sprintf("I wasn't able to update that session. %s", result.Err),
			Suggestions: []string{
				"Show me my calendar first",
				"Try a different time",
				"Specify the date to update",
				"Book a new session instead",
			},
		}
	}

	updated := result.UpdatedBooking
	return models.ChatResponse{
		Response: fmt.Sprintf("Perfect! I've updated your %q session to %s at %s - %s. The update is confirmed!",
			updated.Title,
			updated.StartTime.Format(fullDateLayout),
			updated.StartTime.Format(clockLayout),
			updated.EndTime.Format(clockLayout)),
		ActionTaken: true,
		Bookings:    []models.BookingRow{bookingRow(*updated)},
		Suggestions: []string{
			"Show me my updated calendar",
			"Make another change",
			"Book a new session",
			"Check my availability",
		},
	}
}

func composeList(result *models.CommandResult) models.ChatResponse {
	if result.SystemError {
		return models.ChatResponse{
			Response: result.Err,
			Suggestions: []string{
				"Book a training session",
				"Show my calendar for today",
				"Check my schedule for this week",
			},
		}
	}

	rangeText := "the next 7 days"
	if result.TargetDate != nil {
		rangeText = result.TargetDate.Format(fullDateLayout)
	}

	if len(result.Bookings) == 0 {
		return models.ChatResponse{
			Response:    fmt.Sprintf("You don't have any sessions scheduled for %s. Would you like to book something?", rangeText),
			ActionTaken: true,
			Suggestions: []string{
				"Book a training session tomorrow",
				"Schedule a meeting for this week",
				"Set up a consultation call",
				"Plan a team workshop",
			},
		}
	}

	rows := make([]models.BookingRow, 0, len(result.Bookings))
	for _, b := range result.Bookings {
		rows = append(rows, bookingRow(b))
	}
	return models.ChatResponse{
		Response:    fmt.Sprintf("Here are your scheduled sessions for %s.", rangeText),
		ActionTaken: true,
		Bookings:    rows,
		Suggestions: []string{
			"Book another session",
			"Show me next week's calendar",
			"Schedule a meeting for tomorrow",
			"Check my availability",
		},
	}
}

func bookingRow(b models.Booking) models.BookingRow {
	client := b.ClientName
	if client == "" {
		client = "Not specified"
	}
	return models.BookingRow{
		Title:    b.Title,
		Date:     b.StartTime.Format(rowDateLayout),
		Time:     b.StartTime.Format(clockLayout) + " - " + b.EndTime.Format(clockLayout),
		Duration: formatDuration(b.DurationHours()),
		Client:   client,
	}
}

func formatDuration(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}
