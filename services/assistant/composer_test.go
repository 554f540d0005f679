package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedula/models"
)

func TestComposeSuggestionsAlwaysPresent(t *testing.T) {
	day := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	created := models.Booking{
		Title:     "Training Session",
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
	}

	results := []*models.CommandResult{
		{Intent: models.IntentUnknown},
		{Intent: models.IntentDateQuery, TargetDate: &fixedNow},
		{Intent: models.IntentFreeSlots, TargetDate: &day, TotalSlots: 9,
			FreeSlots: []models.FreeSlot{{Date: day, TimeSlots: []models.SlotRange{{Start: "9:00 AM", End: "10:00 AM"}}}}},
		{Intent: models.IntentFreeSlots, TargetDate: &day},
		{Intent: models.IntentCreate, ActionTaken: true, BookingCreated: true, Booking: &created},
		{Intent: models.IntentCreate, Err: "Cannot create sessions for past dates. Please choose a current or future date."},
		{Intent: models.IntentDelete, ActionTaken: true, TargetDate: &day, DeletedCount: 2,
			DeletedBookings: []models.Booking{created, created}},
		{Intent: models.IntentDelete, ActionTaken: true, TargetDate: &day},
		{Intent: models.IntentDelete, Err: "Please specify a date for the delete operation."},
		{Intent: models.IntentUpdate, ActionTaken: true, UpdatedBooking: &created, OriginalBooking: &created},
		{Intent: models.IntentUpdate, Err: "Please specify a new time for the update."},
		{Intent: models.IntentList, ActionTaken: true, Bookings: []models.Booking{created}},
		{Intent: models.IntentList, ActionTaken: true},
	}

	var c Composer
	for _, result := range results {
		resp := c.Compose(result, fixedNow)
		count := len(resp.Suggestions)
		assert.GreaterOrEqual(t, count, 3, "intent %s", result.Intent)
		assert.LessOrEqual(t, count, 4, "intent %s", result.Intent)
		assert.NotEmpty(t, resp.Response)
	}
}

func TestComposeDateQuery(t *testing.T) {
	var c Composer
	resp := c.Compose(&models.CommandResult{Intent: models.IntentDateQuery}, fixedNow)

	assert.Contains(t, resp.Response, "Saturday, July 5, 2025")
	assert.False(t, resp.ActionTaken)
}

func TestComposeCreateSuccess(t *testing.T) {
	day := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	created := models.Booking{
		Title:      "Azure Training",
		ClientName: "Client",
		StartTime:  day.Add(14 * time.Hour),
		EndTime:    day.Add(16 * time.Hour),
	}

	var c Composer
	resp := c.Compose(&models.CommandResult{
		Intent: models.IntentCreate, ActionTaken: true, BookingCreated: true, Booking: &created,
	}, fixedNow)

	assert.True(t, resp.BookingCreated)
	assert.Contains(t, resp.Response, "Azure Training")
	assert.Contains(t, resp.Response, "Monday, July 7, 2025")
	assert.Contains(t, resp.Response, "2:00 PM")
	assert.Contains(t, resp.Response, "4:00 PM")
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2h", resp.Bookings[0].Duration)
}

func TestComposeDeleteVariants(t *testing.T) {
	day := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	var c Composer

	t.Run("deletions listed", func(t *testing.T) {
		resp := c.Compose(&models.CommandResult{
			Intent: models.IntentDelete, ActionTaken: true, TargetDate: &day,
			DeletedCount: 2,
			DeletedBookings: []models.Booking{
				{Title: "Morning Standup"},
				{Title: "Python Training"},
			},
		}, fixedNow)

		assert.Contains(t, resp.Response, "deleted 2 sessions")
		assert.Contains(t, resp.Response, "Morning Standup")
		assert.Contains(t, resp.Response, "Python Training")
	})

	t.Run("empty day", func(t *testing.T) {
		resp := c.Compose(&models.CommandResult{
			Intent: models.IntentDelete, ActionTaken: true, TargetDate: &day,
		}, fixedNow)

		assert.Contains(t, resp.Response, "No sessions found to delete")
	})
}

func TestComposeListTables(t *testing.T) {
	day := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	var c Composer

	resp := c.Compose(&models.CommandResult{
		Intent: models.IntentList, ActionTaken: true,
		Bookings: []models.Booking{
			{Title: "Training Session", ClientName: "Acme", StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10*time.Hour + 30*time.Minute)},
		},
	}, fixedNow)

	require.Len(t, resp.Bookings, 1)
	row := resp.Bookings[0]
	assert.Equal(t, "Mon, Jul 7", row.Date)
	assert.Equal(t, "9:00 AM - 10:30 AM", row.Time)
	assert.Equal(t, "1.5h", row.Duration)
	assert.Equal(t, "Acme", row.Client)
}

func TestComposeFreeSlotsTables(t *testing.T) {
	day := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	var c Composer

	resp := c.Compose(&models.CommandResult{
		Intent: models.IntentFreeSlots, TargetDate: &day, TotalSlots: 2,
		FreeSlots: []models.FreeSlot{{
			Date: day,
			TimeSlots: []models.SlotRange{
				{Start: "9:00 AM", End: "10:00 AM"},
				{Start: "3:00 PM", End: "4:00 PM"},
			},
		}},
	}, fixedNow)

	require.Len(t, resp.FreeSlots, 1)
	row := resp.FreeSlots[0]
	assert.Equal(t, "Jul 7", row.Date)
	assert.Equal(t, "Mon", row.Day)
	assert.Equal(t, 2, row.Count)
	assert.Equal(t, []string{"9:00 AM - 10:00 AM", "3:00 PM - 4:00 PM"}, row.TimeSlots)
}

func TestComposeUnknownGreets(t *testing.T) {
	var c Composer
	resp := c.Compose(&models.CommandResult{Intent: models.IntentUnknown}, fixedNow)

	assert.Contains(t, resp.Response, "Schedula")
	assert.False(t, resp.ActionTaken)
	assert.False(t, resp.BookingCreated)
}
