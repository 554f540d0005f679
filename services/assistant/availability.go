package assistant

import (
	"context"
	"fmt"
	"time"

	bookingRepo "schedula/database/repository/booking"
	"schedula/models"
)

// AvailabilityEngine computes free business-hour slots against existing
// bookings. The grid defaults to 9:00-18:00, one-hour slots, weekdays only.
type AvailabilityEngine struct {
	Repo              bookingRepo.Repository
	WorkingStartHour  int
	WorkingEndHour    int // exclusive
	SlotDurationHours int
}

// NewAvailabilityEngine constructs an engine with the default business grid.
func NewAvailabilityEngine(repo bookingRepo.Repository) *AvailabilityEngine {
	return &AvailabilityEngine{
		Repo:              repo,
		WorkingStartHour:  9,
		WorkingEndHour:    18,
		SlotDurationHours: 1,
	}
}

// ComputeFreeSlots scans the target range and returns each day's free slots in
// chronological order, plus the total count. A range query covers the whole
// calendar month containing date; otherwise only date's own day is scanned.
// Weekends contribute no slots. Days before today are skipped entirely; today
// is included whole, elapsed hours and all.
func (e *AvailabilityEngine) ComputeFreeSlots(ctx context.Context, date time.Time, isRangeQuery bool, now time.Time) ([]models.FreeSlot, int, error) {
	var firstDay, lastDay time.Time
	if isRangeQuery {
		firstDay = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		lastDay = firstDay.AddDate(0, 1, -1)
	} else {
		firstDay = dateOnly(date)
		lastDay = firstDay
	}

	rangeEnd := lastDay.Add(24*time.Hour - time.Millisecond)
	bookings, err := e.Repo.FindByTimeRange(ctx, firstDay, rangeEnd)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch bookings for availability: %w", err)
	}

	today := dateOnly(now)
	var freeSlots []models.FreeSlot
	totalSlots := 0

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if day.Before(today) {
			continue
		}

		dayEnd := day.Add(24*time.Hour - time.Millisecond)
		var dayBookings []models.Booking
		for _, b := range bookings {
			if !b.StartTime.Before(day) && !b.StartTime.After(dayEnd) {
				dayBookings = append(dayBookings, b)
			}
		}

		var slots []models.SlotRange
		for hour := e.WorkingStartHour; hour < e.WorkingEndHour; hour += e.SlotDurationHours {
			slotStart := day.Add(time.Duration(hour) * time.Hour)
			slotEnd := slotStart.Add(time.Duration(e.SlotDurationHours) * time.Hour)

			if hasConflict(slotStart, slotEnd, dayBookings) {
				continue
			}
			slots = append(slots, models.SlotRange{
				Start: slotStart.Format("3:04 PM"),
				End:   slotEnd.Format("3:04 PM"),
			})
			totalSlots++
		}

		// Fully booked days are omitted rather than reported empty.
		if len(slots) > 0 {
			freeSlots = append(freeSlots, models.FreeSlot{Date: day, TimeSlots: slots})
		}
	}

	return freeSlots, totalSlots, nil
}

// hasConflict reports whether any booking overlaps the half-open slot
// [slotStart, slotEnd): a booking ending exactly at the slot start (or
// starting exactly at the slot end) does not conflict.
func hasConflict(slotStart, slotEnd time.Time, bookings []models.Booking) bool {
	for _, b := range bookings {
		if slotStart.Before(b.EndTime) && slotEnd.After(b.StartTime) {
			return true
		}
	}
	return false
}
