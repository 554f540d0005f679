package assistant

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingRepo "schedula/database/repository/booking"
	"schedula/models"
)

// Activation thresholds: an intent below its threshold is treated as Unknown
// even though the extractor nominally assigned it.
const (
	actionConfidenceThreshold = 50
	queryConfidenceThreshold  = 80
)

// Executor resolves extracted commands into booking reads and mutations.
// It holds no cross-call state; the repository is the only shared resource.
type Executor struct {
	Repo         bookingRepo.Repository
	Availability *AvailabilityEngine
	Logger       *zap.Logger
}

// NewExecutor wires an executor over the given repository.
func NewExecutor(repo bookingRepo.Repository, availability *AvailabilityEngine, logger *zap.Logger) *Executor {
	return &Executor{Repo: repo, Availability: availability, Logger: logger}
}

// Execute dispatches on the command's intent. Every branch returns a
// structured result; faults never cross this boundary.
func (ex *Executor) Execute(ctx context.Context, cmd models.ExtractedCommand, now time.Time) *models.CommandResult {
	switch {
	case cmd.Intent == models.IntentDateQuery && cmd.Confidence >= queryConfidenceThreshold:
		return ex.executeDateQuery(now)
	case cmd.Intent == models.IntentFreeSlots && cmd.Confidence >= queryConfidenceThreshold:
		return ex.executeFreeSlots(ctx, cmd, now)
	case cmd.Intent == models.IntentCreate && cmd.Confidence >= actionConfidenceThreshold:
		return ex.executeCreate(ctx, cmd, now)
	case cmd.Intent == models.IntentDelete && cmd.Confidence >= actionConfidenceThreshold:
		return ex.executeDelete(ctx, cmd, now)
	case cmd.Intent == models.IntentUpdate && cmd.Confidence >= actionConfidenceThreshold:
		return ex.executeUpdate(ctx, cmd, now)
	case cmd.Intent == models.IntentList && cmd.Confidence >= actionConfidenceThreshold:
		return ex.executeList(ctx, cmd, now)
	default:
		return &models.CommandResult{Intent: models.IntentUnknown}
	}
}

func (ex *Executor) executeDateQuery(now time.Time) *models.CommandResult {
	target := now
	return &models.CommandResult{
		Intent:     models.IntentDateQuery,
		TargetDate: &target,
	}
}

func (ex *Executor) executeFreeSlots(ctx context.Context, cmd models.ExtractedCommand, now time.Time) *models.CommandResult {
	target := now
	if cmd.Date != nil {
		target = *cmd.Date
	}

	slots, total, err := ex.Availability.ComputeFreeSlots(ctx, target, cmd.IsRangeQuery, now)
	if err != nil {
		ex.Logger.Error("free slot computation failed", zap.Error(err))
		return systemErrorResult(models.IntentFreeSlots)
	}
	return &models.CommandResult{
		Intent:       models.IntentFreeSlots,
		FreeSlots:    slots,
		TotalSlots:   total,
		TargetDate:   &target,
		IsRangeQuery: cmd.IsRangeQuery,
	}
}

func (ex *Executor) executeCreate(ctx context.Context, cmd models.ExtractedCommand, now time.Time) *models.CommandResult {
	defaults := ApplyDefaults(cmd, now)

	if !defaults.EndTime.After(defaults.StartTime) {
		return &models.CommandResult{
			Intent: models.IntentCreate,
			Err:    "The session end time must be after the start time.",
		}
	}
	if msg := validateDateForOperation("create", &defaults.StartTime, now); msg != "" {
		return &models.CommandResult{Intent: models.IntentCreate, Err: msg}
	}

	booking := &models.Booking{
		Title:       defaults.Title,
		Description: bookingDescription,
		Category:    defaults.Category,
		ClientName:  defaults.ClientName,
		StartTime:   defaults.StartTime,
		EndTime:     defaults.EndTime,
	}
	if err := ex.Repo.Create(ctx, booking); err != nil {
		ex.Logger.Error("booking creation failed", zap.Error(err))
		return systemErrorResult(models.IntentCreate)
	}

	return &models.CommandResult{
		Intent:         models.IntentCreate,
		ActionTaken:    true,
		BookingCreated: true,
		Booking:        booking,
	}
}

func (ex *Executor) executeDelete(ctx context.Context, cmd models.ExtractedCommand, now time.Time) *models.CommandResult {
	if msg := validateDateForOperation("delete", cmd.Date, now); msg != "" {
		return &models.CommandResult{Intent: models.IntentDelete, Err: msg}
	}

	dayStart, dayEnd := dayRange(*cmd.Date)
	candidates, err := ex.Repo.FindByTimeRange(ctx, dayStart, dayEnd)
	if err != nil {
		ex.Logger.Error("failed to fetch bookings for deletion", zap.Error(err))
		return systemErrorResult(models.IntentDelete)
	}

	// Each deletion is attempted independently; one failure never aborts the
	// batch, it is logged and skipped.
	result := &models.CommandResult{
		Intent:      models.IntentDelete,
		ActionTaken: true,
		TargetDate:  cmd.Date,
	}
	for _, b := range candidates {
		if err := ex.Repo.Delete(ctx, b.ID); err != nil {
			ex.Logger.Warn("failed to delete booking",
				zap.String("bookingID", b.ID),
				zap.String("title", b.Title),
				zap.Error(err))
			continue
		}
		result.DeletedCount++
		result.DeletedBookings = append(result.DeletedBookings, b)
	}
	return result
}

func (ex *Executor) executeUpdate(ctx context.Context, cmd models.ExtractedCommand, now time.Time) *models.CommandResult {
	if msg := validateDateForOperation("update", cmd.Date, now); msg != "" {
		return &models.CommandResult{Intent: models.IntentUpdate, Err: msg}
	}
	if cmd.Time == nil {
		return &models.CommandResult{
			Intent: models.IntentUpdate,
			Err:    "Please specify a new time for the update.",
		}
	}

	dayStart, dayEnd := dayRange(*cmd.Date)
	candidates, err := ex.Repo.FindByTimeRange(ctx, dayStart, dayEnd)
	if err != nil {
		ex.Logger.Error("failed to fetch bookings for update", zap.Error(err))
		return systemErrorResult(models.IntentUpdate)
	}
	if len(candidates) == 0 {
		return &models.CommandResult{
			Intent: models.IntentUpdate,
			Err:    "No bookings found to update on the specified date.",
		}
	}
	// Several bookings on the day: take the earliest one. Documented
	// first-match behavior, no clarification dialogue.
	original := candidates[0]
	if len(candidates) > 1 {
		ex.Logger.Info("multiple bookings matched for update, taking the earliest",
			zap.Int("matches", len(candidates)),
			zap.String("title", original.Title))
	}

	day := dateOnly(original.StartTime)
	newStart := day.Add(time.Duration(cmd.Time.Hour)*time.Hour + time.Duration(cmd.Time.Minute)*time.Minute)

	var newEnd time.Time
	if cmd.EndTime != nil {
		newEnd = day.Add(time.Duration(cmd.EndTime.Hour)*time.Hour + time.Duration(cmd.EndTime.Minute)*time.Minute)
	} else {
		duration := cmd.Duration
		if duration <= 0 {
			duration = original.DurationHours()
		}
		newEnd = newStart.Add(time.Duration(duration * float64(time.Hour)))
	}

	updated := original
	updated.StartTime = newStart
	updated.EndTime = newEnd
	if cmd.Category != "" {
		updated.Category = cmd.Category
	}

	if err := ex.Repo.Update(ctx, original.ID, &updated); err != nil {
		ex.Logger.Error("booking update failed",
			zap.String("bookingID", original.ID),
			zap.Error(err))
		return systemErrorResult(models.IntentUpdate)
	}

	return &models.CommandResult{
		Intent:          models.IntentUpdate,
		ActionTaken:     true,
		UpdatedBooking:  &updated,
		OriginalBooking: &original,
	}
}

func (ex *Executor) executeList(ctx context.Context, cmd models.ExtractedCommand, now time.Time) *models.CommandResult {
	var start, end time.Time
	result := &models.CommandResult{Intent: models.IntentList, ActionTaken: true}

	if cmd.Date != nil {
		start, end = dayRange(*cmd.Date)
		result.TargetDate = cmd.Date
	} else {
		// No date given: show the coming week.
		start = now
		end = now.AddDate(0, 0, 7)
	}

	bookings, err := ex.Repo.FindByTimeRange(ctx, start, end)
	if err != nil {
		ex.Logger.Error("failed to fetch bookings for listing", zap.Error(err))
		return systemErrorResult(models.IntentList)
	}
	result.Bookings = bookings
	return result
}

// validateDateForOperation is the shared precondition for all mutations: a
// date must be present and must not lie strictly before today. Only the
// date components are compared, time of day never affects the verdict.
func validateDateForOperation(operation string, date *time.Time, now time.Time) string {
	if date == nil {
		return fmt.Sprintf("Please specify a date for the %s operation.", operation)
	}
	if isDateInPast(*date, now) {
		return fmt.Sprintf("Cannot %s sessions for past dates. Please choose a current or future date.", operation)
	}
	return ""
}

// isDateInPast compares calendar dates only.
func isDateInPast(target, now time.Time) bool {
	return dateOnly(target).Before(dateOnly(now))
}

// dayRange expands a date to its full day: [00:00:00, 23:59:59.999].
func dayRange(date time.Time) (time.Time, time.Time) {
	start := dateOnly(date)
	return start, start.Add(24*time.Hour - time.Millisecond)
}

func systemErrorResult(intent models.Intent) *models.CommandResult {
	return &models.CommandResult{
		Intent:      intent,
		Err:         "I encountered a system error while processing your request. Please try again.",
		SystemError: true,
	}
}
