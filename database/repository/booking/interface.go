package bookingRepo

import (
	"context"
	"errors"
	"time"

	"schedula/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// Repository defines the persistence contract for booking records.
type Repository interface {
	// FindByTimeRange returns bookings whose start falls within [start, end],
	// ordered by ascending start time.
	FindByTimeRange(ctx context.Context, start, end time.Time) ([]models.Booking, error)
	// Create persists a new booking, assigning its id.
	Create(ctx context.Context, booking *models.Booking) error
	// Update replaces the stored booking with the given id.
	Update(ctx context.Context, bookingID string, updated *models.Booking) error
	// Delete removes the booking with the given id.
	Delete(ctx context.Context, bookingID string) error
}
