package bookingRepo

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"schedula/models"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByTimeRange(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, bookingID string, updated *models.Booking) error {
	args := m.Called(ctx, bookingID, updated)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}
