package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bookingRepo "schedula/database/repository/booking"
	"schedula/models"
)

func newBookingRouter(repo bookingRepo.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bookings", ListBookingsHandler(repo))
	r.POST("/api/bookings", CreateBookingHandler(repo))
	r.PUT("/api/bookings/:id", UpdateBookingHandler(repo))
	r.DELETE("/api/bookings/:id", DeleteBookingHandler(repo))
	return r
}

func TestListBookings(t *testing.T) {
	day := time.Date(2025, time.July, 7, 9, 0, 0, 0, time.UTC)
	repo := new(bookingRepo.MockRepository)
	repo.On("FindByTimeRange", mock.Anything, mock.Anything, mock.Anything).Return([]models.Booking{
		{ID: "b1", Title: "Training Session", StartTime: day, EndTime: day.Add(time.Hour)},
	}, nil)
	r := newBookingRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Bookings []models.Booking `json:"bookings"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, "b1", body.Bookings[0].ID)
}

func TestListBookingsExplicitRange(t *testing.T) {
	from := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC)
	repo := new(bookingRepo.MockRepository)
	repo.On("FindByTimeRange", mock.Anything, from, to).Return([]models.Booking{}, nil)
	r := newBookingRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings?from=2025-07-01&to=2025-07-31", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestListBookingsBadRange(t *testing.T) {
	r := newBookingRouter(new(bookingRepo.MockRepository))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings?from=not-a-date", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingValidation(t *testing.T) {
	day := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	repo := new(bookingRepo.MockRepository)
	r := newBookingRouter(repo)

	t.Run("missing times", func(t *testing.T) {
		w := postJSON(t, r, "/api/bookings", models.Booking{Title: "No times"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("end before start", func(t *testing.T) {
		w := postJSON(t, r, "/api/bookings", models.Booking{
			Title:     "Backwards",
			StartTime: day.Add(15 * time.Hour),
			EndTime:   day.Add(14 * time.Hour),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	repo.AssertNotCalled(t, "Create")
}

func TestCreateBooking(t *testing.T) {
	day := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	repo := new(bookingRepo.MockRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)
	r := newBookingRouter(repo)

	w := postJSON(t, r, "/api/bookings", models.Booking{
		Title:     "Azure Training",
		StartTime: day.Add(14 * time.Hour),
		EndTime:   day.Add(16 * time.Hour),
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

func TestUpdateBookingNotFound(t *testing.T) {
	day := time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC)
	repo := new(bookingRepo.MockRepository)
	repo.On("Update", mock.Anything, "missing", mock.Anything).Return(bookingRepo.ErrNotFound)
	r := newBookingRouter(repo)

	payload, _ := json.Marshal(models.Booking{
		Title:     "Moved",
		StartTime: day.Add(14 * time.Hour),
		EndTime:   day.Add(15 * time.Hour),
	})
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/missing", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBooking(t *testing.T) {
	repo := new(bookingRepo.MockRepository)
	repo.On("Delete", mock.Anything, "b1").Return(nil)
	repo.On("Delete", mock.Anything, "missing").Return(bookingRepo.ErrNotFound)
	r := newBookingRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
