package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	bookingRepo "schedula/database/repository/booking"
	"schedula/models"
	"schedula/utils"
)

const dateParamLayout = "2006-01-02"

// parseDateParam accepts either a plain date or a full RFC3339 timestamp.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(dateParamLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ListBookingsHandler returns bookings in a time range, defaulting to the
// next 7 days.
func ListBookingsHandler(repo bookingRepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		from := now
		to := now.Add(7 * 24 * time.Hour)

		if v := c.Query("from"); v != "" {
			t, err := parseDateParam(v)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid from parameter", err.Error())
				return
			}
			from = t
		}
		if v := c.Query("to"); v != "" {
			t, err := parseDateParam(v)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid to parameter", err.Error())
				return
			}
			to = t
		}

		bookings, err := repo.FindByTimeRange(c.Request.Context(), from, to)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
	}
}

// CreateBookingHandler creates a booking directly, bypassing the assistant.
func CreateBookingHandler(repo bookingRepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if booking.StartTime.IsZero() || booking.EndTime.IsZero() {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "start_time and end_time are required")
			return
		}
		if !booking.EndTime.After(booking.StartTime) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "end_time must be after start_time")
			return
		}

		if err := repo.Create(c.Request.Context(), &booking); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
			return
		}
		c.JSON(http.StatusCreated, booking)
	}
}

// UpdateBookingHandler replaces the mutable fields of a booking by id.
func UpdateBookingHandler(repo bookingRepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if !booking.EndTime.After(booking.StartTime) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "end_time must be after start_time")
			return
		}

		if err := repo.Update(c.Request.Context(), id, &booking); err != nil {
			if errors.Is(err, bookingRepo.ErrNotFound) {
				utils.JSONError(c, http.StatusNotFound, "booking not found", id)
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", err.Error())
			return
		}
		booking.ID = id
		c.JSON(http.StatusOK, booking)
	}
}

// DeleteBookingHandler removes a booking by id.
func DeleteBookingHandler(repo bookingRepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := repo.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, bookingRepo.ErrNotFound) {
				utils.JSONError(c, http.StatusNotFound, "booking not found", id)
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
