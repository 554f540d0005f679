package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the HTTP handlers wired in main and consumed by the
// route registrars.
type HandlerBundle struct {
	// Chat endpoint
	ChatHandler gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler  gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc
	UpdateBookingHandler gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc
}
