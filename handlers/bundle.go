package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Health endpoint
	HealthHandler gin.HandlerFunc

	// Room endpoints
	GetRoomsHandler        gin.HandlerFunc
	GetRoomHandler         gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc

	// Booking endpoints
	GetBookingsHandler     gin.HandlerFunc
	CreateBookingHandler   gin.HandlerFunc
	DeleteBookingsHandler  gin.HandlerFunc
	GetBookingHandler      gin.HandlerFunc
	UpdateBookingHandler   gin.HandlerFunc
	DeleteBookingHandler   gin.HandlerFunc
	GetUserBookingsHandler gin.HandlerFunc

	// Selection endpoints
	StartSelectionHandler  gin.HandlerFunc
	GetSelectionHandler    gin.HandlerFunc
	ClickSlotHandler       gin.HandlerFunc
	ClearSelectionHandler  gin.HandlerFunc
	ChangeDateHandler      gin.HandlerFunc
	SubmitSelectionHandler gin.HandlerFunc
	CancelSelectionHandler gin.HandlerFunc
}
