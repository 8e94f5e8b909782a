package handlers

import (
	"errors"
	"net/http"

	"bookie/services/booking"
	"bookie/services/selection"
	"bookie/services/slots"
	"bookie/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var (
		bookingErr *booking.BookingError
		rangeErr   *slots.InvalidRangeError
		pastErr    *slots.PastStartError
		emptyErr   *slots.EmptyDurationError
	)
	switch {
	case errors.Is(err, booking.ErrRoomNotFound), errors.Is(err, booking.ErrBookingNotFound):
		errors.As(err, &bookingErr)
		utils.JSONError(c, http.StatusNotFound, bookingErr.Message, err.Error())
	case errors.Is(err, selection.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Selection does not exist", err.Error())
	case errors.As(err, &bookingErr):
		utils.JSONError(c, http.StatusBadRequest, bookingErr.Message, err.Error())
	case errors.As(err, &rangeErr):
		utils.JSONError(c, http.StatusBadRequest, "Selected range includes unavailable slots", err.Error())
	case errors.As(err, &pastErr):
		utils.JSONError(c, http.StatusBadRequest, "Booking has already expired", err.Error())
	case errors.As(err, &emptyErr):
		utils.JSONError(c, http.StatusBadRequest, "Booking duration has to be greater than 0", err.Error())
	default:
		getLogger(c).Error("Request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
