package handlers

import (
	"net/http"
	"time"

	"bookie/models"
	"bookie/services/booking"
	"bookie/services/slots"
	"bookie/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves rooms, bookings and room availability.
type BookingHandler struct {
	Service  booking.BookingService
	Location *time.Location
	now      func() time.Time
}

func NewBookingHandler(svc booking.BookingService, loc *time.Location) *BookingHandler {
	return &BookingHandler{Service: svc, Location: loc, now: time.Now}
}

func (h *BookingHandler) GetRoomsHandler(c *gin.Context) {
	rooms, err := h.Service.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *BookingHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Service.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetAvailabilityHandler returns the slot view of a room for ?date=YYYY-MM-DD, today by default.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	now := h.now()
	day := slots.DayOf(now, h.Location)
	if raw := c.Query("date"); raw != "" {
		parsed, err := slots.ParseDay(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
		day = parsed
	}

	resp, err := h.Service.Availability(c.Request.Context(), c.Param("id"), day, now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.UserBookings(c.Request.Context(), c.Param("id"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), currentUser(c), req, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var req models.BookingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	if _, err := h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), req, h.now()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBookingsHandler removes every booking named by a ?booking= parameter.
func (h *BookingHandler) DeleteBookingsHandler(c *gin.Context) {
	if _, err := h.Service.DeleteBookings(c.Request.Context(), c.QueryArray("booking")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
