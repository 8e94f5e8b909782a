package booking

import (
	"context"
	"time"

	bookingRepo "bookie/database/repository/booking"
	roomRepo "bookie/database/repository/room"
	"bookie/models"
	"bookie/services/slots"
)

// BookingService manages rooms, bookings and the availability derived from them.
// Every method that depends on the current time takes it as now.
type BookingService interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)
	Availability(ctx context.Context, roomID string, day slots.Day, now time.Time) (*models.AvailabilityResponse, error)
	RoomTimeline(ctx context.Context, roomID string, day slots.Day, now time.Time) (slots.Timeline, error)

	CreateBooking(ctx context.Context, userID string, req models.BookingCreate, now time.Time) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, req models.BookingUpdate, now time.Time) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, now time.Time) ([]models.Booking, error)
	UserBookings(ctx context.Context, userID string, now time.Time) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	DeleteBookings(ctx context.Context, bookingIDs []string) (int64, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	Engine   *slots.Engine
}
