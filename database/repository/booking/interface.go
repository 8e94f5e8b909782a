package bookingRepo

import (
	"context"
	"errors"
	"time"

	"bookie/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking.
	Create(ctx context.Context, booking *models.Booking) error
	// Replace overwrites the booking with the same id.
	Replace(ctx context.Context, booking *models.Booking) error
	// DeleteMany removes every booking whose id is in ids and returns how many went.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	// GetByID returns ErrNotFound when the booking does not exist.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListFrom returns bookings starting at or after from, ordered by start.
	ListFrom(ctx context.Context, from time.Time) ([]models.Booking, error)
	// DeleteBefore removes bookings starting before cutoff.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// ListByRoomBetween returns the room's bookings with from <= start < to.
	ListByRoomBetween(ctx context.Context, roomID string, from, to time.Time) ([]models.Booking, error)
	// EnsureIndexes creates the indexes the queries above rely on.
	EnsureIndexes(ctx context.Context) error
}
