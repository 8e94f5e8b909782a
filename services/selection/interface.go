package selection

import (
	"context"
	"errors"
	"time"

	"bookie/models"
	"bookie/services/slots"
)

// ErrSessionNotFound is returned for unknown, expired or foreign sessions.
var ErrSessionNotFound = errors.New("selection session not found or expired")

// SessionStore persists selection sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.SelectionSession, error)
	Save(ctx context.Context, session *models.SelectionSession) error
	Delete(ctx context.Context, sessionID string) error
}

// Bookings is the part of the booking service a selection needs.
type Bookings interface {
	RoomTimeline(ctx context.Context, roomID string, day slots.Day, now time.Time) (slots.Timeline, error)
	CreateBooking(ctx context.Context, userID string, req models.BookingCreate, now time.Time) (*models.Booking, error)
}

// SelectionService drives a user's slot selection for one room and day.
// Availability is recomputed on every call and applied to the stored
// selection before anything else happens, so a response never carries a
// slot that has stopped being available.
type SelectionService interface {
	Start(ctx context.Context, userID, roomID string, day slots.Day, now time.Time) (*models.SelectionResponse, error)
	Get(ctx context.Context, userID, sessionID string, now time.Time) (*models.SelectionResponse, error)
	Click(ctx context.Context, userID, sessionID string, slot slots.Slot, now time.Time) (*models.SelectionResponse, error)
	Clear(ctx context.Context, userID, sessionID string, now time.Time) (*models.SelectionResponse, error)
	ChangeDay(ctx context.Context, userID, sessionID string, day slots.Day, now time.Time) (*models.SelectionResponse, error)
	Submit(ctx context.Context, userID, sessionID string, now time.Time) (*models.Booking, error)
	Cancel(ctx context.Context, userID, sessionID string) error
}

// DefaultSelectionService implements SelectionService.
type DefaultSelectionService struct {
	Store    SessionStore
	Bookings Bookings
	Engine   *slots.Engine
}
