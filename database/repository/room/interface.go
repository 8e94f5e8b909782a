package roomRepo

import (
	"context"
	"errors"

	"bookie/models"
)

// ErrNotFound is returned when no room matches the given id.
var ErrNotFound = errors.New("room not found")

// RoomRepository defines methods for room data access.
type RoomRepository interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	// GetByID returns ErrNotFound when the room does not exist.
	GetByID(ctx context.Context, id string) (*models.Room, error)
	// Upsert inserts the room or replaces the one with the same id.
	Upsert(ctx context.Context, room *models.Room) error
	EnsureIndexes(ctx context.Context) error
}
