package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	roomRepo "bookie/database/repository/room"
	"bookie/models"
	"bookie/services/slots"
)

func (s *DefaultBookingService) ListRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.Rooms.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *DefaultBookingService) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.Rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// RoomTimeline computes the slot timeline of a room on day.
func (s *DefaultBookingService) RoomTimeline(ctx context.Context, roomID string, day slots.Day, now time.Time) (slots.Timeline, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return slots.Timeline{}, err
	}
	bookings, err := s.roomBookings(ctx, roomID, day, day)
	if err != nil {
		return slots.Timeline{}, err
	}
	return s.Engine.Timeline(day, bookings, now), nil
}

// Availability is RoomTimeline in its transport shape.
func (s *DefaultBookingService) Availability(ctx context.Context, roomID string, day slots.Day, now time.Time) (*models.AvailabilityResponse, error) {
	tl, err := s.RoomTimeline(ctx, roomID, day, now)
	if err != nil {
		return nil, err
	}
	return &models.AvailabilityResponse{
		Room:      roomID,
		Date:      day.String(),
		Interval:  s.Engine.Interval(),
		Slots:     slots.Hours(tl.Slots),
		Available: slots.Hours(tl.Available),
		Taken:     slots.Hours(tl.Taken),
	}, nil
}

// roomBookings returns the room's bookings starting on any local day from first to last.
func (s *DefaultBookingService) roomBookings(ctx context.Context, roomID string, first, last slots.Day) ([]models.Booking, error) {
	loc := s.Engine.Location()
	bookings, err := s.Bookings.ListByRoomBetween(ctx, roomID, first.Midnight(loc), last.AddDays(1).Midnight(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings of room %s: %w", roomID, err)
	}
	return slots.ByRoom(roomID, bookings), nil
}
