package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "bookie/database/repository/booking"
	"bookie/models"
	"bookie/services/slots"
	"bookie/utils"

	"go.uber.org/zap"
)

// CreateBooking validates req and stores it as a new booking of userID.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.BookingCreate, now time.Time) (*models.Booking, error) {
	logger := utils.GetLogger()

	if req.Duration <= 0 {
		return nil, &slots.EmptyDurationError{}
	}
	start := req.Start.UTC()
	if !start.After(now) {
		return nil, &slots.PastStartError{Start: start, Now: now}
	}
	if _, err := s.GetRoom(ctx, req.Room); err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:           utils.NewID(),
		User:         userID,
		Room:         req.Room,
		Start:        start,
		Duration:     req.Duration,
		LastModified: now.UTC(),
	}
	if err := s.checkOverlap(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Creating booking",
		zap.String("bookingID", booking.ID),
		zap.String("room", booking.Room),
		zap.String("user", booking.User),
		zap.Time("start", booking.Start),
		zap.Float64("duration", booking.Duration))
	if err := s.Bookings.Create(ctx, &booking); err != nil {
		return nil, fmt.Errorf("unable to create booking: %w", err)
	}
	return &booking, nil
}

// UpdateBooking moves and/or resizes a booking that has not started yet.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, bookingID string, req models.BookingUpdate, now time.Time) (*models.Booking, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if req.Duration != nil && *req.Duration <= 0 {
		return nil, &slots.EmptyDurationError{}
	}

	existing, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing.Start.Before(now) {
		return nil, ErrBookingExpired
	}

	updated := *existing
	if req.Start != nil {
		start := req.Start.UTC()
		if !start.After(now) {
			return nil, &slots.PastStartError{Start: start, Now: now}
		}
		updated.Start = start
	}
	if req.Duration != nil {
		updated.Duration = *req.Duration
	}
	updated.LastModified = now.UTC()

	if err := s.checkOverlap(ctx, updated); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Updating booking",
		zap.String("bookingID", bookingID),
		zap.Time("start", updated.Start),
		zap.Float64("duration", updated.Duration))
	if err := s.Bookings.Replace(ctx, &updated); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("unable to update booking: %w", err)
	}
	return &updated, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// ListBookings returns every booking starting today or later.
func (s *DefaultBookingService) ListBookings(ctx context.Context, now time.Time) ([]models.Booking, error) {
	from := s.Engine.DayOf(now).Midnight(s.Engine.Location())
	bookings, err := s.Bookings.ListFrom(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UserBookings returns the bookings of userID starting today or later.
func (s *DefaultBookingService) UserBookings(ctx context.Context, userID string, now time.Time) ([]models.Booking, error) {
	bookings, err := s.ListBookings(ctx, now)
	if err != nil {
		return nil, err
	}
	return slots.ByUser(userID, bookings), nil
}

func (s *DefaultBookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	deleted, err := s.DeleteBookings(ctx, []string{bookingID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (s *DefaultBookingService) DeleteBookings(ctx context.Context, bookingIDs []string) (int64, error) {
	utils.GetLogger().Info("Deleting bookings", zap.Strings("bookingIDs", bookingIDs))
	deleted, err := s.Bookings.DeleteMany(ctx, bookingIDs)
	if err != nil {
		return 0, fmt.Errorf("unable to delete bookings: %w", err)
	}
	return deleted, nil
}

// checkOverlap rejects b when it intersects another booking of the same room.
// Bookings starting the local day before are included since they may run past midnight.
func (s *DefaultBookingService) checkOverlap(ctx context.Context, b models.Booking) error {
	first := s.Engine.DayOf(b.Start).AddDays(-1)
	last := s.Engine.DayOf(b.End())
	existing, err := s.roomBookings(ctx, b.Room, first, last)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID != b.ID && b.Overlaps(other) {
			return ErrBookingOverlaps
		}
	}
	return nil
}
