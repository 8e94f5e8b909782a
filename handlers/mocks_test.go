package handlers

import (
	"context"
	"time"

	"bookie/models"
	"bookie/services/slots"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ListRooms(ctx context.Context) ([]models.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockBookingService) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockBookingService) Availability(ctx context.Context, roomID string, day slots.Day, now time.Time) (*models.AvailabilityResponse, error) {
	args := m.Called(ctx, roomID, day, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilityResponse), args.Error(1)
}

func (m *MockBookingService) RoomTimeline(ctx context.Context, roomID string, day slots.Day, now time.Time) (slots.Timeline, error) {
	args := m.Called(ctx, roomID, day, now)
	return args.Get(0).(slots.Timeline), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, userID string, req models.BookingCreate, now time.Time) (*models.Booking, error) {
	args := m.Called(ctx, userID, req, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateBooking(ctx context.Context, bookingID string, req models.BookingUpdate, now time.Time) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, req, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, now time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) UserBookings(ctx context.Context, userID string, now time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *MockBookingService) DeleteBookings(ctx context.Context, bookingIDs []string) (int64, error) {
	args := m.Called(ctx, bookingIDs)
	return args.Get(0).(int64), args.Error(1)
}

type MockSelectionService struct {
	mock.Mock
}

func (m *MockSelectionService) response(args mock.Arguments) (*models.SelectionResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SelectionResponse), args.Error(1)
}

func (m *MockSelectionService) Start(ctx context.Context, userID, roomID string, day slots.Day, now time.Time) (*models.SelectionResponse, error) {
	return m.response(m.Called(ctx, userID, roomID, day, now))
}

func (m *MockSelectionService) Get(ctx context.Context, userID, sessionID string, now time.Time) (*models.SelectionResponse, error) {
	return m.response(m.Called(ctx, userID, sessionID, now))
}

func (m *MockSelectionService) Click(ctx context.Context, userID, sessionID string, slot slots.Slot, now time.Time) (*models.SelectionResponse, error) {
	return m.response(m.Called(ctx, userID, sessionID, slot, now))
}

func (m *MockSelectionService) Clear(ctx context.Context, userID, sessionID string, now time.Time) (*models.SelectionResponse, error) {
	return m.response(m.Called(ctx, userID, sessionID, now))
}

func (m *MockSelectionService) ChangeDay(ctx context.Context, userID, sessionID string, day slots.Day, now time.Time) (*models.SelectionResponse, error) {
	return m.response(m.Called(ctx, userID, sessionID, day, now))
}

func (m *MockSelectionService) Submit(ctx context.Context, userID, sessionID string, now time.Time) (*models.Booking, error) {
	args := m.Called(ctx, userID, sessionID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockSelectionService) Cancel(ctx context.Context, userID, sessionID string) error {
	return m.Called(ctx, userID, sessionID).Error(0)
}
