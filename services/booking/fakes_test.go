package booking

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	bookingRepo "bookie/database/repository/booking"
	roomRepo "bookie/database/repository/room"
	"bookie/models"
	"bookie/services/slots"
	"bookie/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

const (
	roomID  = "8af9ab04f6ea4d64b25358781c92e07b"
	userID  = "b4811bbb0de74ca0b6c8feb541896746"
	otherID = "2f5575ba0b1a48c896fcc82e9dcf6f3e"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	err      error
}

func newFakeBookingRepo(bookings ...models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[string]models.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) Replace(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) DeleteMany(_ context.Context, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.bookings[id]; ok {
			delete(r.bookings, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, b := range r.bookings {
		if b.Start.Before(cutoff) {
			delete(r.bookings, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (r *fakeBookingRepo) ListFrom(_ context.Context, from time.Time) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return !b.Start.Before(from) }), nil
}

func (r *fakeBookingRepo) ListByRoomBetween(_ context.Context, room string, from, to time.Time) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool {
		return b.Room == room && !b.Start.Before(from) && b.Start.Before(to)
	}), nil
}

func (r *fakeBookingRepo) EnsureIndexes(context.Context) error { return nil }

func (r *fakeBookingRepo) list(keep func(models.Booking) bool) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Booking{}
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

type fakeRoomRepo struct {
	rooms map[string]models.Room
}

func newFakeRoomRepo(rooms ...models.Room) *fakeRoomRepo {
	r := &fakeRoomRepo{rooms: map[string]models.Room{}}
	for _, room := range rooms {
		r.rooms[room.ID] = room
	}
	return r
}

func (r *fakeRoomRepo) GetAll(context.Context) ([]models.Room, error) {
	out := []models.Room{}
	for _, room := range r.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, roomRepo.ErrNotFound
	}
	return &room, nil
}

func (r *fakeRoomRepo) Upsert(_ context.Context, room *models.Room) error {
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) EnsureIndexes(context.Context) error { return nil }

func instant(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func newService(t *testing.T, bookings ...models.Booking) (*DefaultBookingService, *fakeBookingRepo) {
	t.Helper()
	engine, err := slots.NewEngine(0.5, time.UTC)
	require.NoError(t, err)
	repo := newFakeBookingRepo(bookings...)
	return &DefaultBookingService{
		Bookings: repo,
		Rooms:    newFakeRoomRepo(models.Room{ID: roomID, Name: "Room 1", Capacity: 8}),
		Engine:   engine,
	}, repo
}
