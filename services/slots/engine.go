package slots

import (
	"math"
	"time"

	"bookie/models"
)

// Engine binds a slot grid to the reference location every local-time rule
// is evaluated in. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	grid *Grid
	loc  *time.Location
}

// Timeline is the slot view of one day.
type Timeline struct {
	Day       Day
	Slots     []Slot // slots that have not elapsed
	Available []Slot // Slots not covered by a booking
	Taken     []Slot // grid slots covered by a booking
}

// NewEngine builds an engine for interval hours per slot in loc.
// A nil loc means UTC.
func NewEngine(interval float64, loc *time.Location) (*Engine, error) {
	grid, err := NewGrid(interval)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{grid: grid, loc: loc}, nil
}

func (e *Engine) Grid() *Grid { return e.grid }
func (e *Engine) Location() *time.Location { return e.loc }
func (e *Engine) Interval() float64 { return e.grid.interval }
func (e *Engine) DayOf(t time.Time) Day { return DayOf(t, e.loc) }
func (e *Engine) NewSelection() *Selection { return NewSelection(e.grid) }
func (e *Engine) At(day Day, s Slot) time.Time { return day.At(s, e.loc) }

// OccupiedSlots expands a booking into the slot offsets it covers: its local
// start hour followed by one slot per whole interval of its duration.
// A trailing partial slot is dropped.
func (e *Engine) OccupiedSlots(b models.Booking) []Slot {
	local := b.Start.In(e.loc)
	start := local.Hour()*minutesPerHour + local.Minute()

	count := int(math.Floor(b.Duration/e.grid.interval + 1e-9))
	if count <= 0 {
		return nil
	}
	out := make([]Slot, count)
	for i := range out {
		out[i] = SlotFromMinutes(start + i*e.grid.step)
	}
	return out
}

// Available returns slots minus every slot occupied by bookings, keeping order.
// bookings are expected to belong to one room and one day; overlapping
// bookings are not rejected here.
func (e *Engine) Available(bookings []models.Booking, slots []Slot) []Slot {
	taken := e.occupied(bookings)
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s.Minutes()]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// Taken returns the members of slots occupied by bookings, keeping order.
func (e *Engine) Taken(bookings []models.Booking, slots []Slot) []Slot {
	taken := e.occupied(bookings)
	out := make([]Slot, 0, len(taken))
	for _, s := range slots {
		if _, ok := taken[s.Minutes()]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (e *Engine) occupied(bookings []models.Booking) map[int]struct{} {
	taken := make(map[int]struct{})
	for _, b := range bookings {
		for _, s := range e.OccupiedSlots(b) {
			taken[s.Minutes()] = struct{}{}
		}
	}
	return taken
}

// FutureSlots returns the slots whose instant on day is strictly after now.
func (e *Engine) FutureSlots(day Day, slots []Slot, now time.Time) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if day.At(s, e.loc).After(now) {
			out = append(out, s)
		}
	}
	return out
}

// Timeline runs the full pipeline for one room's bookings on day: select
// the day's bookings, drop elapsed slots, then subtract occupied ones.
func (e *Engine) Timeline(day Day, roomBookings []models.Booking, now time.Time) Timeline {
	dayBookings := ByDay(day, e.loc, roomBookings)
	current := e.FutureSlots(day, e.grid.slots, now)
	return Timeline{
		Day:       day,
		Slots:     current,
		Available: e.Available(dayBookings, current),
		Taken:     e.Taken(dayBookings, e.grid.slots),
	}
}

// ToBookingRequest turns a contiguous selection on day into an unsaved booking.
func (e *Engine) ToBookingRequest(selection []Slot, day Day, userID, roomID string, now time.Time) (models.Booking, error) {
	if len(selection) == 0 {
		return models.Booking{}, &EmptyDurationError{}
	}
	first, last := selection[0], selection[len(selection)-1]
	start := day.At(first, e.loc).UTC()
	minutes := last.Minutes() - first.Minutes() + e.grid.step
	if minutes <= 0 {
		return models.Booking{}, &EmptyDurationError{}
	}
	if !start.After(now) {
		return models.Booking{}, &PastStartError{Start: start, Now: now}
	}
	return models.Booking{
		User:     userID,
		Room:     roomID,
		Start:    start,
		Duration: float64(minutes) / minutesPerHour,
	}, nil
}

// RoundMinutes rounds a minute value to the nearest slot interval and splits
// it into hours and minutes.
func (e *Engine) RoundMinutes(value float64) (hours, minutes int) {
	step := float64(e.grid.step)
	rounded := int(math.Round(value/step) * step)
	return rounded / minutesPerHour, rounded % minutesPerHour
}
