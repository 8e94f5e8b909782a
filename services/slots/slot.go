package slots

import (
	"fmt"
	"math"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	dayLayout      = "2006-01-02"
)

// Slot is an offset in hours from local midnight, e.g. 13.5 is 13:30.
type Slot float64

// SlotFromMinutes converts minutes from midnight into a Slot.
func SlotFromMinutes(minutes int) Slot {
	return Slot(float64(minutes) / minutesPerHour)
}

// Minutes returns the slot offset in whole minutes from midnight.
// All slot comparisons go through this value.
func (s Slot) Minutes() int {
	return int(math.Round(float64(s) * minutesPerHour))
}

// String formats the slot as "HH:MM".
func (s Slot) String() string {
	m := s.Minutes()
	return fmt.Sprintf("%02d:%02d", m/minutesPerHour, m%minutesPerHour)
}

// Compact formats the slot as "HHMM".
func (s Slot) Compact() string {
	m := s.Minutes()
	return fmt.Sprintf("%02d%02d", m/minutesPerHour, m%minutesPerHour)
}

// Day is a calendar date in the engine's reference location.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day t falls on once converted to loc.
func DayOf(t time.Time, loc *time.Location) Day {
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a "YYYY-MM-DD" date.
func ParseDay(value string) (Day, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return DayOf(t, time.UTC), nil
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Midnight returns the first instant of d in loc.
func (d Day) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// At returns the wall-clock instant of slot s on d in loc.
func (d Day) At(s Slot, loc *time.Location) time.Time {
	m := s.Minutes()
	return time.Date(d.Year, d.Month, d.Day, m/minutesPerHour, m%minutesPerHour, 0, 0, loc)
}

// AddDays returns the day n days after d.
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC), time.UTC)
}

// Hours converts slots to plain hour offsets for transport.
func Hours(slots []Slot) []float64 {
	out := make([]float64, len(slots))
	for i, s := range slots {
		out[i] = float64(s)
	}
	return out
}

// FromHours is the inverse of Hours.
func FromHours(hours []float64) []Slot {
	out := make([]Slot, len(hours))
	for i, h := range hours {
		out[i] = Slot(h)
	}
	return out
}
