package slots

import "math"

// Grid is the ordered set of slot offsets of one day for a given interval.
type Grid struct {
	interval float64
	step     int
	slots    []Slot
}

// NewGrid builds the 24/interval slots of a day, starting at 0.
// interval is expressed in hours and has to be a whole number of minutes
// that evenly divides 24 hours.
func NewGrid(interval float64) (*Grid, error) {
	if math.IsNaN(interval) || math.IsInf(interval, 0) || interval <= 0 {
		return nil, &ConfigurationError{Interval: interval, Reason: "must be a positive number of hours"}
	}
	raw := interval * minutesPerHour
	step := int(math.Round(raw))
	if step < 1 || math.Abs(raw-float64(step)) > 1e-9 {
		return nil, &ConfigurationError{Interval: interval, Reason: "must be a whole number of minutes"}
	}
	if minutesPerDay%step != 0 {
		return nil, &ConfigurationError{Interval: interval, Reason: "must evenly divide 24 hours"}
	}

	n := minutesPerDay / step
	slots := make([]Slot, n)
	for i := range slots {
		slots[i] = SlotFromMinutes(i * step)
	}
	return &Grid{interval: interval, step: step, slots: slots}, nil
}

// Interval returns the slot width in hours.
func (g *Grid) Interval() float64 { return g.interval }

// Step returns the slot width in minutes.
func (g *Grid) Step() int { return g.step }

// Len returns the number of slots in a day.
func (g *Grid) Len() int { return len(g.slots) }

// Slots returns a copy of the day's slots in ascending order.
func (g *Grid) Slots() []Slot {
	out := make([]Slot, len(g.slots))
	copy(out, g.slots)
	return out
}

// Index returns the position of s in the grid.
func (g *Grid) Index(s Slot) (int, bool) {
	m := s.Minutes()
	if m < 0 || m >= minutesPerDay || m%g.step != 0 {
		return 0, false
	}
	return m / g.step, true
}

// Contains reports whether s is a slot of the grid.
func (g *Grid) Contains(s Slot) bool {
	_, ok := g.Index(s)
	return ok
}

// Between returns every grid slot from lo to hi inclusive, ascending.
// Off-grid bounds yield nil.
func (g *Grid) Between(lo, hi Slot) []Slot {
	i, ok := g.Index(lo)
	if !ok {
		return nil
	}
	j, ok := g.Index(hi)
	if !ok {
		return nil
	}
	if i > j {
		i, j = j, i
	}
	out := make([]Slot, j-i+1)
	copy(out, g.slots[i:j+1])
	return out
}

func keySet(slots []Slot) map[int]struct{} {
	set := make(map[int]struct{}, len(slots))
	for _, s := range slots {
		set[s.Minutes()] = struct{}{}
	}
	return set
}
