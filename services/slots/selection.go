package slots

import "fmt"

// SelectionState is the state of a Selection.
type SelectionState int

const (
	SelectionEmpty SelectionState = iota
	SelectionSingle
	SelectionRange
)

func (s SelectionState) String() string {
	switch s {
	case SelectionEmpty:
		return "empty"
	case SelectionSingle:
		return "single"
	case SelectionRange:
		return "range"
	}
	return fmt.Sprintf("SelectionState(%d)", int(s))
}

// Selection tracks a user's in-progress choice of contiguous grid slots.
// Every member is available and members have no gaps between them.
// A Selection is owned by its caller and is not safe for concurrent use.
type Selection struct {
	grid  *Grid
	slots []Slot
}

// NewSelection returns an empty selection over grid.
func NewSelection(grid *Grid) *Selection {
	return &Selection{grid: grid}
}

// State returns the current state.
func (s *Selection) State() SelectionState {
	switch len(s.slots) {
	case 0:
		return SelectionEmpty
	case 1:
		return SelectionSingle
	}
	return SelectionRange
}

// Slots returns a copy of the selected slots in ascending order.
func (s *Selection) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Len returns the number of selected slots.
func (s *Selection) Len() int { return len(s.slots) }

// Click applies a click on slot given the current availability.
//
// From Empty the slot becomes the selection. Otherwise the selection is
// replaced with every grid slot between the anchor (the first selected slot)
// and the clicked one. Clicking the last selected slot removes it.
// A range touching an unavailable slot is rejected with *InvalidRangeError
// and the selection is left as it was.
func (s *Selection) Click(slot Slot, available []Slot) error {
	idx, ok := s.grid.Index(slot)
	if !ok {
		return &InvalidRangeError{From: slot, To: slot, Unavailable: []Slot{slot}}
	}
	slot = s.grid.slots[idx]

	if n := len(s.slots); n > 0 && s.slots[n-1].Minutes() == slot.Minutes() {
		s.slots = append([]Slot(nil), s.slots[:n-1]...)
		return nil
	}

	candidate := []Slot{slot}
	if len(s.slots) > 0 {
		candidate = s.grid.Between(s.slots[0], slot)
	}

	free := keySet(available)
	var missing []Slot
	for _, c := range candidate {
		if _, ok := free[c.Minutes()]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &InvalidRangeError{From: candidate[0], To: candidate[len(candidate)-1], Unavailable: missing}
	}

	s.slots = candidate
	return nil
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.slots = nil
}

// AvailabilityChanged must be called whenever availability is recomputed.
// If any selected slot is no longer available the selection is cleared and
// true is returned.
func (s *Selection) AvailabilityChanged(available []Slot) bool {
	free := keySet(available)
	for _, c := range s.slots {
		if _, ok := free[c.Minutes()]; !ok {
			s.slots = nil
			return true
		}
	}
	return false
}

// Restore loads previously persisted slots. They must be grid slots forming
// one ascending contiguous run; availability is checked separately through
// AvailabilityChanged.
func (s *Selection) Restore(slots []Slot) error {
	restored := make([]Slot, 0, len(slots))
	prev := -1
	for _, c := range slots {
		idx, ok := s.grid.Index(c)
		if !ok {
			return fmt.Errorf("cannot restore selection: %v is not a grid slot", float64(c))
		}
		if prev >= 0 && idx != prev+1 {
			return fmt.Errorf("cannot restore selection: %s does not follow the previous slot", c)
		}
		restored = append(restored, s.grid.slots[idx])
		prev = idx
	}
	s.slots = restored
	return nil
}
