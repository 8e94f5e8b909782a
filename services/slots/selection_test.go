package slots

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func halfHourSelection(t *testing.T) (*Selection, []Slot) {
	g, err := NewGrid(0.5)
	require.NoError(t, err)
	return NewSelection(g), g.Slots()
}

func without(slots []Slot, drop ...Slot) []Slot {
	out := make([]Slot, 0, len(slots))
outer:
	for _, s := range slots {
		for _, d := range drop {
			if s == d {
				continue outer
			}
		}
		out = append(out, s)
	}
	return out
}

func TestSelection_SingleThenRange(t *testing.T) {
	sel, available := halfHourSelection(t)
	assert.Equal(t, SelectionEmpty, sel.State())

	require.NoError(t, sel.Click(9, available))
	assert.Equal(t, SelectionSingle, sel.State())
	assert.Equal(t, []Slot{9}, sel.Slots())

	require.NoError(t, sel.Click(10, available))
	assert.Equal(t, SelectionRange, sel.State())
	assert.Equal(t, []Slot{9, 9.5, 10}, sel.Slots())

	// Re-anchored range still starts from the first slot.
	require.NoError(t, sel.Click(11, available))
	assert.Equal(t, []Slot{9, 9.5, 10, 10.5, 11}, sel.Slots())
	require.NoError(t, sel.Click(9.5, available))
	assert.Equal(t, []Slot{9, 9.5}, sel.Slots())
}

func TestSelection_RangeBeforeAnchor(t *testing.T) {
	sel, available := halfHourSelection(t)
	require.NoError(t, sel.Click(10, available))
	require.NoError(t, sel.Click(9, available))
	assert.Equal(t, []Slot{9, 9.5, 10}, sel.Slots())
}

func TestSelection_RejectsUnavailableRange(t *testing.T) {
	sel, grid := halfHourSelection(t)
	available := without(grid, 9.5)

	require.NoError(t, sel.Click(9, available))
	err := sel.Click(10, available)

	var invalid *InvalidRangeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []Slot{9.5}, invalid.Unavailable)
	assert.Equal(t, Slot(9), invalid.From)
	assert.Equal(t, Slot(10), invalid.To)
	assert.Equal(t, []Slot{9}, sel.Slots())
	assert.Equal(t, SelectionSingle, sel.State())
}

func TestSelection_RejectsUnavailableFirstClick(t *testing.T) {
	sel, grid := halfHourSelection(t)

	assert.Error(t, sel.Click(9, without(grid, 9)))
	assert.Error(t, sel.Click(9.2, grid))
	assert.Equal(t, SelectionEmpty, sel.State())
}

func TestSelection_ClickLastShrinks(t *testing.T) {
	sel, available := halfHourSelection(t)
	require.NoError(t, sel.Click(9, available))
	require.NoError(t, sel.Click(10, available))

	require.NoError(t, sel.Click(10, available))
	assert.Equal(t, []Slot{9, 9.5}, sel.Slots())

	require.NoError(t, sel.Click(9.5, available))
	require.NoError(t, sel.Click(9, available))
	assert.Equal(t, SelectionEmpty, sel.State())
	assert.Empty(t, sel.Slots())
}

func TestSelection_Clear(t *testing.T) {
	sel, available := halfHourSelection(t)
	require.NoError(t, sel.Click(9, available))
	require.NoError(t, sel.Click(12, available))

	sel.Clear()
	assert.Equal(t, SelectionEmpty, sel.State())
	assert.Zero(t, sel.Len())
}

func TestSelection_AvailabilityChanged(t *testing.T) {
	sel, grid := halfHourSelection(t)
	require.NoError(t, sel.Click(9, grid))
	require.NoError(t, sel.Click(10, grid))

	assert.False(t, sel.AvailabilityChanged(without(grid, 11)))
	assert.Equal(t, []Slot{9, 9.5, 10}, sel.Slots())

	assert.True(t, sel.AvailabilityChanged(without(grid, 9.5)))
	assert.Equal(t, SelectionEmpty, sel.State())
	assert.False(t, sel.AvailabilityChanged(nil))
}

func TestSelection_Restore(t *testing.T) {
	sel, _ := halfHourSelection(t)

	require.NoError(t, sel.Restore([]Slot{14, 14.5, 15}))
	assert.Equal(t, SelectionRange, sel.State())
	assert.Equal(t, []Slot{14, 14.5, 15}, sel.Slots())

	assert.EqualError(t, sel.Restore([]Slot{14, 15}), "cannot restore selection: 15:00 does not follow the previous slot")
	assert.Error(t, sel.Restore([]Slot{14.1}))
	assert.Equal(t, []Slot{14, 14.5, 15}, sel.Slots())

	require.NoError(t, sel.Restore(nil))
	assert.Equal(t, SelectionEmpty, sel.State())
}

func TestSelectionState_String(t *testing.T) {
	assert.Equal(t, "empty", SelectionEmpty.String())
	assert.Equal(t, "single", SelectionSingle.String())
	assert.Equal(t, "range", SelectionRange.String())
}
