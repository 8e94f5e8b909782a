package slots

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_TilesDay(t *testing.T) {
	for _, interval := range []float64{0.25, 0.5, 1, 2, 3, 4, 6, 8, 12, 24, 0.75, 1.5} {
		g, err := NewGrid(interval)
		require.NoError(t, err, "interval %v", interval)

		slots := g.Slots()
		assert.Len(t, slots, int(24/interval+0.5))
		assert.Equal(t, Slot(0), slots[0])
		assert.InDelta(t, 24-interval, float64(slots[len(slots)-1]), 1e-9)
		for i := 1; i < len(slots); i++ {
			assert.Greater(t, float64(slots[i]), float64(slots[i-1]))
		}
	}
}

func TestNewGrid_HalfHour(t *testing.T) {
	g, err := NewGrid(0.5)
	require.NoError(t, err)
	assert.Equal(t, 48, g.Len())
	assert.Equal(t, 30, g.Step())
	assert.Equal(t, []Slot{13, 13.5, 14}, g.Slots()[26:29])
}

func TestNewGrid_RejectsBadIntervals(t *testing.T) {
	for _, interval := range []float64{0, -0.5, 0.7, 5, 7, 1.0 / 120} {
		_, err := NewGrid(interval)
		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr), "interval %v", interval)
		assert.Equal(t, interval, cfgErr.Interval)
	}
}

func TestGrid_IndexAndBetween(t *testing.T) {
	g, err := NewGrid(0.5)
	require.NoError(t, err)

	idx, ok := g.Index(9.5)
	assert.True(t, ok)
	assert.Equal(t, 19, idx)

	assert.False(t, g.Contains(9.25))
	assert.False(t, g.Contains(24))
	assert.False(t, g.Contains(-0.5))

	assert.Equal(t, []Slot{9, 9.5, 10}, g.Between(10, 9))
	assert.Nil(t, g.Between(9.25, 10))
}

func TestGrid_SlotsIsCopy(t *testing.T) {
	g, err := NewGrid(1)
	require.NoError(t, err)
	s := g.Slots()
	s[0] = 99
	assert.Equal(t, Slot(0), g.Slots()[0])
}

func TestSlot_Format(t *testing.T) {
	assert.Equal(t, "13:30", Slot(13.5).String())
	assert.Equal(t, "0915", Slot(9.25).Compact())
	assert.Equal(t, "00:00", Slot(0).String())
}
