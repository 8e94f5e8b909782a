package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bookie/models"
)

const (
	roomA = "8af9ab04f6ea4d64b25358781c92e07b"
	roomB = "7e1ad2e0a6d04be797176dd1bcdfc729"
	userA = "b4811bbb0de74ca0b6c8feb541896746"
	userB = "0c1f4c1d9ab84a1c9d7e0f2a3b4c5d6e"
)

func instant(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func singapore(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)
	return loc
}

func losAngeles(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return loc
}

func sampleBookings(t *testing.T) []models.Booking {
	return []models.Booking{
		{ID: "155280b4d8094e13845c91ef721e5c13", User: userA, Room: roomA, Start: instant(t, "2023-02-23T05:30:00Z"), Duration: 1},
		{ID: "a4e3a8661b4144deab8d8c88c1a1760c", User: userA, Room: roomB, Start: instant(t, "2023-02-23T05:30:00Z"), Duration: 1.5},
		{ID: "daf66c6b9f2e4c83bfa5545f67785fb0", User: userB, Room: roomA, Start: instant(t, "2023-02-23T07:30:00Z"), Duration: 0.5},
		{ID: "9b4204913a604f90a2ddecc5c9a4b1a0", User: userA, Room: roomA, Start: instant(t, "2023-02-23T09:00:00Z"), Duration: 1},
		{ID: "b5d40005bdde463483949c6302e30137", User: userB, Room: roomB, Start: instant(t, "2023-02-25T09:00:00Z"), Duration: 1},
	}
}

func newEngine(t *testing.T, interval float64, loc *time.Location) *Engine {
	t.Helper()
	e, err := NewEngine(interval, loc)
	require.NoError(t, err)
	return e
}
