package slots

import (
	"time"

	"bookie/models"
)

// SameDay reports whether a and b fall on the same calendar day once both are
// converted to loc. Every day comparison in the service goes through here.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayOf(a, loc) == DayOf(b, loc)
}

// ByUser returns the bookings made by userID.
func ByUser(userID string, bookings []models.Booking) []models.Booking {
	return filter(bookings, func(b models.Booking) bool { return b.User == userID })
}

// ByRoom returns the bookings of roomID.
func ByRoom(roomID string, bookings []models.Booking) []models.Booking {
	return filter(bookings, func(b models.Booking) bool { return b.Room == roomID })
}

// ByDay returns the bookings whose start, converted to loc, falls on day.
func ByDay(day Day, loc *time.Location, bookings []models.Booking) []models.Booking {
	return filter(bookings, func(b models.Booking) bool { return DayOf(b.Start, loc) == day })
}

func filter(bookings []models.Booking, keep func(models.Booking) bool) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
