package models

import (
	"math"
	"time"
)

// Booking represents a reservation of a room by a user.
type Booking struct {
	ID           string    `bson:"id" json:"id"`                     // 32 character hex identifier
	User         string    `bson:"user" json:"user"`                 // ID of the booking user
	Room         string    `bson:"room" json:"room"`                 // ID of the booked room
	Start        time.Time `bson:"start" json:"start"`               // UTC start instant
	Duration     float64   `bson:"duration" json:"duration"`         // Length in hours, e.g. 0.5
	LastModified time.Time `bson:"lastModified" json:"lastModified"` // Set on every write
}

// End returns the instant the booking finishes.
func (b Booking) End() time.Time {
	return b.Start.Add(time.Duration(math.Round(b.Duration * float64(time.Hour))))
}

// Overlaps reports whether the half-open intervals [start, end) of b and other intersect.
func (b Booking) Overlaps(other Booking) bool {
	return b.Start.Before(other.End()) && other.Start.Before(b.End())
}

// BookingCreate carries the fields a client supplies to create a booking.
type BookingCreate struct {
	Room     string    `json:"room" binding:"required,len=32"`
	Start    time.Time `json:"start" binding:"required"`
	Duration float64   `json:"duration" binding:"required,gt=0"`
}

// BookingUpdate carries the optional fields of a booking update.
type BookingUpdate struct {
	Start    *time.Time `json:"start,omitempty"`
	Duration *float64   `json:"duration,omitempty" binding:"omitempty,gt=0"`
}

// IsEmpty reports whether the update changes nothing.
func (u BookingUpdate) IsEmpty() bool {
	return u.Start == nil && u.Duration == nil
}
