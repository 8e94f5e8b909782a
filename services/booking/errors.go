package booking

import "fmt"

// BookingError is a rejected booking operation the client can correct or retry.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrRoomNotFound    = &BookingError{Code: "roomNotFound", Message: "Room does not exist"}
	ErrBookingNotFound = &BookingError{Code: "bookingNotFound", Message: "Booking does not exist"}
	ErrBookingExpired  = &BookingError{Code: "bookingExpired", Message: "Booking has already expired"}
	ErrBookingOverlaps = &BookingError{Code: "bookingOverlaps", Message: "Booking overlaps with other Bookings"}
	ErrEmptyUpdate     = &BookingError{Code: "emptyUpdate", Message: "Unable to update Booking(s)"}
)
