package models

// AvailabilityResponse is the slot view of one room on one day.
// Slots lists the slots that have not elapsed yet, Available the subset of
// those that are free and Taken every grid slot covered by a booking.
type AvailabilityResponse struct {
	Room      string    `json:"room"`
	Date      string    `json:"date"`
	Interval  float64   `json:"interval"`
	Slots     []float64 `json:"slots"`
	Available []float64 `json:"available"`
	Taken     []float64 `json:"taken"`
}
