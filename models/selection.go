package models

import "time"

// SelectionSession is the persisted state of a user's in-progress slot selection.
type SelectionSession struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Room      string    `json:"room"`
	Date      string    `json:"date"`
	Slots     []float64 `json:"slots"`
	CreatedAt time.Time `json:"createdAt"`
}

// SelectionResponse is returned by every selection endpoint.
type SelectionResponse struct {
	Session     SelectionSession `json:"session"`
	State       string           `json:"state"`
	Available   []float64        `json:"available"`
	Invalidated bool             `json:"invalidated,omitempty"`
	Message     string           `json:"message,omitempty"`
}
