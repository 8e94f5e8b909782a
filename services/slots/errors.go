package slots

import (
	"fmt"
	"strings"
	"time"
)

// ConfigurationError reports a slot interval that cannot tile a day.
// It is the only error of this package that should stop the process.
type ConfigurationError struct {
	Interval float64
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid slot interval %g: %s", e.Interval, e.Reason)
}

// InvalidRangeError is returned when a requested selection covers a slot that
// is not bookable. The selection it was applied to is left unchanged.
type InvalidRangeError struct {
	From        Slot
	To          Slot
	Unavailable []Slot
}

func (e *InvalidRangeError) Error() string {
	labels := make([]string, len(e.Unavailable))
	for i, s := range e.Unavailable {
		labels[i] = s.String()
	}
	return fmt.Sprintf("range %s-%s includes unavailable slot(s) %s", e.From, e.To, strings.Join(labels, ", "))
}

// PastStartError is returned when a booking request does not start strictly after now.
type PastStartError struct {
	Start time.Time
	Now   time.Time
}

func (e *PastStartError) Error() string {
	return fmt.Sprintf("booking start %s is not after %s", e.Start.Format(time.RFC3339), e.Now.Format(time.RFC3339))
}

// EmptyDurationError is returned when a booking request would last zero hours.
type EmptyDurationError struct{}

func (e *EmptyDurationError) Error() string {
	return "booking duration has to be greater than 0"
}
