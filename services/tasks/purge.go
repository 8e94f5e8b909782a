package tasks

import (
	"encoding/json"
	"time"

	"bookie/models"

	"github.com/hibiken/asynq"
)

const TypePurgeBookings = "bookings:purge"

// NewPurgeTask builds a task that deletes bookings older than retentionDays.
func NewPurgeTask(retentionDays int) (*asynq.Task, error) {
	b, err := json.Marshal(models.PurgePayload{RetentionDays: retentionDays})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurgeBookings, b, asynq.MaxRetry(3), asynq.Timeout(time.Minute)), nil
}
