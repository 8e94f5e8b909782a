package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookie/config"
	"bookie/models"
	"bookie/services/tasks"
	"bookie/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingPurger deletes bookings that started before a cutoff.
type BookingPurger interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// InitPurgeWorker schedules the booking purge on PURGE_SCHEDULE and runs the
// asynq worker that executes it. The returned function stops both.
func InitPurgeWorker(repo BookingPurger) (func(), error) {
	logger := utils.GetLogger()
	if config.AppConfig.BookingRetentionDays <= 0 {
		logger.Info("Booking purge disabled")
		return func() {}, nil
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	task, err := tasks.NewPurgeTask(config.AppConfig.BookingRetentionDays)
	if err != nil {
		return nil, err
	}
	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(config.AppConfig.PurgeSchedule, task); err != nil {
		return nil, fmt.Errorf("invalid PURGE_SCHEDULE %q: %w", config.AppConfig.PurgeSchedule, err)
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 1,
		Queues:      map[string]int{"default": 1},
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePurgeBookings, handlePurgeTask(repo, time.Now))

	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start purge scheduler: %w", err)
	}

	// Start async worker with retry logic
	go func() {
		logger.Info("Starting purge worker", zap.String("schedule", config.AppConfig.PurgeSchedule))
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Start(mux); err != nil {
				logger.Error("Purge worker failed to start", zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Error("Purge worker gave up")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}, nil
}

func handlePurgeTask(repo BookingPurger, now func() time.Time) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PurgePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid purge payload: %v: %w", err, asynq.SkipRetry)
		}
		if p.RetentionDays <= 0 {
			return nil
		}

		cutoff := now().AddDate(0, 0, -p.RetentionDays)
		deleted, err := repo.DeleteBefore(ctx, cutoff)
		if err != nil {
			return err
		}
		utils.GetLogger().Info("Purged old bookings", zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))
		return nil
	}
}
