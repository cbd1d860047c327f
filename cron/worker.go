package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"github.com/Tshikamisava/nanny-gold-sub003/config"
	bookingRepo "github.com/Tshikamisava/nanny-gold-sub003/database/repository/booking"
	"github.com/Tshikamisava/nanny-gold-sub003/models"
	"github.com/Tshikamisava/nanny-gold-sub003/services/tasks"
)

// InitBillingWorker runs the async billing-reminder worker in background.
func InitBillingWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBillingReminder, handleBillingReminderTask)

	go monitorQueueConnection()

	go func() {
		log.Println("[BillingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BillingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BillingWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBillingReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.BillingReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[BillingReminder] invalid payload: %v", err)
		return err
	}

	log.Printf("[BillingReminder] booking %s for user %s charges %.2f on %s",
		p.BookingID, p.UserID, p.Amount, p.CycleDate)
	return nil
}

// StartBillingScheduler enqueues a reminder three days ahead of each active
// long-term booking's next monthly charge. Runs one sweep per day; task IDs
// carry the cycle date so repeat sweeps do not duplicate reminders.
func StartBillingScheduler(repo bookingRepo.BookingRepository) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})

	go func() {
		for {
			sweepBillingReminders(client, repo)
			time.Sleep(24 * time.Hour)
		}
	}()
}

func sweepBillingReminders(client *asynq.Client, repo bookingRepo.BookingRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bookings, err := repo.ListActiveLongTerm(ctx)
	if err != nil {
		log.Printf("[BillingScheduler] failed to list active bookings: %v", err)
		return
	}

	now := time.Now()
	for _, b := range bookings {
		cycle := nextCycleDate(b.CreatedAt, now)
		fireAt := cycle.AddDate(0, 0, -3)
		if fireAt.Before(now) {
			continue
		}

		payload := models.BillingReminderPayload{
			BookingID: b.ID,
			UserID:    b.UserID,
			CycleDate: cycle.Format("2006-01-02"),
			Amount:    b.TotalCost,
		}
		task, opts, err := tasks.NewBillingReminderTask(payload, fireAt)
		if err != nil {
			log.Printf("[BillingScheduler] failed to build task for booking %s: %v", b.ID, err)
			continue
		}
		opts = append(opts, asynq.TaskID("billing:"+b.ID+":"+payload.CycleDate))

		if _, err := client.Enqueue(task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
			log.Printf("[BillingScheduler] failed to enqueue reminder for booking %s: %v", b.ID, err)
		}
	}
}

// nextCycleDate returns the first monthly anniversary of start that falls
// strictly after now. Anchored to the booking's creation day of month.
func nextCycleDate(start, now time.Time) time.Time {
	cycle := time.Date(now.Year(), now.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	if !cycle.After(now) {
		cycle = cycle.AddDate(0, 1, 0)
	}
	return cycle
}

// monitorQueueConnection pings Redis periodically to detect failures at runtime.
func monitorQueueConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[BillingWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
