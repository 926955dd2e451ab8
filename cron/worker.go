package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wayfare/config"
	"wayfare/services/media"
	"wayfare/services/tasks"

	"github.com/hibiken/asynq"
)

// InitMediaWorker runs the async media resolution worker in background.
func InitMediaWorker(fetcher *media.Fetcher) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMediaQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMediaResolve, handleMediaTask(fetcher))

	// Start async worker with retry logic
	go func() {
		log.Println("[MediaWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MediaWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MediaWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleMediaTask(fetcher *media.Fetcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.MediaTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MediaWorker] invalid payload: %v", err)
			return err
		}

		photos, err := fetcher.Resolve(ctx, p.Destination, p.Activity)
		if err != nil {
			log.Printf("[MediaWorker] resolve failed for %q: %v", p.Activity.Title, err)
		}
		if len(photos) == 0 {
			// Nothing resolved; leave no entry rather than an empty one.
			return nil
		}

		if err := tasks.StoreMediaResult(ctx, p.Key, photos); err != nil {
			log.Printf("[MediaWorker] failed to store result for %q: %v", p.Activity.Title, err)
			return err
		}
		return nil
	}
}
