package notification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
)

// Worker drains the first-aider notification queue and delivers each
// event over SMS. Delivery is best-effort: the handoff pipeline never
// waits on it.
type Worker struct {
	redisClient *redis.Client
	sender      Sender
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewWorker creates a notification Worker.
func NewWorker(redisClient *redis.Client, sender Sender, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		sender:      sender,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start launches the queue-draining goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// Blocking pop; 0 means wait indefinitely.
				result, err := w.redisClient.BRPop(ctx, 0, notifyQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop notification event from Redis")
					time.Sleep(w.cfg.NotifyBaseDelay)
					continue
				}

				// result[0] is the key, result[1] the payload.
				var event Event
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification event from Redis")
					continue
				}

				w.processEvent(ctx, event)
			}
		}
	}()
}

func (w *Worker) processEvent(ctx context.Context, event Event) {
	log := w.logger.WithFields(logrus.Fields{
		"communication_id": event.CommunicationID,
		"recipient_id":     event.RecipientID,
		"kind":             event.Kind,
	})
	log.Debug("Processing notification event...")

	if event.Phone == "" {
		log.Warn("First aider has no phone number on record. Skipping notification.")
		return
	}

	msg := Message{
		Channel:   models.ChannelSMS,
		Recipient: event.Phone,
		Body:      event.Title + "\n" + event.Body,
	}

	maxRetries := w.cfg.NotifyMaxRetries
	baseDelay := w.cfg.NotifyBaseDelay

	for i := 0; i < maxRetries; i++ {
		_, err := w.sender.Send(ctx, msg)
		if err == nil {
			log.Info("Notification delivered successfully.")
			return
		}

		log.WithError(err).Warnf("Failed to send notification. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver notification after %d retries.", maxRetries)
}
