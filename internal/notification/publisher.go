package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const notifyQueueKey = "haven:first_aider_notifications"

// RedisPublisher enqueues first-aider notification events on a Redis
// list consumed by the Worker.
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher creates a publisher backed by Redis.
func NewRedisPublisher(redisClient *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: redisClient}
}

// Publish pushes the event onto the notification queue.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notification: could not marshal event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, notifyQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("notification: could not enqueue event: %w", err)
	}

	return nil
}
