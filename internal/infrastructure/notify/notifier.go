// Package notify delivers domain events after a mutation commits.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kept_house/internal/domain/entities"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// LogNotifier writes every event as a structured log line.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Publish(ctx context.Context, ev entities.DomainEvent) error {
	logger.Component(ctx, "events", "log").WithFields(logger.Fields{
		"type":        ev.Type,
		"entity_id":   ev.EntityID,
		"job_id":      ev.JobID,
		"payload":     ev.Payload,
		"occurred_at": ev.OccurredAt,
	}).Info("domain event")
	return nil
}

// RedisNotifier publishes JSON events on a pub/sub channel.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = "kepthouse.events"
	}
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Publish(ctx context.Context, ev entities.DomainEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := n.client.Publish(ctx, n.channel, b).Err(); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", ev.Type, err)
	}
	return nil
}

// Fanout delivers to every notifier and joins their failures.
type Fanout []interfaces.INotifier

var _ interfaces.INotifier = Fanout(nil)

func (f Fanout) Publish(ctx context.Context, ev entities.DomainEvent) error {
	var errs []error
	for _, n := range f {
		if err := n.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
