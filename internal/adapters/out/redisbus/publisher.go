// Package redisbus publishes committed domain events to a Redis stream.
//
// Each event becomes one stream entry with the fields type, aggregate_id,
// occurred_at (RFC 3339, UTC) and attributes (a JSON object). Publishing is
// best effort: the transition it describes is already committed, so a
// failure is logged and never returned to the caller.
package redisbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fleetflow/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultStream  = "fleetflow:events"
	defaultMaxLen  = 100_000
	defaultTimeout = 2 * time.Second
)

// Publisher implements ports.EventPublisher on top of XADD.
type Publisher struct {
	client  redis.Cmdable
	stream  string
	maxLen  int64
	timeout time.Duration
	logger  *slog.Logger
}

// Option customises a Publisher.
type Option func(*Publisher)

// WithMaxLen caps the stream length. Trimming is approximate.
func WithMaxLen(n int64) Option {
	return func(p *Publisher) { p.maxLen = n }
}

// WithTimeout bounds every XADD call.
func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) { p.timeout = d }
}

func NewPublisher(client redis.Cmdable, stream string, logger *slog.Logger, opts ...Option) *Publisher {
	if stream == "" {
		stream = DefaultStream
	}
	p := &Publisher{
		client:  client,
		stream:  stream,
		maxLen:  defaultMaxLen,
		timeout: defaultTimeout,
		logger:  logger.With("component", "redis_event_publisher", "stream", stream),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish appends events to the stream in order.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.Event) {
	for _, event := range events {
		if err := p.publish(ctx, event); err != nil {
			p.logger.ErrorContext(ctx, "failed to publish event",
				"type", event.Type,
				"aggregate_id", event.AggregateID.String(),
				"error", err,
			)
		}
	}
}

func (p *Publisher) publish(ctx context.Context, event kernel.Event) error {
	attributes, err := json.Marshal(event.Attributes)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"type":         event.Type,
			"aggregate_id": event.AggregateID.String(),
			"occurred_at":  event.OccurredAt.UTC().Format(time.RFC3339Nano),
			"attributes":   string(attributes),
		},
	}).Err()
}
