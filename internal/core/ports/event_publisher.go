package ports

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
)

// EventPublisher announces transitions that have already been committed.
// Delivery is best effort: implementations log failures and never undo the
// committed change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.Event)
}

// NopEventPublisher discards every event.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, ...kernel.Event) {}
