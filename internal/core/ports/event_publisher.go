package ports

import (
	"context"

	"eats/internal/core/domain/model/order"
)

// EventPublisher delivers order lifecycle events to whoever listens.
// Implementations must not block on slow subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
