package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
)

// publishEvents hands committed events to the publisher. A failure is logged
// and never reaches the caller: the mutation already succeeded.
func publishEvents(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, events []order.Event) {
	if len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.ErrorContext(ctx, "failed to publish order events",
			"error", err,
			"order_id", events[0].Order.ID.String(),
			"count", len(events),
		)
	}
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
