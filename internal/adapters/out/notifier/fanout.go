package notifier

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
)

// Fanout publishes every event to each sink in turn. A failing sink does not
// stop the others; their errors are joined.
type Fanout struct {
	sinks []ports.EventPublisher
}

func NewFanout(sinks ...ports.EventPublisher) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Publish(ctx context.Context, events ...order.Event) error {
	var errs []error
	for _, sink := range f.sinks {
		if err := sink.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DefaultRelayTimeout bounds a single relay publish.
const DefaultRelayTimeout = 2 * time.Second

// BoundedPublisher gives each Publish on the wrapped sink its own deadline.
// The deadline is detached from the caller's cancellation so a client that
// hangs up does not abort a relay mid-write.
type BoundedPublisher struct {
	sink    ports.EventPublisher
	timeout time.Duration
}

func WithTimeout(sink ports.EventPublisher, timeout time.Duration) *BoundedPublisher {
	if timeout <= 0 {
		timeout = DefaultRelayTimeout
	}
	return &BoundedPublisher{sink: sink, timeout: timeout}
}

func (b *BoundedPublisher) Publish(ctx context.Context, events ...order.Event) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
	defer cancel()
	return b.sink.Publish(ctx, events...)
}
