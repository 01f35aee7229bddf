// Package notifier delivers order lifecycle events to live subscribers and,
// optionally, to external brokers.
package notifier

import (
	"context"
	"log/slog"
	"sync"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// DefaultBuffer is the per-subscriber queue length used when none is given.
const DefaultBuffer = 16

// Subscription is one live listener. Events arrive on Events until Close is
// called or the hub shuts down, after which the channel is closed.
type Subscription struct {
	id     uint64
	hub    *Hub
	events chan order.Event
	once   sync.Once
}

func (s *Subscription) Events() <-chan order.Event {
	return s.events
}

// Close detaches the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s.id) })
}

type subscriber struct {
	sub     *Subscription
	accepts func(order.Event) bool
}

// Hub broadcasts published events to the subscribers whose filter accepts
// them. There is no replay: a subscriber only sees events published while it
// is attached. A subscriber whose queue is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]subscriber
	closed bool

	buffer int
	logger *slog.Logger
}

func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:   make(map[uint64]subscriber),
		buffer: buffer,
		logger: logger.With("component", "notifier_hub"),
	}
}

// SubscribePendingOrders streams NewPendingOrder events for restaurants the
// owner owns.
func (h *Hub) SubscribePendingOrders(owner user.Actor) (*Subscription, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if !owner.Is(user.Owner) {
		return nil, errs.NewForbiddenError("subscribe to pending orders")
	}
	return h.subscribe(func(e order.Event) bool {
		return e.Kind == order.EventNewPendingOrder && e.Order.OwnerID.IsEqual(owner.ID())
	})
}

// SubscribeCookedOrders streams every NewCookedOrder event to a driver.
func (h *Hub) SubscribeCookedOrders(driver user.Actor) (*Subscription, error) {
	if err := driver.Validate(); err != nil {
		return nil, err
	}
	if !driver.Is(user.Delivery) {
		return nil, errs.NewForbiddenError("subscribe to cooked orders")
	}
	return h.subscribe(func(e order.Event) bool {
		return e.Kind == order.EventNewCookedOrder
	})
}

// SubscribeOrderUpdates streams OrderUpdated events of one order. Only the
// order's customer, driver or restaurant owner receive anything; the check is
// made per event because a driver becomes a participant only once assigned.
func (h *Hub) SubscribeOrderUpdates(actor user.Actor, orderID kernel.UUID) (*Subscription, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return h.subscribe(func(e order.Event) bool {
		return e.Kind == order.EventOrderUpdated &&
			e.Order.ID.IsEqual(orderID) &&
			e.Order.IsParticipant(actor.ID())
	})
}

// Publish hands each event to every accepting subscriber without blocking.
// It never fails; dropped deliveries are logged.
func (h *Hub) Publish(ctx context.Context, events ...order.Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range events {
		for id, s := range h.subs {
			if !s.accepts(e) {
				continue
			}
			select {
			case s.sub.events <- e:
			default:
				h.logger.WarnContext(ctx, "subscriber queue full, event dropped",
					"subscription", id, "kind", e.Kind, "order_id", e.Order.ID.String())
			}
		}
	}
	return nil
}

// Subscribers reports the number of attached subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close detaches and closes every subscription. Later subscribe calls fail.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, s := range h.subs {
		close(s.sub.events)
		delete(h.subs, id)
	}
}

func (h *Hub) subscribe(accepts func(order.Event) bool) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	h.nextID++
	sub := &Subscription{
		id:     h.nextID,
		hub:    h,
		events: make(chan order.Event, h.buffer),
	}
	h.subs[sub.id] = subscriber{sub: sub, accepts: accepts}
	return sub, nil
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(s.sub.events)
}
