package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"eats/internal/adapters/out/notifier"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/generated/servers"
	"eats/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const defaultKeepAlive = 15 * time.Second

// Subscriptions opens live event streams. *notifier.Hub implements it.
type Subscriptions interface {
	SubscribePendingOrders(owner user.Actor) (*notifier.Subscription, error)
	SubscribeCookedOrders(driver user.Actor) (*notifier.Subscription, error)
	SubscribeOrderUpdates(actor user.Actor, orderID kernel.UUID) (*notifier.Subscription, error)
}

type streamEvent struct {
	Kind       string        `json:"kind"`
	OccurredAt time.Time     `json:"occurredAt"`
	Order      servers.Order `json:"order"`
}

// SubscribePendingOrders handles GET /api/v1/subscriptions/pending-orders.
func (s *Server) SubscribePendingOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	sub, err := s.subscriptions.SubscribePendingOrders(actor)
	if err != nil {
		return fail(ctx, err)
	}
	return s.stream(ctx, sub)
}

// SubscribeCookedOrders handles GET /api/v1/subscriptions/cooked-orders.
func (s *Server) SubscribeCookedOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	sub, err := s.subscriptions.SubscribeCookedOrders(actor)
	if err != nil {
		return fail(ctx, err)
	}
	return s.stream(ctx, sub)
}

// SubscribeOrderUpdates handles GET /api/v1/subscriptions/orders/{orderId}.
// The caller must be allowed to see the order at subscription time.
func (s *Server) SubscribeOrderUpdates(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := toKernelUUID("order", orderId)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return fail(ctx, err)
	}
	if _, err = s.handlers.GetOrder.Handle(ctx.Request().Context(), query); err != nil {
		return fail(ctx, err)
	}

	sub, err := s.subscriptions.SubscribeOrderUpdates(actor, orderID)
	if err != nil {
		return fail(ctx, err)
	}
	return s.stream(ctx, sub)
}

// stream writes events as server-sent events until the client goes away or
// the subscription is closed.
func (s *Server) stream(ctx echo.Context, sub *notifier.Subscription) error {
	defer sub.Close()

	reqCtx := ctx.Request().Context()
	logger := logging.FromContext(reqCtx)

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	keepAlive := time.NewTicker(s.keepAliveInterval())
	defer keepAlive.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case e, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := writeEvent(res, e); err != nil {
				logger.WarnContext(reqCtx, "Event stream write failed", "error", err)
				return nil
			}
			res.Flush()
		case <-keepAlive.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func (s *Server) keepAliveInterval() time.Duration {
	if s.keepAlive > 0 {
		return s.keepAlive
	}
	return defaultKeepAlive
}

func writeEvent(w http.ResponseWriter, e order.Event) error {
	data, err := json.Marshal(streamEvent{
		Kind:       string(e.Kind),
		OccurredAt: e.OccurredAt.UTC(),
		Order:      snapshotResponse(e.Order),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Kind, data)
	return err
}
