package queries

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

type GetOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetOrdersQueryHandler(orders OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns a client's orders as customer, a driver's orders as driver
// and, for an owner, the orders of every restaurant they own.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	id := actor.ID()
	filter := ports.OrderFilter{Status: query.Status()}
	switch actor.Role() {
	case user.Client:
		filter.CustomerID = &id
	case user.Delivery:
		filter.DriverID = &id
	case user.Owner:
		filter.OwnerID = &id
	default:
		return nil, errs.NewForbiddenError("list orders as " + actor.Role().String())
	}

	return h.orders.Find(ctx, filter)
}
