package commands

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// CreateOrderCommandHandler prices and stores a new order, then tells the
// restaurant owner about it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, hub, logger)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown restaurant or dish
//	case err != nil:
//	    // storage failure
//	}
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.EventPublisher
	pricing    services.PricingCalculator
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		pricing:    services.NewPricingCalculator(),
		logger:     componentLogger(logger, "create_order"),
	}
}

// Handle resolves the restaurant and every dish, fails with
// errs.ErrObjectNotFound when one is missing or a dish belongs to another
// restaurant, and stores a Pending order whose total is the sum of the item
// prices. NewPendingOrder is published once the transaction commits.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	dishRepo := uow.DishRepository()
	items := cmd.Items()
	prices := make([]kernel.Money, 0, len(items))
	for _, item := range items {
		dish, dishErr := dishRepo.Get(ctx, item.DishID())
		if dishErr != nil {
			return nil, dishErr
		}
		if !dish.RestaurantID().IsEqual(r.ID()) {
			return nil, errs.NewObjectNotFoundError("dish", item.DishID().String())
		}
		prices = append(prices, h.pricing.ComputeItemPrice(dish, item.Options()))
	}

	created, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer().ID(),
		r.ID(),
		r.OwnerID(),
		items,
		h.pricing.ComputeOrderTotal(prices...),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvents(ctx, h.publisher, h.logger, created.PullEvents())
	return created, nil
}
