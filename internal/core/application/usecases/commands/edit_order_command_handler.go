package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditOrderCommandHandler applies a role-gated status change.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     componentLogger(logger, "edit_order"),
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown order and with
// errs.ErrForbidden when the actor may not see the order or may not write the
// status. After commit it publishes OrderUpdated, preceded by NewCookedOrder
// when an owner marked the order Cooked.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !services.CanSeeOrder(actor, o) {
		return nil, errs.NewForbiddenError("see order " + o.ID().String())
	}
	if !services.CanEdit(actor.Role(), cmd.Status()) {
		return nil, errs.NewForbiddenError(fmt.Sprintf("%s may not set status %s", actor.Role(), cmd.Status()))
	}

	if err = o.ChangeStatus(actor, cmd.Status(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvents(ctx, h.publisher, h.logger, o.PullEvents())
	return o, nil
}
