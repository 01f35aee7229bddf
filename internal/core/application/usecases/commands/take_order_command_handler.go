package commands

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// TakeOrderCommandHandler lets a driver claim an order. At most one driver
// ever holds an order: the claim is a single conditional write in storage, so
// of two concurrent claims exactly one applies.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // somebody else took it
//	}
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewTakeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     componentLogger(logger, "take_order"),
	}
}

// Handle fails with errs.ErrForbidden for a non-driver, errs.ErrObjectNotFound
// for an unknown order and errs.ErrConflict when the order already has a
// driver. On success OrderUpdated is published after commit.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	driver := cmd.Driver()
	if driver.Role() != user.Delivery {
		return errs.NewForbiddenError("only drivers take orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if o.HasDriver() {
		return errs.NewConflictError("order already has a driver", o.ID().String())
	}

	applied, err := orderRepo.AssignDriverIfUnset(ctx, o.ID(), driver.ID())
	if err != nil {
		return err
	}
	if !applied {
		return errs.NewConflictError("order already has a driver", o.ID().String())
	}

	if err = o.AssignDriver(driver.ID(), time.Now()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, h.logger, o.PullEvents())
	return nil
}
