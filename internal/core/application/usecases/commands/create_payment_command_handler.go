package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"
)

// DefaultPromotionPeriod is how long one payment keeps a restaurant promoted.
const DefaultPromotionPeriod = 7 * 24 * time.Hour

// CreatePaymentCommandHandler records a payment and promotes the paid-for
// restaurant in the same transaction.
type CreatePaymentCommandHandler struct {
	uowFactory      PaymentUoWFactory
	promotionPeriod time.Duration
}

// NewCreatePaymentCommandHandler uses DefaultPromotionPeriod when period is not positive.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory, period time.Duration) CreatePaymentCommandHandler {
	if period <= 0 {
		period = DefaultPromotionPeriod
	}
	return CreatePaymentCommandHandler{
		uowFactory:      uowFactory,
		promotionPeriod: period,
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown restaurant, with
// errs.ErrForbidden when the actor does not own it and with errs.ErrConflict
// for a transaction id that was already recorded.
func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*payment.Payment, error) {
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

	restaurantRepo := uow.RestaurantRepository()
	r, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(cmd.Owner().ID()) {
		return nil, errs.NewForbiddenError("pay for restaurant " + r.ID().String())
	}

	now := time.Now()
	p, err := payment.NewPayment(cmd.PaymentID(), cmd.TransactionID(), cmd.Owner().ID(), r.ID(), now)
	if err != nil {
		return nil, err
	}

	if err = r.Promote(now, h.promotionPeriod); err != nil {
		return nil, err
	}

	if err = restaurantRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
