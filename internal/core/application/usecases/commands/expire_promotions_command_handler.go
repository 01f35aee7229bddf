package commands

import (
	"context"
)

// ExpirePromotionsCommandHandler is driven by the promotion expiry job.
type ExpirePromotionsCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewExpirePromotionsCommandHandler(uowFactory RestaurantUoWFactory) ExpirePromotionsCommandHandler {
	return ExpirePromotionsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of restaurants that lost their promotion.
func (h ExpirePromotionsCommandHandler) Handle(ctx context.Context, cmd ExpirePromotionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	expired, err := restaurantRepo.GetAllPromotionExpired(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	count := 0
	for _, r := range expired {
		if !r.ExpirePromotion(cmd.Now()) {
			continue
		}
		if err = restaurantRepo.Update(ctx, r); err != nil {
			return 0, err
		}
		count++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
