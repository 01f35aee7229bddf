package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentsQueryHandler reads payments straight from the payments table.
type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle returns the owner's payments, newest first. Non-owners are forbidden.
func (h GetPaymentsQueryHandler) Handle(ctx context.Context, query GetPaymentsQuery) ([]GetPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	owner := query.Owner()
	if !owner.Is(user.Owner) {
		return nil, errs.NewForbiddenError("list payments")
	}

	payments := make([]GetPaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			transaction_id,
			restaurant_id,
			created_at
		FROM payments
		WHERE owner_id = ?
		ORDER BY created_at DESC, id
	`, owner.ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPaymentsQueryResponse
		var id, restaurantID uuid.UUID

		if err = rows.Scan(&id, &resp.TransactionID, &restaurantID, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()
		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
