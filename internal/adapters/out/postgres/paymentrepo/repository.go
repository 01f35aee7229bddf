// Package paymentrepo persists promotion payments with GORM.
package paymentrepo

import (
	"context"
	"time"

	"eats/internal/adapters/out/postgres/sqlerr"
	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID string    `gorm:"uniqueIndex;not null"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index;not null"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

// GormPaymentRepository implements ports.PaymentRepository using GORM.
// Payments are read by the GetPayments query straight from the table.
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := PaymentDTO{
		ID:            p.ID().Bytes(),
		TransactionID: p.TransactionID(),
		OwnerID:       p.OwnerID().Bytes(),
		RestaurantID:  p.RestaurantID().Bytes(),
		CreatedAt:     p.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("transaction", p.TransactionID(), err)
		}
		return err
	}
	return nil
}
