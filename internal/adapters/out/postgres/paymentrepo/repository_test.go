package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/dbtest"
	"eats/internal/adapters/out/postgres/paymentrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_Add(t *testing.T) {
	db := dbtest.OpenSQLite(t)
	repo := paymentrepo.NewGormPaymentRepository(db)
	ctx := context.Background()

	p, err := payment.NewPayment(kernel.NewUUID(), "tx-1", kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, p))

	var count int64
	require.NoError(t, db.Model(&paymentrepo.PaymentDTO{}).Where("transaction_id = ?", "tx-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPaymentRepository_DuplicateTransaction(t *testing.T) {
	repo := paymentrepo.NewGormPaymentRepository(dbtest.OpenSQLite(t))
	ctx := context.Background()

	first, err := payment.NewPayment(kernel.NewUUID(), "tx-1", kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	second, err := payment.NewPayment(kernel.NewUUID(), "tx-1", kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, first))

	err = repo.Add(ctx, second)

	require.ErrorIs(t, err, errs.ErrConflict)
}
