package queries_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/dbtest"
	"eats/internal/adapters/out/postgres/paymentrepo"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaymentsQueryHandler(t *testing.T) {
	db := dbtest.OpenSQLite(t)
	repo := paymentrepo.NewGormPaymentRepository(db)
	ctx := context.Background()

	owner := newActor(t, user.Owner)
	stranger := newActor(t, user.Owner)
	restaurantID := kernel.NewUUID()
	base := time.Now().UTC().Add(-time.Hour)

	older, err := payment.NewPayment(kernel.NewUUID(), "tx-older", owner.ID(), restaurantID, base)
	require.NoError(t, err)
	newer, err := payment.NewPayment(kernel.NewUUID(), "tx-newer", owner.ID(), restaurantID, base.Add(time.Minute))
	require.NoError(t, err)
	foreign, err := payment.NewPayment(kernel.NewUUID(), "tx-foreign", stranger.ID(), kernel.NewUUID(), base)
	require.NoError(t, err)
	for _, p := range []*payment.Payment{older, newer, foreign} {
		require.NoError(t, repo.Add(ctx, p))
	}

	h := queries.NewGetPaymentsQueryHandler(db)

	t.Run("owner sees own payments newest first", func(t *testing.T) {
		q, err := queries.NewGetPaymentsQuery(owner)
		require.NoError(t, err)

		got, err := h.Handle(ctx, q)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "tx-newer", got[0].TransactionID)
		assert.True(t, got[0].ID.IsEqual(newer.ID()))
		assert.True(t, got[0].RestaurantID.IsEqual(restaurantID))
		assert.WithinDuration(t, newer.CreatedAt(), got[0].CreatedAt, time.Second)
		assert.Equal(t, "tx-older", got[1].TransactionID)
	})

	t.Run("owner without payments gets an empty list", func(t *testing.T) {
		q, err := queries.NewGetPaymentsQuery(newActor(t, user.Owner))
		require.NoError(t, err)

		got, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("other roles are forbidden", func(t *testing.T) {
		for _, role := range []user.Role{user.Client, user.Delivery} {
			q, err := queries.NewGetPaymentsQuery(newActor(t, role))
			require.NoError(t, err)

			_, err = h.Handle(ctx, q)

			require.ErrorIs(t, err, errs.ErrForbidden)
		}
	})
}
