package queries_test

import (
	"context"
	"testing"

	"eats/internal/adapters/out/postgres/dbtest"
	"eats/internal/adapters/out/postgres/userrepo"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileQueryHandler(t *testing.T) {
	repo := userrepo.NewGormUserRepository(dbtest.OpenSQLite(t))
	ctx := context.Background()
	account, err := user.NewUser(kernel.NewUUID(), "me@example.com", "hash", user.Delivery)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, account))

	h := queries.NewGetProfileQueryHandler(repo)

	t.Run("returns the caller's account", func(t *testing.T) {
		q, err := queries.NewGetProfileQuery(account.Actor())
		require.NoError(t, err)

		got, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(account.ID()))
		assert.Equal(t, "me@example.com", got.Email())
		assert.Equal(t, user.Delivery, got.Role())
	})

	t.Run("deleted account", func(t *testing.T) {
		q, err := queries.NewGetProfileQuery(newActor(t, user.Client))
		require.NoError(t, err)

		_, err = h.Handle(ctx, q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("zero actor", func(t *testing.T) {
		_, err := queries.NewGetProfileQuery(user.Actor{})
		require.ErrorIs(t, err, user.ErrActorIsNotConstructed)
	})
}
