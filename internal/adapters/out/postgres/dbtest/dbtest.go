// Package dbtest opens migrated databases for repository and query tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every migrated table, children first.
var Tables = []string{"payments", "order_items", "orders", "dishes", "restaurants", "users"}

// OpenSQLite returns a migrated in-memory database. The pool is pinned to one
// connection so every statement sees the same memory database.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}

// OpenPostgres starts a throwaway postgres container and returns a migrated
// connection to it. The container is terminated when t finishes.
func OpenPostgres(t testing.TB) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Open(ctx, dsn)
	require.NoError(t, err)

	require.NoError(t, postgres.Migrate(db))
	return db
}

// Reset deletes every row from every table.
func Reset(t testing.TB, db *gorm.DB) {
	t.Helper()
	for _, table := range Tables {
		require.NoError(t, db.Exec(fmt.Sprintf("DELETE FROM %s", pq.QuoteIdentifier(table))).Error)
	}
}
