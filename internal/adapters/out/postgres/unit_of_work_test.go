package postgres_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/postgres/dbtest"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	open    func(t testing.TB) *gorm.DB
	db      *gorm.DB
	factory ports.UnitOfWorkFactory
}

func TestUnitOfWork_SQLite(t *testing.T) {
	suite.Run(t, &UnitOfWorkTestSuite{open: dbtest.OpenSQLite})
}

func TestUnitOfWork_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}
	suite.Run(t, &UnitOfWorkTestSuite{open: dbtest.OpenPostgres})
}

func (s *UnitOfWorkTestSuite) SetupSuite() {
	s.db = s.open(s.T())
	s.factory = postgres.NewGormUnitOfWorkFactory(s.db)
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	dbtest.Reset(s.T(), s.db)
}

func (s *UnitOfWorkTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	r, o := s.newRestaurantAndOrder()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))

	tracked := uow.(*postgres.GormUnitOfWork).TrackedIDs()
	s.Require().Len(tracked, 2)
	s.True(tracked[0].IsEqual(r.ID()))
	s.True(tracked[1].IsEqual(o.ID()))

	reader := s.factory.Create()
	_, err := reader.RestaurantRepository().Get(ctx, r.ID())
	s.Require().NoError(err)
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
}

func (s *UnitOfWorkTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	r, o := s.newRestaurantAndOrder()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Rollback(ctx))

	s.Empty(uow.(*postgres.GormUnitOfWork).TrackedIDs())

	reader := s.factory.Create()
	_, err := reader.RestaurantRepository().Get(ctx, r.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkTestSuite) TestRollback_AfterCommitIsNoop() {
	ctx := context.Background()
	r, _ := s.newRestaurantAndOrder()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(uow.Rollback(ctx))

	_, err := s.factory.Create().RestaurantRepository().Get(ctx, r.ID())
	s.Require().NoError(err)
}

func (s *UnitOfWorkTestSuite) TestCommit_WithoutBegin() {
	s.Require().ErrorIs(s.factory.Create().Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (s *UnitOfWorkTestSuite) TestBegin_Twice() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Commit(ctx))
}

func (s *UnitOfWorkTestSuite) newRestaurantAndOrder() (*restaurant.Restaurant, *order.Order) {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Luigi's", "1 Main St")
	s.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), nil)
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), r.ID(), r.OwnerID(),
		[]order.Item{item}, kernel.ZeroMoney(), time.Now())
	s.Require().NoError(err)
	return r, o
}
