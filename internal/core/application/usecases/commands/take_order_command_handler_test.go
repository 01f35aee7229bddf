package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTakeOrderCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Client)
	owner := newActor(t, user.Owner)
	driver := newActor(t, user.Delivery)
	o := newPendingOrder(t, customer, owner)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orders)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orders.On("AssignDriverIfUnset", mock.Anything, o.ID(), driver.ID()).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(events []order.Event) bool {
		return len(events) == 1 &&
			events[0].Kind == order.EventOrderUpdated &&
			events[0].Order.DriverID != nil &&
			events[0].Order.DriverID.IsEqual(driver.ID())
	})).Return(nil).Once()

	h := commands.NewTakeOrderCommandHandler(orderUoWFactory{factory}, publisher, nil)
	cmd, err := commands.NewTakeOrderCommand(driver, o.ID())
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.True(t, o.DriverID().IsEqual(driver.ID()))
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_AlreadyTakenIsConflict(t *testing.T) {
	customer := newActor(t, user.Client)
	owner := newActor(t, user.Owner)
	first := newActor(t, user.Delivery)

	for _, taker := range []user.Actor{first, newActor(t, user.Delivery)} {
		o := newPendingOrder(t, customer, owner)
		require.NoError(t, o.AssignDriver(first.ID(), o.CreatedAt()))

		orders := new(MockOrderRepository)
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
		uow := new(MockUoW)
		uow.On("OrderRepository").Return(orders)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow)
		publisher := new(MockEventPublisher)

		h := commands.NewTakeOrderCommandHandler(orderUoWFactory{factory}, publisher, nil)
		cmd, _ := commands.NewTakeOrderCommand(taker, o.ID())

		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrConflict)
		orders.AssertNotCalled(t, "AssignDriverIfUnset", mock.Anything, mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	}
}

func TestTakeOrderCommandHandler_LostRaceIsConflict(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t, newActor(t, user.Client), newActor(t, user.Owner))
	driver := newActor(t, user.Delivery)

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
	orders.On("AssignDriverIfUnset", mock.Anything, o.ID(), driver.ID()).Return(false, nil)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewTakeOrderCommandHandler(orderUoWFactory{factory}, new(MockEventPublisher), nil)
	cmd, _ := commands.NewTakeOrderCommand(driver, o.ID())

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
	assert.Nil(t, o.DriverID())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTakeOrderCommandHandler_StorageError(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t, newActor(t, user.Client), newActor(t, user.Owner))
	driver := newActor(t, user.Delivery)

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, o.ID()).Return(o, nil)
	orders.On("AssignDriverIfUnset", mock.Anything, o.ID(), driver.ID()).Return(false, errors.New("connection reset"))
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewTakeOrderCommandHandler(orderUoWFactory{factory}, new(MockEventPublisher), nil)
	cmd, _ := commands.NewTakeOrderCommand(driver, o.ID())

	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrConflict)
}

func TestTakeOrderCommandHandler_OnlyDrivers(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewTakeOrderCommandHandler(orderUoWFactory{factory}, new(MockEventPublisher), nil)

	for _, role := range []user.Role{user.Client, user.Owner} {
		o := newPendingOrder(t, newActor(t, user.Client), newActor(t, user.Owner))
		cmd, _ := commands.NewTakeOrderCommand(newActor(t, role), o.ID())

		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrForbidden)
	}
	factory.AssertNotCalled(t, "Create")
}
