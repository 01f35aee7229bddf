package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Client)
	owner := newActor(t, user.Owner)
	r := newRestaurant(t, owner)
	pizza := newPizza(t, r)

	item, err := order.NewItem(pizza.ID(), []order.ItemOption{{Name: "Extra cheese"}})
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, r.ID(), []order.Item{item})
	require.NoError(t, err)

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", mock.Anything, r.ID()).Return(r, nil).Once()
	dishes := new(MockDishRepository)
	dishes.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil).Once()
	orders := new(MockOrderRepository)
	orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("DishRepository").Return(dishes)
	uow.On("OrderRepository").Return(orders)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(events []order.Event) bool {
		return len(events) == 1 &&
			events[0].Kind == order.EventNewPendingOrder &&
			events[0].Order.OwnerID.IsEqual(owner.ID())
	})).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(checkoutUoWFactory{factory}, publisher, nil)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, int64(1150), created.Total().Cents())
	assert.True(t, created.OwnerID().IsEqual(owner.ID()))
	assert.True(t, created.CustomerID().IsEqual(customer.ID()))
	restaurants.AssertExpectations(t)
	dishes.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Client)
	item, _ := order.NewItem(kernel.NewUUID(), nil)
	restaurantID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, restaurantID, []order.Item{item})

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", mock.Anything, restaurantID).
		Return(nil, errs.NewObjectNotFoundError("restaurant", restaurantID.String())).Once()

	uow := new(MockUoW)
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockEventPublisher)

	h := commands.NewCreateOrderCommandHandler(checkoutUoWFactory{factory}, publisher, nil)
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, created)
	uow.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_DishFromOtherRestaurant(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Client)
	owner := newActor(t, user.Owner)
	r := newRestaurant(t, owner)
	foreign := newPizza(t, newRestaurant(t, owner))

	item, _ := order.NewItem(foreign.ID(), nil)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, r.ID(), []order.Item{item})

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", mock.Anything, r.ID()).Return(r, nil).Once()
	dishes := new(MockDishRepository)
	dishes.On("Get", mock.Anything, foreign.ID()).Return(foreign, nil).Once()

	uow := new(MockUoW)
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("DishRepository").Return(dishes)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(checkoutUoWFactory{factory}, new(MockEventPublisher), nil)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureIsIgnored(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Client)
	owner := newActor(t, user.Owner)
	r := newRestaurant(t, owner)
	pizza := newPizza(t, r)
	item, _ := order.NewItem(pizza.ID(), nil)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, r.ID(), []order.Item{item})

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", mock.Anything, r.ID()).Return(r, nil)
	dishes := new(MockDishRepository)
	dishes.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil)
	orders := new(MockOrderRepository)
	orders.On("Add", mock.Anything, mock.Anything).Return(nil)

	uow := new(MockUoW)
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("DishRepository").Return(dishes)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(checkoutUoWFactory{factory}, publisher, nil)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), created.Total().Cents())
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Client)
	owner := newActor(t, user.Owner)
	r := newRestaurant(t, owner)
	pizza := newPizza(t, r)
	item, _ := order.NewItem(pizza.ID(), nil)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, r.ID(), []order.Item{item})

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", mock.Anything, r.ID()).Return(r, nil)
	dishes := new(MockDishRepository)
	dishes.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil)
	orders := new(MockOrderRepository)
	orders.On("Add", mock.Anything, mock.Anything).Return(nil)

	uow := new(MockUoW)
	uow.On("RestaurantRepository").Return(restaurants)
	uow.On("DishRepository").Return(dishes)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(errors.New("commit error"))
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	publisher := new(MockEventPublisher)

	h := commands.NewCreateOrderCommandHandler(checkoutUoWFactory{factory}, publisher, nil)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(checkoutUoWFactory{new(MockUoWFactory)}, new(MockEventPublisher), nil)
	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	customer := newActor(t, user.Client)

	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, user.Actor{}, kernel.UUID{}, nil)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, user.ErrActorIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), customer, kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "items")
}
