package commands_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role user.Role) user.Actor {
	t.Helper()
	a, err := user.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromDecimal(amount)
	require.NoError(t, err)
	return m
}

func newRestaurant(t *testing.T, owner user.Actor) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), owner.ID(), "Pizza Hub", "1 Main St")
	require.NoError(t, err)
	return r
}

// newPizza is priced 10.00 with an "Extra cheese" option at 1.50.
func newPizza(t *testing.T, r *restaurant.Restaurant) *restaurant.Dish {
	t.Helper()
	cheese := money(t, 1.50)
	d, err := restaurant.NewDish(kernel.NewUUID(), r.ID(), "Margherita", money(t, 10),
		[]restaurant.DishOption{{Name: "Extra cheese", Extra: &cheese}})
	require.NoError(t, err)
	return d
}

func newPendingOrder(t *testing.T, customer, owner user.Actor) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customer.ID(), kernel.NewUUID(), owner.ID(),
		[]order.Item{item}, money(t, 10), time.Now())
	require.NoError(t, err)
	o.PullEvents()
	return o
}
