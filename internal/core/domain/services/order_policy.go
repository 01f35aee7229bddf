package services

import (
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
)

// CanSeeOrder reports whether actor may read the order: a client only their own
// orders, a driver only orders assigned to them, an owner only orders of their
// restaurants.
func CanSeeOrder(actor user.Actor, o *order.Order) bool {
	if actor.Validate() != nil || o == nil {
		return false
	}
	switch actor.Role() {
	case user.Client:
		return o.CustomerID().IsEqual(actor.ID())
	case user.Delivery:
		driverID := o.DriverID()
		return driverID != nil && driverID.IsEqual(actor.ID())
	case user.Owner:
		return o.OwnerID().IsEqual(actor.ID())
	default:
		return false
	}
}

// CanEdit reports whether role may write the target status. Clients never may;
// owners may write Cooking and Cooked; drivers PickedUp and Delivered.
func CanEdit(role user.Role, target order.Status) bool {
	switch role {
	case user.Owner:
		return target == order.Cooking || target == order.Cooked
	case user.Delivery:
		return target == order.PickedUp || target == order.Delivered
	default:
		return false
	}
}
