// Package order provides the Order aggregate of the food-delivery service together
// with its status variant, immutable items and the lifecycle events it raises.
//
// The package includes:
//   - Order: created by a customer for one restaurant, priced once at creation, then
//     mutated only by status changes and a one-time driver assignment
//   - Status: Pending, Cooking, Cooked, PickedUp, Delivered
//   - Item: a dish reference plus the options the customer selected
//   - Event: NewPendingOrder, NewCookedOrder and OrderUpdated, recorded by the
//     aggregate and pulled by the application layer after commit
//
// Which actor may write which status is decided by the services package; the
// aggregate only records the change and the events it implies.
package order
