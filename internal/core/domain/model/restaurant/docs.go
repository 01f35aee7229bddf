// Package restaurant provides the Restaurant aggregate and the Dish entity that
// orders are priced from.
//
// The package includes:
//   - Restaurant: owned by exactly one Owner account; can be promoted for a period
//     after a payment and is un-promoted by the expiry sweep
//   - Dish: a priced menu entry with named options, each option carrying either a
//     flat extra price or a set of named choices with their own extras
//
// Order creation reads dishes and restaurants but never mutates them.
package restaurant
