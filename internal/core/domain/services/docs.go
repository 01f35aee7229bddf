// Package services provides the domain services of the food-delivery core that
// do not belong to a single aggregate.
//
// The package includes:
//   - PricingCalculator: item prices from a dish and the selected options, and
//     order totals as the sum of item prices
//   - CanSeeOrder and CanEdit: the visibility and status-write rules, as pure
//     functions over the closed set of roles
package services
