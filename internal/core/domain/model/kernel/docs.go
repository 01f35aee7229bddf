// Package kernel holds the value objects shared by every aggregate of the
// order service.
//
// The package includes:
//   - UUID: entity identifier with validation and comparison
//   - Money: non-negative amount in minor units used for prices and totals
//
// Both types are immutable and their zero values fail Validate, so an
// identifier or amount that skipped its constructor is caught at the aggregate
// boundary.
package kernel
