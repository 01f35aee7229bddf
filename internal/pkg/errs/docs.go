// Package errs provides the typed errors shared by the order service.
// Use cases return these errors and the HTTP adapter classifies them with
// errors.Is against the sentinel values to pick a response status.
//
// The package includes:
//   - ObjectNotFoundError: an order, restaurant, dish or account does not exist
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: input rejected
//   - ForbiddenError: the actor may not see or change the object
//   - ConflictError: the write collides with current state (a driver already took the order)
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
package errs
