// Package user models who acts on the order service.
//
// The package includes:
//   - Role: the closed set Client, Owner, Delivery
//   - Actor: an authenticated identity (id + role) handed to every use case
//   - User: the persisted account behind an Actor
//
// Every account has exactly one role and the role never changes. Use cases never
// branch on account data beyond the Actor, which keeps the permission rules in
// the services package pure functions of (role, ids).
package user
