package restaurant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant")

const (
	nameMinLen = 2
	nameMaxLen = 100
)

// Restaurant is the aggregate root for a venue and its promotion state.
//
// Invariants:
//   - owner is a valid account id
//   - name is 2..100 characters, address is non-empty
//   - promotedUntil is set exactly when isPromoted is true
type Restaurant struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	name          string
	address       string
	isPromoted    bool
	promotedUntil *time.Time

	isConstructed bool
}

// NewRestaurant creates an unpromoted restaurant owned by ownerID.
//
// Example:
//
//	r, err := restaurant.NewRestaurant(kernel.NewUUID(), owner.ID(), "Pizza Hub", "1 Main St")
func NewRestaurant(id, ownerID kernel.UUID, name, address string) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true}
	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreRestaurant rebuilds a restaurant read back from storage, including its
// promotion state.
func RestoreRestaurant(
	id, ownerID kernel.UUID,
	name, address string,
	promotedUntil *time.Time,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name, address)
	if err != nil {
		return nil, err
	}
	if promotedUntil != nil {
		until := promotedUntil.UTC()
		r.isPromoted = true
		r.promotedUntil = &until
	}
	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() string {
	return r.address
}

func (r *Restaurant) IsPromoted() bool {
	return r.isPromoted
}

// PromotedUntil returns nil for an unpromoted restaurant.
func (r *Restaurant) PromotedUntil() *time.Time {
	if r.promotedUntil == nil {
		return nil
	}
	until := *r.promotedUntil
	return &until
}

// IsOwnedBy reports whether the account owns this restaurant.
func (r *Restaurant) IsOwnedBy(accountID kernel.UUID) bool {
	return r.ownerID.IsEqual(accountID)
}

// Promote marks the restaurant as promoted for the given period starting at now.
// A restaurant that is already promoted gets the new end date.
func (r *Restaurant) Promote(now time.Time, period time.Duration) error {
	if period <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("promotion period", fmt.Errorf("%s is not positive", period))
	}
	until := now.UTC().Add(period)
	r.isPromoted = true
	r.promotedUntil = &until
	return nil
}

// ExpirePromotion clears a promotion whose end date is before now.
// It reports whether anything changed.
func (r *Restaurant) ExpirePromotion(now time.Time) bool {
	if !r.isPromoted || r.promotedUntil == nil || !r.promotedUntil.Before(now) {
		return false
	}
	r.isPromoted = false
	r.promotedUntil = nil
	return true
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n < nameMinLen || n > nameMaxLen {
		return errs.NewValueIsOutOfRangeError("name length", n, nameMinLen, nameMaxLen)
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}
