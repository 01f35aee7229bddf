package order

import (
	"fmt"
	"strings"

	"eats/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//
// The order of the chain is descriptive. Skipping states is allowed; what a
// given role may write is restricted elsewhere.
type Status int

const (
	// UnknownStatus is the zero value and is never valid.
	UnknownStatus Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Cooking is set by the restaurant owner once the kitchen starts.
	Cooking

	// Cooked is set by the restaurant owner; drivers are notified.
	Cooked

	// PickedUp is set by the driver on leaving the restaurant.
	PickedUp

	// Delivered is the terminal status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Cooking:       "Cooking",
		Cooked:        "Cooked",
		PickedUp:      "PickedUp",
		Delivered:     "Delivered",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Cooking, Cooked, PickedUp, Delivered}
}

// ParseStatus maps a status name (case-insensitive) to a Status.
//
// Example:
//
//	s, err := order.ParseStatus(c.QueryParam("status"))
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if strings.EqualFold(st.String(), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects UnknownStatus and values outside the declared set.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsFinal reports whether no further status is expected.
func (s Status) IsFinal() bool {
	return s == Delivered
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
