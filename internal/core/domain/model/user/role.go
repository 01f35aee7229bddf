package user

import (
	"fmt"
	"strings"

	"eats/internal/pkg/errs"
)

// Role is the closed variant of actor kinds. It drives both which orders an
// actor may see and which statuses it may write.
type Role int

const (
	// UnknownRole is the zero value and is never valid.
	UnknownRole Role = iota

	// Client places orders as a customer.
	Client

	// Owner runs one or more restaurants.
	Owner

	// Delivery drives orders to customers.
	Delivery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Client:      "Client",
		Owner:       "Owner",
		Delivery:    "Delivery",
	}
}

// Roles lists the valid roles in declaration order.
func Roles() []Role {
	return []Role{Client, Owner, Delivery}
}

// ParseRole maps "Client", "Owner" or "Delivery" (case-insensitive) to a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if strings.EqualFold(r.String(), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects UnknownRole and values outside the declared set.
func (r Role) Validate() error {
	if r != Client && r != Owner && r != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
