package order

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ItemOption is an option the customer selected, optionally narrowed to one of
// its choices ("Size" / "Large").
type ItemOption struct {
	Name   string
	Choice *string
}

// Item is one line of an order: a dish and the selected options. It never
// changes once attached to an order.
type Item struct {
	dishID  kernel.UUID
	options []ItemOption
}

// NewItem validates the dish id and copies the selected options.
func NewItem(dishID kernel.UUID, options []ItemOption) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("dish", err)
	}
	return Item{dishID: dishID, options: copyOptions(options)}, nil
}

func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// Options returns a copy of the selected options.
func (i Item) Options() []ItemOption {
	return copyOptions(i.options)
}

func copyOptions(options []ItemOption) []ItemOption {
	out := make([]ItemOption, 0, len(options))
	for _, o := range options {
		if o.Choice != nil {
			choice := *o.Choice
			o.Choice = &choice
		}
		out = append(out, o)
	}
	return out
}
