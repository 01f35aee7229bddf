package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish")

// DishChoice is one named alternative within an option, e.g. "Large" for "Size".
type DishChoice struct {
	Name  string
	Extra *kernel.Money
}

// DishOption is a named customization of a dish. It either carries a flat Extra
// ("Extra cheese" +1.50) or a set of Choices each with its own extra.
type DishOption struct {
	Name    string
	Extra   *kernel.Money
	Choices []DishChoice
}

// FindChoice returns the choice with the given name.
func (o DishOption) FindChoice(name string) (DishChoice, bool) {
	for _, c := range o.Choices {
		if c.Name == name {
			return c, true
		}
	}
	return DishChoice{}, false
}

// Dish is a menu entry of one restaurant.
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
	options      []DishOption

	isConstructed bool
}

// NewDish validates and creates a dish. Option names must be unique within the
// dish and choice names unique within their option.
//
// Example:
//
//	price, _ := kernel.MoneyFromDecimal(10.00)
//	cheese, _ := kernel.MoneyFromDecimal(1.50)
//	dish, err := restaurant.NewDish(kernel.NewUUID(), r.ID(), "Margherita", price,
//	    []restaurant.DishOption{{Name: "Extra cheese", Extra: &cheese}})
func NewDish(id, restaurantID kernel.UUID, name string, price kernel.Money, options []DishOption) (*Dish, error) {
	d := &Dish{isConstructed: true}
	if err := errors.Join(
		d.setID(id),
		d.setRestaurantID(restaurantID),
		d.setName(name),
		d.setPrice(price),
		d.setOptions(options),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDish rebuilds a dish read back from storage.
func RestoreDish(id, restaurantID kernel.UUID, name string, price kernel.Money, options []DishOption) (*Dish, error) {
	return NewDish(id, restaurantID, name, price, options)
}

func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.UUID {
	return d.id
}

func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Price() kernel.Money {
	return d.price
}

// Options returns a copy of the dish options.
func (d *Dish) Options() []DishOption {
	out := make([]DishOption, len(d.options))
	for i, o := range d.options {
		o.Choices = append([]DishChoice(nil), o.Choices...)
		out[i] = o
	}
	return out
}

// FindOption returns the option with the given name.
func (d *Dish) FindOption(name string) (DishOption, bool) {
	for _, o := range d.options {
		if o.Name == name {
			return o, true
		}
	}
	return DishOption{}, false
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	d.restaurantID = id
	return nil
}

func (d *Dish) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	d.price = price
	return nil
}

func (d *Dish) setOptions(options []DishOption) error {
	seen := make(map[string]struct{}, len(options))
	out := make([]DishOption, 0, len(options))
	for _, o := range options {
		if o.Name == "" {
			return errs.NewValueIsRequiredError("option name")
		}
		if _, dup := seen[o.Name]; dup {
			return errs.NewValueIsInvalidErrorWithCause("option name", fmt.Errorf("%q is duplicated", o.Name))
		}
		seen[o.Name] = struct{}{}
		if err := validateExtra(o.Extra); err != nil {
			return err
		}

		choiceSeen := make(map[string]struct{}, len(o.Choices))
		for _, c := range o.Choices {
			if c.Name == "" {
				return errs.NewValueIsRequiredError("choice name")
			}
			if _, dup := choiceSeen[c.Name]; dup {
				return errs.NewValueIsInvalidErrorWithCause("choice name", fmt.Errorf("%q is duplicated in %q", c.Name, o.Name))
			}
			choiceSeen[c.Name] = struct{}{}
			if err := validateExtra(c.Extra); err != nil {
				return err
			}
		}
		o.Choices = append([]DishChoice(nil), o.Choices...)
		out = append(out, o)
	}
	d.options = out
	return nil
}

func validateExtra(extra *kernel.Money) error {
	if extra == nil {
		return nil
	}
	if err := extra.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("extra", err)
	}
	return nil
}
