package services

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
)

// PricingCalculator derives item prices and order totals from dish data.
//
// Matching is permissive: a selected option or choice that the dish does not
// define adds nothing and is not an error.
//
// Example:
//
//	pricing := NewPricingCalculator()
//	price := pricing.ComputeItemPrice(dish, item.Options())
//	total := pricing.ComputeOrderTotal(price)
type PricingCalculator struct{}

func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// ComputeItemPrice starts from the dish price and, for each selected option,
// adds the flat extra of the matching dish option. When that option has no
// flat extra (or a zero one) and the selection names a choice, the extra of the matching
// choice is added instead.
func (PricingCalculator) ComputeItemPrice(dish *restaurant.Dish, selected []order.ItemOption) kernel.Money {
	price := dish.Price()
	for _, sel := range selected {
		opt, ok := dish.FindOption(sel.Name)
		if !ok {
			continue
		}
		if opt.Extra != nil && !opt.Extra.IsZero() {
			price = price.Add(*opt.Extra)
			continue
		}
		if sel.Choice == nil {
			continue
		}
		if choice, found := opt.FindChoice(*sel.Choice); found && choice.Extra != nil {
			price = price.Add(*choice.Extra)
		}
	}
	return price
}

// ComputeOrderTotal sums item prices.
func (PricingCalculator) ComputeOrderTotal(itemPrices ...kernel.Money) kernel.Money {
	total := kernel.ZeroMoney()
	for _, p := range itemPrices {
		total = total.Add(p)
	}
	return total
}
