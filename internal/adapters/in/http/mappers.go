package http

import (
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/generated/servers"
	"eats/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	out, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return out, nil
}

func toAPIUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func moneyFrom(name string, amount float64) (kernel.Money, error) {
	m, err := kernel.MoneyFromDecimal(amount)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return m, nil
}

func optionalMoneyFrom(name string, amount *float64) (*kernel.Money, error) {
	if amount == nil {
		return nil, nil
	}
	m, err := moneyFrom(name, *amount)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func optionalDecimal(m *kernel.Money) *float64 {
	if m == nil {
		return nil
	}
	v := m.Decimal()
	return &v
}

func toDishOptions(in *[]servers.DishOption) ([]restaurant.DishOption, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]restaurant.DishOption, 0, len(*in))
	for _, opt := range *in {
		extra, err := optionalMoneyFrom("option extra", opt.Extra)
		if err != nil {
			return nil, err
		}
		var choices []restaurant.DishChoice
		if opt.Choices != nil {
			choices = make([]restaurant.DishChoice, 0, len(*opt.Choices))
			for _, ch := range *opt.Choices {
				chExtra, chErr := optionalMoneyFrom("choice extra", ch.Extra)
				if chErr != nil {
					return nil, chErr
				}
				choices = append(choices, restaurant.DishChoice{Name: ch.Name, Extra: chExtra})
			}
		}
		out = append(out, restaurant.DishOption{Name: opt.Name, Extra: extra, Choices: choices})
	}
	return out, nil
}

func toOrderItems(in []servers.CreateOrderItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(in))
	for _, it := range in {
		dishID, err := toKernelUUID("dish", it.DishId)
		if err != nil {
			return nil, err
		}
		var options []order.ItemOption
		if it.Options != nil {
			for _, opt := range *it.Options {
				options = append(options, order.ItemOption{Name: opt.Name, Choice: opt.Choice})
			}
		}
		item, err := order.NewItem(dishID, options)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func profileResponse(u *user.User) servers.Profile {
	return servers.Profile{
		Id:    toAPIUUID(u.ID()),
		Email: u.Email(),
		Role:  servers.Role(u.Role().String()),
	}
}

func restaurantResponse(r *restaurant.Restaurant) servers.Restaurant {
	return servers.Restaurant{
		Id:            toAPIUUID(r.ID()),
		OwnerId:       toAPIUUID(r.OwnerID()),
		Name:          r.Name(),
		Address:       r.Address(),
		IsPromoted:    r.IsPromoted(),
		PromotedUntil: r.PromotedUntil(),
	}
}

func dishResponse(d *restaurant.Dish) servers.Dish {
	options := make([]servers.DishOption, 0, len(d.Options()))
	for _, opt := range d.Options() {
		out := servers.DishOption{Name: opt.Name, Extra: optionalDecimal(opt.Extra)}
		if len(opt.Choices) > 0 {
			choices := make([]servers.DishChoice, 0, len(opt.Choices))
			for _, ch := range opt.Choices {
				choices = append(choices, servers.DishChoice{Name: ch.Name, Extra: optionalDecimal(ch.Extra)})
			}
			out.Choices = &choices
		}
		options = append(options, out)
	}
	return servers.Dish{
		Id:           toAPIUUID(d.ID()),
		RestaurantId: toAPIUUID(d.RestaurantID()),
		Name:         d.Name(),
		Price:        d.Price().Decimal(),
		Options:      options,
	}
}

func orderResponse(o *order.Order) servers.Order {
	return snapshotResponse(o.Snapshot())
}

func snapshotResponse(s order.Snapshot) servers.Order {
	var driverID *openapi_types.UUID
	if s.DriverID != nil {
		id := toAPIUUID(*s.DriverID)
		driverID = &id
	}

	items := make([]servers.OrderItem, 0, len(s.Items))
	for _, item := range s.Items {
		options := make([]servers.OrderItemOption, 0, len(item.Options()))
		for _, opt := range item.Options() {
			options = append(options, servers.OrderItemOption{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, servers.OrderItem{DishId: toAPIUUID(item.DishID()), Options: options})
	}

	return servers.Order{
		Id:           toAPIUUID(s.ID),
		CustomerId:   toAPIUUID(s.CustomerID),
		RestaurantId: toAPIUUID(s.RestaurantID),
		OwnerId:      toAPIUUID(s.OwnerID),
		DriverId:     driverID,
		Status:       servers.OrderStatus(s.Status.String()),
		Total:        s.Total.Decimal(),
		CreatedAt:    s.CreatedAt.UTC(),
		Items:        items,
	}
}

func paymentResponse(p *payment.Payment) servers.Payment {
	return servers.Payment{
		Id:            toAPIUUID(p.ID()),
		TransactionId: p.TransactionID(),
		RestaurantId:  toAPIUUID(p.RestaurantID()),
		CreatedAt:     p.CreatedAt().UTC(),
	}
}

func paymentRowResponse(p queries.GetPaymentsQueryResponse) servers.Payment {
	return servers.Payment{
		Id:            toAPIUUID(p.ID),
		TransactionId: p.TransactionID,
		RestaurantId:  toAPIUUID(p.RestaurantID),
		CreatedAt:     p.CreatedAt.UTC(),
	}
}
