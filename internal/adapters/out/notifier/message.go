package notifier

import (
	"encoding/json"
	"time"

	"eats/internal/core/domain/model/order"
)

// Message is the JSON form of an event sent to external brokers.
type Message struct {
	Kind       string       `json:"kind"`
	OccurredAt time.Time    `json:"occurredAt"`
	Order      OrderMessage `json:"order"`
}

type OrderMessage struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customerId"`
	RestaurantID string        `json:"restaurantId"`
	OwnerID      string        `json:"ownerId"`
	DriverID     *string       `json:"driverId,omitempty"`
	Status       string        `json:"status"`
	Total        float64       `json:"total"`
	CreatedAt    time.Time     `json:"createdAt"`
	Items        []ItemMessage `json:"items"`
}

type ItemMessage struct {
	DishID  string          `json:"dishId"`
	Options []OptionMessage `json:"options,omitempty"`
}

type OptionMessage struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

// NewMessage converts a domain event into its broker representation.
func NewMessage(e order.Event) Message {
	s := e.Order

	var driverID *string
	if s.DriverID != nil {
		id := s.DriverID.String()
		driverID = &id
	}

	items := make([]ItemMessage, 0, len(s.Items))
	for _, item := range s.Items {
		options := item.Options()
		optionMessages := make([]OptionMessage, 0, len(options))
		for _, opt := range options {
			optionMessages = append(optionMessages, OptionMessage{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, ItemMessage{DishID: item.DishID().String(), Options: optionMessages})
	}

	return Message{
		Kind:       string(e.Kind),
		OccurredAt: e.OccurredAt.UTC(),
		Order: OrderMessage{
			ID:           s.ID.String(),
			CustomerID:   s.CustomerID.String(),
			RestaurantID: s.RestaurantID.String(),
			OwnerID:      s.OwnerID.String(),
			DriverID:     driverID,
			Status:       s.Status.String(),
			Total:        s.Total.Decimal(),
			CreatedAt:    s.CreatedAt.UTC(),
			Items:        items,
		},
	}
}

func encode(e order.Event) ([]byte, error) {
	return json.Marshal(NewMessage(e))
}
