// Package orderrepo persists order aggregates and their items with GORM.
package orderrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Items live in order_items.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;index;not null"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;index;not null"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;index;not null"`
	DriverID     *uuid.UUID     `gorm:"type:uuid;index"`
	TotalCents   int64          `gorm:"not null"`
	Status       string         `gorm:"type:varchar(16);index;not null"`
	CreatedAt    time.Time      `gorm:"not null"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Selected options are stored as JSON.
type OrderItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Position int             `gorm:"not null"`
	DishID   uuid.UUID       `gorm:"type:uuid;not null"`
	Options  []ItemOptionDTO `gorm:"serializer:json;type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

type ItemOptionDTO struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		options := item.Options()
		optionDTOs := make([]ItemOptionDTO, 0, len(options))
		for _, opt := range options {
			optionDTOs = append(optionDTOs, ItemOptionDTO{Name: opt.Name, Choice: opt.Choice})
		}
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:       uuid.New(),
			OrderID:  o.ID().Bytes(),
			Position: i,
			DishID:   item.DishID().Bytes(),
			Options:  optionDTOs,
		})
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   o.CustomerID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		OwnerID:      o.OwnerID().Bytes(),
		DriverID:     driverID,
		TotalCents:   o.Total().Cents(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		Items:        itemDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, restaurantID, ownerID, driverID, items, total, status, dto.CreatedAt)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return order.Item{}, err
	}
	options := make([]order.ItemOption, 0, len(dto.Options))
	for _, opt := range dto.Options {
		options = append(options, order.ItemOption{Name: opt.Name, Choice: opt.Choice})
	}
	return order.NewItem(dishID, options)
}
