// Package restaurantrepo persists restaurants and their dishes with GORM.
package restaurantrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

type RestaurantDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	Name          string     `gorm:"type:varchar(100);not null"`
	Address       string     `gorm:"not null"`
	IsPromoted    bool       `gorm:"index;not null;default:false"`
	PromotedUntil *time.Time `gorm:"index"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO keeps the option tree as JSON next to the dish row.
type DishDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name         string          `gorm:"not null"`
	PriceCents   int64           `gorm:"not null"`
	Options      []DishOptionDTO `gorm:"serializer:json;type:text"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

type DishOptionDTO struct {
	Name       string          `json:"name"`
	ExtraCents *int64          `json:"extra,omitempty"`
	Choices    []DishChoiceDTO `json:"choices,omitempty"`
}

type DishChoiceDTO struct {
	Name       string `json:"name"`
	ExtraCents *int64 `json:"extra,omitempty"`
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:            r.ID().Bytes(),
		OwnerID:       r.OwnerID().Bytes(),
		Name:          r.Name(),
		Address:       r.Address(),
		IsPromoted:    r.IsPromoted(),
		PromotedUntil: r.PromotedUntil(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var promotedUntil *time.Time
	if dto.IsPromoted {
		promotedUntil = dto.PromotedUntil
	}
	return restaurant.RestoreRestaurant(id, ownerID, dto.Name, dto.Address, promotedUntil)
}

func dishFromDomain(d *restaurant.Dish) DishDTO {
	options := d.Options()
	optionDTOs := make([]DishOptionDTO, 0, len(options))
	for _, opt := range options {
		choices := make([]DishChoiceDTO, 0, len(opt.Choices))
		for _, c := range opt.Choices {
			choices = append(choices, DishChoiceDTO{Name: c.Name, ExtraCents: centsOf(c.Extra)})
		}
		optionDTOs = append(optionDTOs, DishOptionDTO{
			Name:       opt.Name,
			ExtraCents: centsOf(opt.Extra),
			Choices:    choices,
		})
	}

	return DishDTO{
		ID:           d.ID().Bytes(),
		RestaurantID: d.RestaurantID().Bytes(),
		Name:         d.Name(),
		PriceCents:   d.Price().Cents(),
		Options:      optionDTOs,
	}
}

func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	options := make([]restaurant.DishOption, 0, len(dto.Options))
	for _, opt := range dto.Options {
		extra, extraErr := moneyOf(opt.ExtraCents)
		if extraErr != nil {
			return nil, extraErr
		}
		choices := make([]restaurant.DishChoice, 0, len(opt.Choices))
		for _, c := range opt.Choices {
			choiceExtra, choiceErr := moneyOf(c.ExtraCents)
			if choiceErr != nil {
				return nil, choiceErr
			}
			choices = append(choices, restaurant.DishChoice{Name: c.Name, Extra: choiceExtra})
		}
		options = append(options, restaurant.DishOption{Name: opt.Name, Extra: extra, Choices: choices})
	}

	return restaurant.RestoreDish(id, restaurantID, dto.Name, price, options)
}

func centsOf(m *kernel.Money) *int64 {
	if m == nil {
		return nil
	}
	cents := m.Cents()
	return &cents
}

func moneyOf(cents *int64) (*kernel.Money, error) {
	if cents == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(*cents)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
