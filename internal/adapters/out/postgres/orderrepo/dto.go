// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are written once, at placement.
// TaxRate and Tip are unscaled numerics so a percentage tip keeps its full
// precision.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID string          `gorm:"type:varchar(255);not null;index"`
	Status     int             `gorm:"type:smallint;not null;index"`
	PlacedAt   time.Time       `gorm:"type:timestamptz;not null;index"`
	TaxRate    decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Tip        decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Items      []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one snapshotted cart line. Position keeps the cart order,
// starting at 1.
type LineItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Title      string          `gorm:"type:varchar(255);not null"`
	ImageRef   string          `gorm:"column:image_ref;type:varchar(255);not null;default:''"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	Quantity   int             `gorm:"type:int;not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]LineItemDTO, 0, len(o.Items()))
	for i, li := range o.Items() {
		items = append(items, LineItemDTO{
			OrderID:    orderID,
			Position:   i + 1,
			MenuItemID: li.MenuItemID().Bytes(),
			Title:      li.Title(),
			ImageRef:   li.ImageRef(),
			UnitPrice:  li.UnitPrice().Amount(),
			Quantity:   li.Quantity(),
		})
	}

	charges := o.Charges()
	return OrderDTO{
		ID:         orderID,
		CustomerID: o.CustomerID(),
		Status:     int(o.Status()),
		PlacedAt:   o.PlacedAt().UTC(),
		TaxRate:    charges.TaxRate.Rate(),
		Tip:        charges.Tip.Amount(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Items must be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]cart.LineItem, 0, len(dto.Items))
	for _, li := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(li.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoney(li.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := cart.RestoreLineItem(menuItemID, li.Title, price, li.ImageRef, li.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	rate, err := pricing.NewTaxRate(dto.TaxRate)
	if err != nil {
		return nil, err
	}
	tip, err := kernel.NewMoney(dto.Tip)
	if err != nil {
		return nil, err
	}

	charges := order.Charges{TaxRate: rate, Tip: tip}
	return order.RestoreOrder(id, dto.CustomerID, items, charges, order.Status(dto.Status), dto.PlacedAt)
}
