package queries

import (
	"time"

	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/core/domain/model/order"
	"jinbbq/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// LineItemResponse is a priced cart or order line.
type LineItemResponse struct {
	MenuItemID kernel.UUID
	Title      string
	ImageRef   string
	UnitPrice  kernel.Money
	Quantity   int
	LineTotal  kernel.Money
}

// OrderResponse is an order with its price derivation.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID string
	Status     order.Status
	PlacedAt   time.Time
	Items      []LineItemResponse
	Breakdown  pricing.Breakdown
}

// CustomizationOptionResponse mirrors the stored option template. The JSON
// field names match the menu_items.customizations column.
type CustomizationOptionResponse struct {
	Name            string          `json:"name"`
	AdditionalCost  decimal.Decimal `json:"additionalCost"`
	SelectionType   string          `json:"selectionType"`
	MaxQuantity     int             `json:"maxQuantity"`
	CurrentQuantity int             `json:"currentQuantity,omitempty"`
}

// CustomizationCategoryResponse mirrors a stored customization category.
type CustomizationCategoryResponse struct {
	Name     string                        `json:"name"`
	Required bool                          `json:"required"`
	Options  []CustomizationOptionResponse `json:"options"`
}

func lineItemResponses(items []cart.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, LineItemResponse{
			MenuItemID: li.MenuItemID(),
			Title:      li.Title(),
			ImageRef:   li.ImageRef(),
			UnitPrice:  li.UnitPrice(),
			Quantity:   li.Quantity(),
			LineTotal:  li.LineTotal(),
		})
	}
	return out
}

func categoryResponses(categories []menu.CustomizationCategory) []CustomizationCategoryResponse {
	out := make([]CustomizationCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		options := make([]CustomizationOptionResponse, 0, len(cat.Options()))
		for _, opt := range cat.Options() {
			options = append(options, CustomizationOptionResponse{
				Name:            opt.Name(),
				AdditionalCost:  opt.AdditionalCost().Amount(),
				SelectionType:   opt.SelectionType().String(),
				MaxQuantity:     opt.MaxQuantity(),
				CurrentQuantity: opt.CurrentQuantity(),
			})
		}
		out = append(out, CustomizationCategoryResponse{
			Name:     cat.Name(),
			Required: cat.IsRequired(),
			Options:  options,
		})
	}
	return out
}
