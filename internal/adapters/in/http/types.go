package http

import (
	"errors"
	"time"

	"jinbbq/internal/core/application/usecases/queries"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/core/ports"
	"jinbbq/internal/pkg/errs"
)

// Request and response bodies. Field names follow api/openapi.yaml; money
// travels as decimal strings.

type CreatedID struct {
	ID string `json:"id"`
}

type CustomizationOption struct {
	Name            string `json:"name"`
	AdditionalCost  string `json:"additionalCost"`
	SelectionType   string `json:"selectionType"`
	MaxQuantity     int    `json:"maxQuantity,omitempty"`
	CurrentQuantity int    `json:"currentQuantity,omitempty"`
}

type CustomizationCategory struct {
	Name     string                `json:"name"`
	Required bool                  `json:"required"`
	Options  []CustomizationOption `json:"options"`
}

type MenuItemInput struct {
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Price          string                  `json:"price"`
	ImageRef       string                  `json:"imageRef"`
	Category       string                  `json:"category"`
	Popular        bool                    `json:"popular"`
	ARModelRef     string                  `json:"arModelRef"`
	Available      *bool                   `json:"available"`
	Customizations []CustomizationCategory `json:"customizations"`
}

type MenuItem struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Price          string                  `json:"price"`
	ImageRef       string                  `json:"imageRef"`
	Category       string                  `json:"category"`
	Popular        bool                    `json:"popular"`
	ARModelRef     string                  `json:"arModelRef,omitempty"`
	Available      bool                    `json:"available"`
	Customizations []CustomizationCategory `json:"customizations"`
}

type Selection struct {
	Category string `json:"category"`
	Option   string `json:"option"`
	Quantity int    `json:"quantity"`
}

type QuoteRequest struct {
	Selections []Selection `json:"selections"`
}

type Quote struct {
	MenuItemID      string                  `json:"menuItemId"`
	BasePrice       string                  `json:"basePrice"`
	UnitPrice       string                  `json:"unitPrice"`
	Customizations  []CustomizationCategory `json:"customizations"`
	MissingRequired []string                `json:"missingRequired"`
}

type AddToCartRequest struct {
	MenuItemID string      `json:"menuItemId"`
	Selections []Selection `json:"selections"`
}

type LineItem struct {
	MenuItemID string `json:"menuItemId"`
	Title      string `json:"title"`
	ImageRef   string `json:"imageRef"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"lineTotal"`
}

type Breakdown struct {
	Subtotal     string `json:"subtotal"`
	TaxRate      string `json:"taxRate"`
	Tax          string `json:"tax"`
	Tip          string `json:"tip"`
	Total        string `json:"total"`
	TotalDisplay string `json:"totalDisplay"`
}

type Cart struct {
	CustomerID string     `json:"customerId"`
	Items      []LineItem `json:"items"`
	Breakdown  Breakdown  `json:"breakdown"`
}

type Order struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	Status     string     `json:"status"`
	Progress   int        `json:"progress"`
	PlacedAt   time.Time  `json:"placedAt"`
	Items      []LineItem `json:"items"`
	Breakdown  Breakdown  `json:"breakdown"`
}

type OrderGroups struct {
	InProgress []Order `json:"inProgress"`
	Completed  []Order `json:"completed"`
	Cancelled  []Order `json:"cancelled"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type CancelResult struct {
	Cancelled bool `json:"cancelled"`
}

type OrderChange struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	Deleted    bool      `json:"deleted"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ChargeParams select the tip and tax rate used to price a cart or an order.
type ChargeParams struct {
	TipPreset *int
	TipAmount *string
	TaxRate   *string
}

// GetCartParams are the query parameters of GET /cart.
type GetCartParams ChargeParams

// PlaceOrderParams are the query parameters of POST /orders.
type PlaceOrderParams ChargeParams

// parse resolves the tip selection and the optional tax rate. A nil rate
// means the configured default.
func (p ChargeParams) parse() (pricing.Tip, *pricing.TaxRate, error) {
	if p.TipPreset != nil && p.TipAmount != nil {
		return pricing.Tip{}, nil, errs.NewValueIsInvalidErrorWithCause(
			"tip",
			errors.New("tipPreset and tipAmount are mutually exclusive"),
		)
	}

	tip := pricing.NoTip()
	switch {
	case p.TipPreset != nil:
		preset, err := pricing.PresetTip(pricing.TipPreset(*p.TipPreset))
		if err != nil {
			return pricing.Tip{}, nil, err
		}
		tip = preset
	case p.TipAmount != nil:
		amount, err := kernel.ParseMoney(*p.TipAmount)
		if err != nil {
			return pricing.Tip{}, nil, err
		}
		tip = pricing.CustomTip(amount)
	}

	if p.TaxRate == nil {
		return tip, nil, nil
	}
	rate, err := pricing.ParseTaxRate(*p.TaxRate)
	if err != nil {
		return pricing.Tip{}, nil, err
	}
	return tip, &rate, nil
}

// GetOrdersParams are the query parameters of GET /orders.
type GetOrdersParams struct {
	Status *string
}

// ListMenuItemsParams are the query parameters of GET /menu.
type ListMenuItemsParams struct {
	Category *string
	Search   *string
	Popular  *bool
}

func (in MenuItemInput) toAttributes() (menu.Attributes, error) {
	price, err := kernel.ParseMoney(in.Price)
	if err != nil {
		return menu.Attributes{}, err
	}

	categories := make([]menu.CustomizationCategory, 0, len(in.Customizations))
	for _, c := range in.Customizations {
		options := make([]menu.CustomizationOption, 0, len(c.Options))
		for _, o := range c.Options {
			cost, err := kernel.ParseMoney(o.AdditionalCost)
			if err != nil {
				return menu.Attributes{}, err
			}
			selectionType, err := menu.ParseSelectionType(o.SelectionType)
			if err != nil {
				return menu.Attributes{}, err
			}
			option, err := menu.NewCustomizationOption(o.Name, cost, selectionType, o.MaxQuantity)
			if err != nil {
				return menu.Attributes{}, err
			}
			options = append(options, option)
		}
		category, err := menu.NewCustomizationCategory(c.Name, c.Required, options)
		if err != nil {
			return menu.Attributes{}, err
		}
		categories = append(categories, category)
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	return menu.Attributes{
		Title:          in.Title,
		Description:    in.Description,
		Price:          price,
		ImageRef:       in.ImageRef,
		Category:       in.Category,
		Popular:        in.Popular,
		ARModelRef:     in.ARModelRef,
		Available:      available,
		Customizations: categories,
	}, nil
}

func toSelections(in []Selection) []menu.Selection {
	out := make([]menu.Selection, 0, len(in))
	for _, s := range in {
		out = append(out, menu.Selection{Category: s.Category, Option: s.Option, Quantity: s.Quantity})
	}
	return out
}

func fromCategories(in []queries.CustomizationCategoryResponse) []CustomizationCategory {
	out := make([]CustomizationCategory, 0, len(in))
	for _, c := range in {
		options := make([]CustomizationOption, 0, len(c.Options))
		for _, o := range c.Options {
			options = append(options, CustomizationOption{
				Name:            o.Name,
				AdditionalCost:  o.AdditionalCost.StringFixed(2),
				SelectionType:   o.SelectionType,
				MaxQuantity:     o.MaxQuantity,
				CurrentQuantity: o.CurrentQuantity,
			})
		}
		out = append(out, CustomizationCategory{Name: c.Name, Required: c.Required, Options: options})
	}
	return out
}

func fromMenuItem(in queries.ListMenuItemsQueryResponse) MenuItem {
	return MenuItem{
		ID:             in.ID.String(),
		Title:          in.Title,
		Description:    in.Description,
		Price:          in.Price.String(),
		ImageRef:       in.ImageRef,
		Category:       in.Category,
		Popular:        in.Popular,
		ARModelRef:     in.ARModelRef,
		Available:      in.Available,
		Customizations: fromCategories(in.Customizations),
	}
}

func fromLineItems(in []queries.LineItemResponse) []LineItem {
	out := make([]LineItem, 0, len(in))
	for _, li := range in {
		out = append(out, LineItem{
			MenuItemID: li.MenuItemID.String(),
			Title:      li.Title,
			ImageRef:   li.ImageRef,
			UnitPrice:  li.UnitPrice.String(),
			Quantity:   li.Quantity,
			LineTotal:  li.LineTotal.String(),
		})
	}
	return out
}

func fromBreakdown(b pricing.Breakdown) Breakdown {
	return Breakdown{
		Subtotal:     b.Subtotal.String(),
		TaxRate:      b.TaxRate.String(),
		Tax:          b.Tax.String(),
		Tip:          b.Tip.String(),
		Total:        b.Total.String(),
		TotalDisplay: b.Total.Display(),
	}
}

func fromOrder(in queries.OrderResponse) Order {
	return Order{
		ID:         in.ID.String(),
		CustomerID: in.CustomerID,
		Status:     in.Status.String(),
		Progress:   in.Status.Progress(),
		PlacedAt:   in.PlacedAt,
		Items:      fromLineItems(in.Items),
		Breakdown:  fromBreakdown(in.Breakdown),
	}
}

func fromOrders(in []queries.OrderResponse) []Order {
	out := make([]Order, 0, len(in))
	for _, o := range in {
		out = append(out, fromOrder(o))
	}
	return out
}

func fromOrderChange(in ports.OrderChange) OrderChange {
	return OrderChange{
		OrderID:    in.OrderID.String(),
		CustomerID: in.CustomerID,
		Status:     in.Status.String(),
		Deleted:    in.Deleted,
		OccurredAt: in.OccurredAt,
	}
}
