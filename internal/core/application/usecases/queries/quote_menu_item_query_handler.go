package queries

import (
	"context"

	"jinbbq/internal/core/domain/services"
)

type QuoteMenuItemQueryHandler struct {
	menuItems MenuItemReader
	resolver  services.CustomizationResolver
}

func NewQuoteMenuItemQueryHandler(menuItems MenuItemReader) QuoteMenuItemQueryHandler {
	return QuoteMenuItemQueryHandler{
		menuItems: menuItems,
		resolver:  services.NewCustomizationResolver(),
	}
}

func (h QuoteMenuItemQueryHandler) Handle(ctx context.Context, query QuoteMenuItemQuery) (QuoteMenuItemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteMenuItemQueryResponse{}, err
	}

	item, err := h.menuItems.Get(ctx, query.MenuItemID())
	if err != nil {
		return QuoteMenuItemQueryResponse{}, err
	}

	quote, err := h.resolver.Quote(item, query.Selections())
	if err != nil {
		return QuoteMenuItemQueryResponse{}, err
	}

	missing := quote.MissingRequired
	if missing == nil {
		missing = []string{}
	}

	return QuoteMenuItemQueryResponse{
		MenuItemID:      item.ID(),
		BasePrice:       item.Price(),
		UnitPrice:       quote.UnitPrice,
		Customizations:  categoryResponses(quote.Categories),
		MissingRequired: missing,
	}, nil
}
