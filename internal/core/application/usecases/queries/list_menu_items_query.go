package queries

import (
	"errors"
	"strings"

	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ListMenuItemsQuery browses the catalog. Empty filters match everything;
// search matches title or description case-insensitively.
//
// Example:
//
//	query := NewListMenuItemsQuery("BBQ", "galbi", false)
//	items, err := handler.Handle(ctx, query)
type ListMenuItemsQuery struct {
	category    string
	search      string
	popularOnly bool

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(category, search string, popularOnly bool) ListMenuItemsQuery {
	return ListMenuItemsQuery{
		category:    strings.TrimSpace(category),
		search:      strings.TrimSpace(search),
		popularOnly: popularOnly,
		guard:       guard.NewConstructorGuard(),
	}
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Category() string  { return q.category }
func (q ListMenuItemsQuery) Search() string    { return q.search }
func (q ListMenuItemsQuery) PopularOnly() bool { return q.popularOnly }

// ListMenuItemsQueryResponse is a catalog entry as shown in the menu.
type ListMenuItemsQueryResponse struct {
	ID             kernel.UUID
	Title          string
	Description    string
	Price          kernel.Money
	ImageRef       string
	Category       string
	Popular        bool
	ARModelRef     string
	Available      bool
	Customizations []CustomizationCategoryResponse
}
