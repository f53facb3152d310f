package queries

import (
	"context"
	"encoding/json"
	"strings"

	"jinbbq/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListMenuItemsQueryHandler reads the catalog straight from the menu_items
// table. Results are sorted by category, then title.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

func (h ListMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query ListMenuItemsQuery,
) ([]ListMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("menu_items").
		Select("id, title, description, price, image_ref, category, popular, ar_model_ref, available, customizations")

	if query.Category() != "" {
		stmt = stmt.Where("category = ?", query.Category())
	}
	if query.Search() != "" {
		pattern := "%" + likeEscaper.Replace(query.Search()) + "%"
		stmt = stmt.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if query.PopularOnly() {
		stmt = stmt.Where("popular = ?", true)
	}

	rows, err := stmt.Order("category, title").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ListMenuItemsQueryResponse, 0)
	for rows.Next() {
		var (
			item           ListMenuItemsQueryResponse
			id             uuid.UUID
			price          decimal.Decimal
			customizations []byte
		)

		err = rows.Scan(
			&id,
			&item.Title,
			&item.Description,
			&price,
			&item.ImageRef,
			&item.Category,
			&item.Popular,
			&item.ARModelRef,
			&item.Available,
			&customizations,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}

		if len(customizations) > 0 {
			if err = json.Unmarshal(customizations, &item.Customizations); err != nil {
				return nil, err
			}
		}
		if item.Customizations == nil {
			item.Customizations = make([]CustomizationCategoryResponse, 0)
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
