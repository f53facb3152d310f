// Package menurepo persists catalog entries. Customization templates are
// stored as a JSON document next to the item; they are always read and written
// together with it.
package menurepo

import (
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO is the menu_items row.
type MenuItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title          string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text;not null;default:''"`
	Price          decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	ImageRef       string          `gorm:"column:image_ref;type:varchar(255);not null;default:''"`
	Category       string          `gorm:"type:varchar(100);not null;default:'';index"`
	Popular        bool            `gorm:"not null;default:false;index"`
	ARModelRef     string          `gorm:"column:ar_model_ref;type:varchar(255);not null;default:''"`
	Available      bool            `gorm:"not null"`
	Customizations []CategoryDTO   `gorm:"type:jsonb;not null;serializer:json"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// CategoryDTO is one customization category inside the customizations column.
type CategoryDTO struct {
	Name     string      `json:"name" yaml:"name"`
	Required bool        `json:"required" yaml:"required"`
	Options  []OptionDTO `json:"options" yaml:"options"`
}

// OptionDTO is one option template. Current quantities are never stored.
type OptionDTO struct {
	Name           string          `json:"name" yaml:"name"`
	AdditionalCost decimal.Decimal `json:"additionalCost" yaml:"additionalCost"`
	SelectionType  string          `json:"selectionType" yaml:"selectionType"`
	MaxQuantity    int             `json:"maxQuantity" yaml:"maxQuantity"`
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	categories := make([]CategoryDTO, 0, len(item.Customizations()))
	for _, cat := range item.Customizations() {
		options := make([]OptionDTO, 0, len(cat.Options()))
		for _, opt := range cat.Options() {
			options = append(options, OptionDTO{
				Name:           opt.Name(),
				AdditionalCost: opt.AdditionalCost().Amount(),
				SelectionType:  opt.SelectionType().String(),
				MaxQuantity:    opt.MaxQuantity(),
			})
		}
		categories = append(categories, CategoryDTO{
			Name:     cat.Name(),
			Required: cat.IsRequired(),
			Options:  options,
		})
	}

	return MenuItemDTO{
		ID:             item.ID().Bytes(),
		Title:          item.Title(),
		Description:    item.Description(),
		Price:          item.Price().Amount(),
		ImageRef:       item.ImageRef(),
		Category:       item.Category(),
		Popular:        item.IsPopular(),
		ARModelRef:     item.ARModelRef(),
		Available:      item.IsAvailable(),
		Customizations: categories,
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	categories, err := CategoriesToDomain(dto.Customizations)
	if err != nil {
		return nil, err
	}

	return menu.NewMenuItem(id, menu.Attributes{
		Title:          dto.Title,
		Description:    dto.Description,
		Price:          price,
		ImageRef:       dto.ImageRef,
		Category:       dto.Category,
		Popular:        dto.Popular,
		ARModelRef:     dto.ARModelRef,
		Available:      dto.Available,
		Customizations: categories,
	})
}

// CategoriesToDomain rebuilds customization templates from their stored form.
// The catalog seed file uses the same shape.
func CategoriesToDomain(dtos []CategoryDTO) ([]menu.CustomizationCategory, error) {
	categories := make([]menu.CustomizationCategory, 0, len(dtos))
	for _, c := range dtos {
		options := make([]menu.CustomizationOption, 0, len(c.Options))
		for _, o := range c.Options {
			selectionType, err := menu.ParseSelectionType(o.SelectionType)
			if err != nil {
				return nil, err
			}
			cost, err := kernel.NewMoney(o.AdditionalCost)
			if err != nil {
				return nil, err
			}
			opt, err := menu.NewCustomizationOption(o.Name, cost, selectionType, o.MaxQuantity)
			if err != nil {
				return nil, err
			}
			options = append(options, opt)
		}

		cat, err := menu.NewCustomizationCategory(c.Name, c.Required, options)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}
