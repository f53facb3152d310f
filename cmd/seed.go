package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"jinbbq/internal/adapters/out/postgres/menurepo"
	"jinbbq/internal/core/application/usecases/commands"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/menu"
	"jinbbq/internal/pkg/errs"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// catalogNamespace derives stable menu item ids from titles, so seeding the
// same file twice updates entries instead of duplicating them.
var catalogNamespace = uuid.MustParse("8f0d2f5e-6a8b-4c1e-9a53-3f1d6c2b7e10")

type catalogFile struct {
	Items []catalogItem `yaml:"items"`
}

type catalogItem struct {
	Title          string                 `yaml:"title"`
	Description    string                 `yaml:"description"`
	Price          string                 `yaml:"price"`
	ImageRef       string                 `yaml:"imageRef"`
	Category       string                 `yaml:"category"`
	Popular        bool                   `yaml:"popular"`
	ARModelRef     string                 `yaml:"arModelRef"`
	Available      *bool                  `yaml:"available"`
	Customizations []menurepo.CategoryDTO `yaml:"customizations"`
}

// CatalogEntry is one parsed seed item.
type CatalogEntry struct {
	ID         kernel.UUID
	Attributes menu.Attributes
}

// LoadCatalog parses a YAML catalog file.
func LoadCatalog(r io.Reader) ([]CatalogEntry, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	entries := make([]CatalogEntry, 0, len(file.Items))
	for i, item := range file.Items {
		attrs, err := item.attributes()
		if err != nil {
			return nil, fmt.Errorf("catalog item %d (%q): %w", i, item.Title, err)
		}

		id, err := kernel.UUIDFromString(uuid.NewSHA1(catalogNamespace, []byte(item.Title)).String())
		if err != nil {
			return nil, err
		}

		entries = append(entries, CatalogEntry{ID: id, Attributes: attrs})
	}
	return entries, nil
}

func (i catalogItem) attributes() (menu.Attributes, error) {
	price, err := kernel.ParseMoney(i.Price)
	if err != nil {
		return menu.Attributes{}, err
	}

	categories, err := menurepo.CategoriesToDomain(i.Customizations)
	if err != nil {
		return menu.Attributes{}, err
	}

	available := true
	if i.Available != nil {
		available = *i.Available
	}

	return menu.Attributes{
		Title:          i.Title,
		Description:    i.Description,
		Price:          price,
		ImageRef:       i.ImageRef,
		Category:       i.Category,
		Popular:        i.Popular,
		ARModelRef:     i.ARModelRef,
		Available:      available,
		Customizations: categories,
	}, nil
}

// SeedCatalog creates every entry, overwriting entries that already exist.
func SeedCatalog(
	ctx context.Context,
	create commands.CreateMenuItemCommandHandler,
	update commands.UpdateMenuItemCommandHandler,
	entries []CatalogEntry,
) (created, updated int, err error) {
	for _, entry := range entries {
		createCmd, err := commands.NewCreateMenuItemCommand(entry.ID, entry.Attributes)
		if err != nil {
			return created, updated, err
		}

		err = create.Handle(ctx, createCmd)
		switch {
		case err == nil:
			created++
			continue
		case !errors.Is(err, errs.ErrObjectAlreadyExists):
			return created, updated, fmt.Errorf("create %q: %w", entry.Attributes.Title, err)
		}

		updateCmd, err := commands.NewUpdateMenuItemCommand(entry.ID, entry.Attributes)
		if err != nil {
			return created, updated, err
		}
		if err = update.Handle(ctx, updateCmd); err != nil {
			return created, updated, fmt.Errorf("update %q: %w", entry.Attributes.Title, err)
		}
		updated++
	}
	return created, updated, nil
}
