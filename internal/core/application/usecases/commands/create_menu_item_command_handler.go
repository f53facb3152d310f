package commands

import (
	"context"

	"jinbbq/internal/core/domain/model/menu"
)

type CreateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

func NewCreateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle persists the new item. A duplicate identifier fails with
// errs.ErrObjectAlreadyExists.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(cmd.MenuItemID(), cmd.Attributes())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
