package commands

import (
	"context"
	"time"

	"jinbbq/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order within its cancellation window.
//
// A late or repeated request is not an error: Handle returns false and the
// order keeps its status. Orders of other customers are reported as not found.
//
// Example:
//
//	cancelled, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !cancelled {
//	    // too late, the kitchen already has it
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}
	if !o.IsOwnedBy(cmd.CustomerID()) {
		return false, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if !o.Cancel(h.now()) {
		return false, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
