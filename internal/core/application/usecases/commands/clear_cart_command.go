package commands

import (
	"errors"

	"jinbbq/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties a customer's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

func NewClearCartCommand(customerID string) (ClearCartCommand, error) {
	if err := validateCustomerID(customerID); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) CustomerID() string {
	return c.customerID
}
