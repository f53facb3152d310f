// Package services provides stateless domain services that derive values from
// several domain objects at once and do not belong to a single aggregate.
//
// The package includes:
//   - PricingCalculator: subtotal, tax, tip and total of a set of line items
//   - CustomizationResolver: the unit price of a menu item under a selection of
//     customization options
//
// Both services are pure. They perform no I/O and never return errors; invalid
// inputs are rejected earlier by the value objects they consume.
package services
