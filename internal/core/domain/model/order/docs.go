// Package order provides the Order aggregate: a checked-out cart and the status
// it moves through until pickup.
//
// The package includes:
//   - Order: the aggregate root holding the snapshotted line items and status
//   - Status: the lifecycle values orderPlaced, preparing, readyForPickup,
//     completed and cancelled
//   - Filter: selection of orders by status
//
// Key business rules:
//   - An order is created with status orderPlaced and a copy of the cart's line
//     items; nothing the customer does to their cart afterwards reaches it
//   - Staff may set any status at any time; transitions are deliberately not
//     validated
//   - A customer may cancel only while the order is still orderPlaced and at
//     most CancellationWindow after placement; otherwise the request does not apply
package order
