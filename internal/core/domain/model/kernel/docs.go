// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier for menu items and orders, wrapping github.com/google/uuid
//   - Money: a non-negative fixed-point amount backed by github.com/shopspring/decimal
//
// Both types are immutable and safe for concurrent use. Money performs no
// rounding during arithmetic; amounts are rounded to cents only when they are
// rendered for presentation, so sums over many line items never drift.
package kernel
