package order

import (
	"fmt"

	"jinbbq/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Progress ordering:
//
//	orderPlaced ──> preparing ──> readyForPickup ──> completed
//	     │
//	     └──> cancelled (customer, within the cancellation window)
//
// Staff updates may move between any two valid statuses.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// OrderPlaced is the initial status of every order.
	OrderPlaced

	// Preparing means the kitchen is working on the order.
	Preparing

	// ReadyForPickup means the order waits at the counter.
	ReadyForPickup

	// Completed means the customer picked the order up.
	Completed

	// Cancelled means the customer withdrew the order.
	Cancelled
)

var statusNames = map[Status]string{
	OrderPlaced:    "orderPlaced",
	Preparing:      "preparing",
	ReadyForPickup: "readyForPickup",
	Completed:      "completed",
	Cancelled:      "cancelled",
}

// Statuses returns every valid status in progress order, cancelled last.
func Statuses() []Status {
	return []Status{OrderPlaced, Preparing, ReadyForPickup, Completed, Cancelled}
}

// ParseStatus maps a wire name such as "readyForPickup" to its Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Progress returns the display step of the status: 1 for orderPlaced through
// 4 for completed. Cancelled and invalid statuses have no step and return 0.
func (s Status) Progress() int {
	switch s {
	case OrderPlaced, Preparing, ReadyForPickup, Completed:
		return int(s)
	default:
		return 0
	}
}

// IsTerminal reports whether no further customer-visible progress is expected.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
