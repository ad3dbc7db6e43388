package ports

import (
	"context"

	"orderbot/internal/core/domain/model/order"
)

// OrderRepository is the persistence gateway for completed orders. It
// allocates durable order ids, records line items and tracking status, and
// computes order totals from the menu price list.
//
// All methods are blocking I/O; callers must not hold session-store locks
// across them.
type OrderRepository interface {
	// NextOrderID allocates the id for the order about to be saved.
	// Within a transaction the allocation is stable until commit.
	NextOrderID(ctx context.Context) (int64, error)

	// AddItem records one line item of the order. Unknown items are stored
	// as-is; the menu is consulted only for pricing, never for validation.
	AddItem(ctx context.Context, item string, quantity int, orderID int64) error

	// SetTracking records the order's tracking status.
	SetTracking(ctx context.Context, orderID int64, status order.Status) error

	// GetTotalPrice computes the order total from its line items and the
	// menu price list. Items missing from the menu contribute zero.
	GetTotalPrice(ctx context.Context, orderID int64) (float64, error)
}
