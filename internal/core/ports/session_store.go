// Package ports defines the contracts between the application core and its
// adapters: the in-memory session order store on one side and the durable
// order persistence gateway on the other. These interfaces establish the
// dependency inversion boundary that keeps the lifecycle handlers testable.
package ports

import "orderbot/internal/core/domain/model/order"

// SessionStore is the process-wide mapping from conversation session id to
// that session's in-progress order. It is the only shared mutable state in
// the core, so implementations must be safe for concurrent use by request
// handlers serving different sessions, and must serialize access per session.
//
// Orders cross the boundary by value: Get hands out an independent copy, and
// Upsert stores a copy of its argument, so callers can never mutate stored
// state outside the store's locking.
type SessionStore interface {
	// Get returns a copy of the session's in-progress order, or (nil, false)
	// when the session has none. Side-effect-free.
	Get(sessionID string) (*order.Order, bool)

	// Upsert replaces or creates the session's order. Atomic with respect to
	// concurrent calls for the same session; calls for different sessions do
	// not block one another.
	Upsert(sessionID string, ord *order.Order)

	// Delete removes the session's order. Idempotent: deleting an absent
	// session is a no-op, not an error.
	Delete(sessionID string)

	// Mutate runs fn under the session's lock as one atomic
	// read-modify-write. fn receives the current order (nil when absent) and
	// returns the state to keep: a non-nil order is stored, nil removes the
	// entry. Mutate returns a copy of the resulting order, or nil when the
	// entry was removed or never created.
	//
	// fn must be a quick in-memory transformation; it must not perform I/O,
	// since the per-session lock is held while it runs.
	Mutate(sessionID string, fn func(current *order.Order) *order.Order) *order.Order
}
