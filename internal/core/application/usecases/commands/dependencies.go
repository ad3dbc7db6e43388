// Package commands contains the lifecycle operations that mutate a session's
// in-progress order: adding items, removing items, and completing the order.
// Each operation is a validated command object plus a handler; handlers
// return typed results and sentinel errors, and the transport adapter maps
// both to fulfillment text.
package commands

import (
	"context"
	"errors"

	"orderbot/internal/core/ports"
)

// ErrNoActiveOrder is returned by handlers that need an existing in-progress
// order for the session and found none. The transport layer turns it into a
// "please start a new order" reply; it is an expected conversational state,
// not a system failure.
var ErrNoActiveOrder = errors.New("no in-progress order for this session")

// Unit of Work interfaces give the completion handler transaction control
// without binding it to the GORM adapter.
type (
	// OrderUoW manages the transaction around saving one completed order.
	OrderUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		OrderRepository() ports.OrderRepository
	}

	// OrderUoWFactory creates a fresh OrderUoW per completion request.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
