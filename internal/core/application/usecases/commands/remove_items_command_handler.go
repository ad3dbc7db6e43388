package commands

import (
	"context"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
)

// RemoveItemsResult partitions the requested items into those actually
// removed and those that were never in the order, plus the lines left
// afterwards. An order emptied by removal stays active in the store.
type RemoveItemsResult struct {
	Removed   []string
	Missing   []string
	Remaining []order.Line
}

// RemoveItemsCommandHandler drops whole lines from the session's
// in-progress order.
type RemoveItemsCommandHandler struct {
	store ports.SessionStore
}

// NewRemoveItemsCommandHandler creates a handler bound to the session store.
func NewRemoveItemsCommandHandler(store ports.SessionStore) RemoveItemsCommandHandler {
	return RemoveItemsCommandHandler{store: store}
}

// Handle removes the requested lines. When the session has no in-progress
// order it returns ErrNoActiveOrder. An order that becomes empty is kept
// in the store: the session may still add items to it.
func (h RemoveItemsCommandHandler) Handle(_ context.Context, cmd RemoveItemsCommand) (RemoveItemsResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemoveItemsResult{}, err
	}

	var (
		result RemoveItemsResult
		found  bool
	)
	h.store.Mutate(cmd.SessionID(), func(current *order.Order) *order.Order {
		if current == nil {
			return nil
		}
		found = true
		result.Removed, result.Missing = current.Remove(cmd.Items())
		result.Remaining = current.Lines()
		return current
	})
	if !found {
		return RemoveItemsResult{}, ErrNoActiveOrder
	}

	return result, nil
}
