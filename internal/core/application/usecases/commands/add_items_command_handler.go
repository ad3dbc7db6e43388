package commands

import (
	"context"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
)

// AddItemsResult is the state of the session's order after the merge,
// in first-added order, ready for formatting.
type AddItemsResult struct {
	Lines []order.Line
}

// AddItemsCommandHandler merges requested items into the session's
// in-progress order, creating the order on the session's first add.
//
// The merge is cumulative: adding 2 of an item already holding 3 yields 5.
// The read-merge-write runs atomically under the store's per-session
// mutation, so concurrent adds for one session never lose updates.
type AddItemsCommandHandler struct {
	store ports.SessionStore
}

// NewAddItemsCommandHandler creates a handler bound to the session store.
func NewAddItemsCommandHandler(store ports.SessionStore) AddItemsCommandHandler {
	return AddItemsCommandHandler{store: store}
}

// Handle merges the command's lines into the session's order and returns the
// updated order snapshot. No I/O happens here; the only failure mode is an
// improperly constructed command.
func (h AddItemsCommandHandler) Handle(_ context.Context, cmd AddItemsCommand) (AddItemsResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemsResult{}, err
	}

	merged := h.store.Mutate(cmd.SessionID(), func(current *order.Order) *order.Order {
		if current == nil {
			current = order.NewOrder()
		}
		for _, l := range cmd.Lines() {
			// Lines are validated at command construction; Add cannot fail.
			_ = current.Add(l.Item, l.Quantity)
		}
		return current
	})

	return AddItemsResult{Lines: merged.Lines()}, nil
}
