package commands

import (
	"errors"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var ErrRemoveItemsCommandIsNotConstructed = errors.New(
	"RemoveItemsCommand is not constructed, use NewRemoveItemsCommand")

// RemoveItemsCommand requests the removal of whole lines from the
// session's in-progress order. Quantities are not part of the request:
// naming an item drops its line entirely regardless of the count held.
type RemoveItemsCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	items     []string

	guard guard.ConstructorGuard
}

// NewRemoveItemsCommand creates a validated RemoveItemsCommand.
// Duplicate item names are collapsed. An empty item list is allowed and
// makes the command a no-op that reports the order's current state.
func NewRemoveItemsCommand(sessionID string, items []string) (RemoveItemsCommand, error) {
	if sessionID == "" {
		return RemoveItemsCommand{}, errs.NewValueIsRequiredError("sessionID")
	}

	seen := make(map[string]struct{}, len(items))
	deduped := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			return RemoveItemsCommand{}, errs.NewValueIsRequiredError("item")
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		deduped = append(deduped, item)
	}

	return RemoveItemsCommand{
		sessionID: sessionID,
		items:     deduped,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveItemsCommand) SessionID() string {
	return c.sessionID
}

// Items returns the deduplicated item names in request order.
func (c RemoveItemsCommand) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

func (c RemoveItemsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemsCommandIsNotConstructed)
}
