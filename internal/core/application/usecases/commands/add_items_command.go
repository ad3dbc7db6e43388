package commands

import (
	"errors"
	"fmt"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var (
	ErrAddItemsCommandIsNotConstructed = errors.New(
		"AddItemsCommand must be created via NewAddItemsCommand constructor",
	)

	// ErrItemQuantityMismatch means the NLU layer produced item and quantity
	// sequences that do not pair up one-to-one. The caller is asked to
	// clarify; no state is mutated.
	ErrItemQuantityMismatch = errors.New("food items and quantities do not pair up")
)

// AddItemsCommand represents a request to merge items into the session's
// in-progress order. The parallel item/quantity sequences from the webhook
// payload are zipped at construction; when an item repeats within one
// request, the later pair's quantity wins, mirroring how a speaker corrects
// themselves mid-sentence ("two pizzas... no, three").
type AddItemsCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	lines     []order.Line

	guard guard.ConstructorGuard
}

// NewAddItemsCommand builds the command from the raw parallel sequences.
// It fails with ErrItemQuantityMismatch when the sequences differ in length,
// and rejects empty item names and non-positive quantities, so handlers only
// ever see well-formed lines.
func NewAddItemsCommand(sessionID string, items []string, quantities []int) (AddItemsCommand, error) {
	if sessionID == "" {
		return AddItemsCommand{}, errs.NewValueIsRequiredError("sessionID")
	}
	if len(items) != len(quantities) {
		return AddItemsCommand{}, fmt.Errorf("%w: %d items, %d quantities",
			ErrItemQuantityMismatch, len(items), len(quantities))
	}

	cmd := AddItemsCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}

	index := make(map[string]int, len(items))
	for i, item := range items {
		if item == "" {
			return AddItemsCommand{}, errs.NewValueIsRequiredError("item")
		}
		if quantities[i] <= 0 {
			return AddItemsCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d is not greater than 0", quantities[i]),
			)
		}

		if at, ok := index[item]; ok {
			// Repeated item within one request: overwrite, do not add.
			cmd.lines[at].Quantity = quantities[i]
			continue
		}

		index[item] = len(cmd.lines)
		cmd.lines = append(cmd.lines, order.Line{Item: item, Quantity: quantities[i]})
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// SessionID returns the conversation session the items belong to.
func (c AddItemsCommand) SessionID() string {
	return c.sessionID
}

// Lines returns the de-duplicated (item, quantity) pairs to merge.
func (c AddItemsCommand) Lines() []order.Line {
	out := make([]order.Line, len(c.lines))
	copy(out, c.lines)
	return out
}
