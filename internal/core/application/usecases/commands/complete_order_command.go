package commands

import (
	"errors"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand is not constructed, use NewCompleteOrderCommand")

// CompleteOrderCommand finalizes the session's in-progress order:
// persist it, start tracking, compute the total and clear the session.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a validated CompleteOrderCommand.
func NewCompleteOrderCommand(sessionID string) (CompleteOrderCommand, error) {
	if sessionID == "" {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredError("sessionID")
	}

	return CompleteOrderCommand{
		sessionID: sessionID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOrderCommand) SessionID() string {
	return c.sessionID
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}
