package commands_test

import (
	"testing"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCompleteOrderCommand("session-1")
	require.NoError(t, err)
	assert.Equal(t, "session-1", cmd.SessionID())
}

func TestNewCompleteOrderCommand_EmptySessionID(t *testing.T) {
	_, err := commands.NewCompleteOrderCommand("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCompleteOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CompleteOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
}
