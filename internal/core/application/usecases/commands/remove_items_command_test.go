package commands_test

import (
	"testing"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveItemsCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRemoveItemsCommand("session-1", []string{"pizza", "samosa"})
	require.NoError(t, err)
	assert.Equal(t, "session-1", cmd.SessionID())
	assert.Equal(t, []string{"pizza", "samosa"}, cmd.Items())
}

func TestNewRemoveItemsCommand_CollapsesDuplicates(t *testing.T) {
	cmd, err := commands.NewRemoveItemsCommand("session-1", []string{"pizza", "samosa", "pizza"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pizza", "samosa"}, cmd.Items())
}

func TestNewRemoveItemsCommand_EmptySessionID(t *testing.T) {
	_, err := commands.NewRemoveItemsCommand("", []string{"pizza"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRemoveItemsCommand_NoItemsIsAllowed(t *testing.T) {
	cmd, err := commands.NewRemoveItemsCommand("session-1", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewRemoveItemsCommand_EmptyItem(t *testing.T) {
	_, err := commands.NewRemoveItemsCommand("session-1", []string{"pizza", ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRemoveItemsCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RemoveItemsCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRemoveItemsCommandIsNotConstructed)
}
