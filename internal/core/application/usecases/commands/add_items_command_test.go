package commands_test

import (
	"testing"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemsCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddItemsCommand("session-1", []string{"pizza", "mango lassi"}, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, "session-1", cmd.SessionID())
	assert.Equal(t, []order.Line{
		{Item: "pizza", Quantity: 2},
		{Item: "mango lassi", Quantity: 1},
	}, cmd.Lines())
}

func TestNewAddItemsCommand_LengthMismatch(t *testing.T) {
	_, err := commands.NewAddItemsCommand("session-1", []string{"pizza", "samosa"}, []int{2})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemQuantityMismatch)
}

func TestNewAddItemsCommand_EmptySessionID(t *testing.T) {
	_, err := commands.NewAddItemsCommand("", []string{"pizza"}, []int{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAddItemsCommand_EmptyItem(t *testing.T) {
	_, err := commands.NewAddItemsCommand("session-1", []string{"pizza", ""}, []int{2, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAddItemsCommand_NonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -3} {
		_, err := commands.NewAddItemsCommand("session-1", []string{"pizza"}, []int{qty})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewAddItemsCommand_RepeatedItemLaterPairWins(t *testing.T) {
	cmd, err := commands.NewAddItemsCommand("session-1",
		[]string{"pizza", "samosa", "pizza"}, []int{2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []order.Line{
		{Item: "pizza", Quantity: 3},
		{Item: "samosa", Quantity: 1},
	}, cmd.Lines())
}

func TestAddItemsCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AddItemsCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddItemsCommandIsNotConstructed)
}
