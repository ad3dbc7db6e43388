package commands_test

import (
	"testing"

	"orderbot/internal/adapters/out/memory"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemsCommandHandler_Handle_CreatesOrderOnFirstAdd(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	h := commands.NewAddItemsCommandHandler(store)

	cmd, err := commands.NewAddItemsCommand("session-1", []string{"pizza", "samosa"}, []int{2, 1})
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, []order.Line{
		{Item: "pizza", Quantity: 2},
		{Item: "samosa", Quantity: 1},
	}, result.Lines)

	stored, ok := store.Get("session-1")
	require.True(t, ok)
	assert.Equal(t, result.Lines, stored.Lines())
}

func TestAddItemsCommandHandler_Handle_MergesCumulatively(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	h := commands.NewAddItemsCommandHandler(store)

	first, err := commands.NewAddItemsCommand("session-1", []string{"pizza"}, []int{2})
	require.NoError(t, err)
	_, err = h.Handle(ctx, first)
	require.NoError(t, err)

	second, err := commands.NewAddItemsCommand("session-1", []string{"pizza", "mango lassi"}, []int{3, 1})
	require.NoError(t, err)
	result, err := h.Handle(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, []order.Line{
		{Item: "pizza", Quantity: 5},
		{Item: "mango lassi", Quantity: 1},
	}, result.Lines)
}

func TestAddItemsCommandHandler_Handle_SessionsAreIsolated(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	h := commands.NewAddItemsCommandHandler(store)

	cmdA, err := commands.NewAddItemsCommand("session-a", []string{"pizza"}, []int{2})
	require.NoError(t, err)
	cmdB, err := commands.NewAddItemsCommand("session-b", []string{"samosa"}, []int{4})
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmdA)
	require.NoError(t, err)
	resultB, err := h.Handle(ctx, cmdB)
	require.NoError(t, err)

	assert.Equal(t, []order.Line{{Item: "samosa", Quantity: 4}}, resultB.Lines)
	storedA, ok := store.Get("session-a")
	require.True(t, ok)
	assert.Equal(t, []order.Line{{Item: "pizza", Quantity: 2}}, storedA.Lines())
}

func TestAddItemsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	h := commands.NewAddItemsCommandHandler(store)

	_, err := h.Handle(ctx, commands.AddItemsCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddItemsCommandIsNotConstructed)
	assert.Zero(t, store.Len())
}
