package commands

import (
	"context"
	"fmt"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
)

// CompleteOrderResult carries the durable order id and the computed total
// for the fulfillment reply.
type CompleteOrderResult struct {
	OrderID int64
	Total   float64
}

// CompleteOrderCommandHandler finalizes the session's in-progress order:
// it persists the lines and initial tracking status inside one transaction,
// computes the total, and clears the session.
type CompleteOrderCommandHandler struct {
	store      ports.SessionStore
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler bound to the session
// store and the unit of work factory.
func NewCompleteOrderCommandHandler(store ports.SessionStore, uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{store: store, uowFactory: uowFactory}
}

// Handle persists the session's order and removes it from the store.
//
// A session without an in-progress order, or with an order emptied by
// removals, yields ErrNoActiveOrder; the dangling empty order is dropped.
// Completion is terminal either way: the session entry is deleted whether
// the save succeeded or failed, so the next add starts a fresh order. A
// failed save rolls the transaction back and leaves no partial rows.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (CompleteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrderResult{}, err
	}

	snapshot, ok := h.store.Get(cmd.SessionID())
	if !ok {
		return CompleteOrderResult{}, ErrNoActiveOrder
	}
	if snapshot.IsEmpty() {
		h.store.Delete(cmd.SessionID())
		return CompleteOrderResult{}, ErrNoActiveOrder
	}

	result, err := h.save(ctx, snapshot)
	h.store.Delete(cmd.SessionID())
	if err != nil {
		return CompleteOrderResult{}, err
	}

	return result, nil
}

func (h CompleteOrderCommandHandler) save(ctx context.Context, snapshot *order.Order) (CompleteOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteOrderResult{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.OrderRepository()

	orderID, err := repo.NextOrderID(ctx)
	if err != nil {
		return CompleteOrderResult{}, fmt.Errorf("allocate order id: %w", err)
	}

	for _, l := range snapshot.Lines() {
		if err := repo.AddItem(ctx, l.Item, l.Quantity, orderID); err != nil {
			return CompleteOrderResult{}, fmt.Errorf("save order item %q: %w", l.Item, err)
		}
	}

	if err := repo.SetTracking(ctx, orderID, order.StatusInProgress); err != nil {
		return CompleteOrderResult{}, fmt.Errorf("set tracking for order %d: %w", orderID, err)
	}

	total, err := repo.GetTotalPrice(ctx, orderID)
	if err != nil {
		return CompleteOrderResult{}, fmt.Errorf("compute total for order %d: %w", orderID, err)
	}

	if err := uow.Commit(ctx); err != nil {
		return CompleteOrderResult{}, fmt.Errorf("commit order %d: %w", orderID, err)
	}

	return CompleteOrderResult{OrderID: orderID, Total: total}, nil
}
