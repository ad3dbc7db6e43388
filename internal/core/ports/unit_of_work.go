package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances, one per completion
// request, so concurrent completions get isolated transactions.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary around saving a completed order:
// id allocation, line-item inserts, and the tracking row either all commit
// or all roll back. Client code manages the lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin.
	OrderRepository() OrderRepository
}
