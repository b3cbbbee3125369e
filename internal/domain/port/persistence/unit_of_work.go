package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating operations across
// multiple repositories inside one database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside a transaction. It commits when fn returns nil and
	// rolls back otherwise. The whole attempt is retried when the database
	// reports a serialization conflict or deadlock.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetBunkRepository returns a bunk repository bound to the current transaction
	GetBunkRepository(ctx context.Context) BunkRepository

	// GetConfigRepository returns a config repository bound to the current transaction
	GetConfigRepository(ctx context.Context) ConfigRepository

	// GetTransactionRepository returns an audit repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
