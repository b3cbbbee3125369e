package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// TransactionFilter narrows audit record listings. Empty fields match everything.
type TransactionFilter struct {
	InitiatorID string
	TargetUID   string
	Limit       int
}

// TransactionRepository appends and reads audit records. There is no update or delete.
type TransactionRepository interface {
	// Append stores a new audit record
	//
	// Possible errors:
	// - ErrDuplicateRequest: If a record with the same request id exists
	// - ErrDatabaseConnection: If database connection fails
	Append(ctx context.Context, transaction *entity.Transaction) error

	// GetByRequestID finds the record written for an idempotency key
	//
	// Possible errors:
	// - ErrNotFound: If no record carries the request id
	GetByRequestID(ctx context.Context, requestID string) (*entity.Transaction, error)

	// List returns records matching the filter, newest first
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
}
