package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// BunkRepository defines the methods needed to manage bunks
type BunkRepository interface {
	// GetByID retrieves a bunk with its manager set
	//
	// Possible errors:
	// - ErrBunkNotFound: If the bunk doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Bunk, error)

	// Create stores a new bunk
	Create(ctx context.Context, bunk *entity.Bunk) error

	// Update persists the bunk fields and replaces its manager set
	//
	// Possible errors:
	// - ErrBunkNotFound: If the bunk doesn't exist
	Update(ctx context.Context, bunk *entity.Bunk) error

	// Delete removes the bunk and its manager set
	//
	// Possible errors:
	// - ErrBunkNotFound: If the bunk doesn't exist
	Delete(ctx context.Context, id string) error

	// List returns every bunk ordered by name
	List(ctx context.Context) ([]*entity.Bunk, error)
}
