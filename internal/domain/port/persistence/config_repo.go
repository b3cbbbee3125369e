package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// ConfigRepository stores the global configuration singleton
type ConfigRepository interface {
	// Get returns the global config
	//
	// Possible errors:
	// - ErrConfigNotFound: If the singleton has not been seeded
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context) (*entity.GlobalConfig, error)

	// Save creates or replaces the singleton
	Save(ctx context.Context, config *entity.GlobalConfig) error
}
