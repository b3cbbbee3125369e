package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages indexes and dialect specific tuning that
// AutoMigrate cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexDef struct {
	name  string
	table string
	sql   string
}

// CreateQueryIndexes creates composite indexes for the history listings
func (m *AdvancedIndexManager) CreateQueryIndexes(ctx context.Context, db *gorm.DB) error {
	indexes := []indexDef{
		{
			name:  "idx_transactions_target_time",
			table: "transactions",
			sql:   "CREATE INDEX idx_transactions_target_time ON transactions (target_uid, timestamp)",
		},
		{
			name:  "idx_transactions_initiator_time",
			table: "transactions",
			sql:   "CREATE INDEX idx_transactions_initiator_time ON transactions (initiator_id, timestamp)",
		},
	}

	for _, idx := range indexes {
		// mysql has no CREATE INDEX IF NOT EXISTS
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Query indexes created", map[string]any{"count": len(indexes)})
	return nil
}

// ApplyDialectTuning applies PostgreSQL-only indexes and planner settings.
// Failures here are logged and ignored.
func (m *AdvancedIndexManager) ApplyDialectTuning(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		m.logger.Debug("No dialect tuning for this database", map[string]any{
			"dialect": db.Dialector.Name(),
		})
		return nil
	}

	statements := map[string]string{
		"brin_timestamp": `CREATE INDEX IF NOT EXISTS idx_transactions_timestamp_brin
			ON transactions USING BRIN (timestamp) WITH (pages_per_range = 32)`,
		"assigned_managers": `CREATE INDEX IF NOT EXISTS idx_users_assigned_managers
			ON users (assigned_bunk_id) WHERE role = 'manager' AND assigned_bunk_id IS NOT NULL`,
		"fillfactor": `ALTER TABLE transactions SET (fillfactor = 100)`,
		"statistics": `ALTER TABLE transactions ALTER COLUMN target_uid SET STATISTICS 1000`,
	}

	for name, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			m.logger.Warn("PostgreSQL tuning statement failed", map[string]any{
				"statement": name,
				"error":     err.Error(),
			})
		}
	}

	m.logger.Info("PostgreSQL tuning applied", nil)
	return nil
}
