package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the version of the last registered migration
const CurrentSchemaVersion = "1.2.0"

// step is one versioned migration. Steps run in order and each is recorded
// in migration_versions once applied.
type step struct {
	version     string
	description string
	up          func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
	m.steps = []step{
		{version: "1.0.0", description: "base schema", up: m.autoMigrateModels},
		{version: "1.1.0", description: "audit query indexes", up: m.advancedIndexMgr.CreateQueryIndexes},
		{version: "1.2.0", description: "dialect tuning", up: m.advancedIndexMgr.ApplyDialectTuning},
	}
	return m
}

// MigrateAll applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	for _, s := range m.steps {
		if applied[s.version] {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version":     s.version,
			"description": s.description,
		})
		if err := s.up(ctx, m.db.WithContext(ctx)); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s (%s): %w", s.version, s.description, err)
		}
		if err := m.setVersion(ctx, s.version, s.description); err != nil {
			return err
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var versions []model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").Limit(1).Find(&versions).Error
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", nil
	}
	return versions[0].Version, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []model.MigrationVersion
	if err := m.db.WithContext(ctx).Find(&versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v.Version] = true
	}
	return applied, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now().UTC(),
		Details:   details,
	}
	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels creates or updates the tables of every model
func (m *MigrationManager) autoMigrateModels(ctx context.Context, db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Bunk{},
		&model.BunkManager{},
		&model.GlobalConfig{},
		&model.Transaction{},
		&model.Identity{},
	)
}
