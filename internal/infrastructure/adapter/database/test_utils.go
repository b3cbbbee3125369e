package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides a migrated sqlite database in a temp dir for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates, connects and migrates a fresh test database.
// It is closed when the test ends.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.Database = filepath.Join(t.TempDir(), "loyalty_test.db")
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.RetryDelay = 0
	config.QueryTimeout = 5 * time.Second
	config.Retry = RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   10 * time.Millisecond,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the connected gorm handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// TruncateAllTables empties every application table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	for _, table := range []string{"bunk_managers", "bunks", "transactions", "users", "global_config", "identities"} {
		if err := m.DB().Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
