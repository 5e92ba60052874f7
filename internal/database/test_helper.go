package database

import (
	"testing"

	"cardfinder/internal/config"

	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory database that lives for the test
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	testDB, err := New(&config.StorageConfig{Path: MemoryPath, MaxOpenConns: 1}, logger.Silent)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CleanupTestDB removes every stored preference
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM preferences").Error; err != nil {
		t.Logf("failed to cleanup table preferences: %v", err)
	}
}
