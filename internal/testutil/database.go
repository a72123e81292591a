// Package testutil provides shared fixtures for tests that need a migrated
// database or a populated budget store.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/storage"
)

// TestDB is a migrated on-disk database scoped to one test.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a database in the test's temp dir and runs the schema
// migrations. The connection is closed on cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "budget.db")
	s, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := s.Migrate(context.Background()); err != nil {
		_ = s.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return &TestDB{Storage: s, t: t}
}

// SetupTestDBWithStore is SetupTestDB seeded with store.
func SetupTestDBWithStore(t *testing.T, store model.Store) *TestDB {
	t.Helper()

	db := SetupTestDB(t)
	if err := db.Storage.Save(context.Background(), store); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return db
}

// Path is the database file location.
func (db *TestDB) Path() string {
	return db.Storage.Path()
}

// MustLoad reads the saved store back or fails the test.
func (db *TestDB) MustLoad() model.Store {
	db.t.Helper()

	store, ok, err := db.Storage.Load(context.Background())
	if err != nil {
		db.t.Fatalf("failed to load store: %v", err)
	}
	if !ok {
		db.t.Fatalf("no store saved")
	}
	return store
}
