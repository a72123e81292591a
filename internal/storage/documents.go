package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
)

// StoreKey is the document key the budget store lives under.
const StoreKey = "store"

var saveRetry = common.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     time.Second,
	Multiplier:   2,
}

// Revision is one historical save of the store document.
type Revision struct {
	SavedAt      time.Time
	ID           int64
	StoreVersion int
	Size         int
}

// Load reads the persisted store. The boolean is false when nothing has been
// saved yet, in which case the returned store is empty.
func (s *SQLiteStorage) Load(ctx context.Context) (model.Store, bool, error) {
	if err := validateContext(ctx); err != nil {
		return model.Store{}, false, err
	}

	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, StoreKey).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Store{}, false, nil
	}
	if err != nil {
		return model.Store{}, false, fmt.Errorf("failed to read store: %w", classify(err))
	}

	var store model.Store
	if err := json.Unmarshal([]byte(body), &store); err != nil {
		return model.Store{}, false, fmt.Errorf("%w: failed to decode store: %w", common.ErrDatabaseCorrupted, err)
	}

	if err := validateStore(store); err != nil {
		return model.Store{}, false, fmt.Errorf("failed to validate store: %w", err)
	}

	return store, true, nil
}

// Save replaces the persisted store and records a revision. Lock contention
// is retried with backoff.
func (s *SQLiteStorage) Save(ctx context.Context, store model.Store) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateStore(store); err != nil {
		return fmt.Errorf("failed to validate store: %w", err)
	}

	body, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	err = common.WithRetry(ctx, func() error {
		return s.saveDocument(ctx, StoreKey, body, store.Version)
	}, saveRetry)
	if err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	slog.Debug("Saved store",
		"version", store.Version,
		"incomes", len(store.Incomes),
		"expenses", len(store.Expenses),
		"bytes", len(body))
	return nil
}

func (s *SQLiteStorage) saveDocument(ctx context.Context, key string, body []byte, version int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (key, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP
	`, key, string(body))
	if err != nil {
		return fmt.Errorf("failed to write document: %w", classify(err))
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO document_revisions (key, body, store_version) VALUES (?, ?, ?)
	`, key, string(body), version)
	if err != nil {
		return fmt.Errorf("failed to record revision: %w", classify(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit document: %w", classify(err))
	}
	return nil
}

// Revisions lists recorded saves of the store, newest first. A limit of zero
// returns all of them.
func (s *SQLiteStorage) Revisions(ctx context.Context, limit int) ([]Revision, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, store_version, LENGTH(body), saved_at FROM document_revisions WHERE key = ? ORDER BY id DESC`
	args := []any{StoreKey}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query revisions: %w", classify(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Warn("failed to close rows", "error", err)
		}
	}()

	var revisions []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.StoreVersion, &r.Size, &r.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan revision: %w", err)
		}
		revisions = append(revisions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revisions: %w", err)
	}

	return revisions, nil
}
