package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/category"
	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/config"
	"github.com/Veraticus/the-budget-must-balance/internal/migration"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/Veraticus/the-budget-must-balance/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// session is an opened, migrated store ready for reporting.
type session struct {
	storage  *storage.SQLiteStorage
	dir      *category.Directory
	settings config.Settings
	store    model.Store
	result   migration.Result
}

// openSession opens the database, loads the store and runs the migration
// pipeline once. The caller must close the session.
func openSession(ctx context.Context) (*session, error) {
	settings := config.Load(viper.GetViper())

	db, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	loaded, found, err := db.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	if !found {
		slog.Info("Starting a new budget", "database", settings.DatabasePath)
		loaded = model.Store{Currency: settings.Currency}
	}

	pipeline := &migration.Pipeline{Persister: db, Logger: slog.Default()}
	store, result, err := pipeline.Run(ctx, loaded)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	common.LogDebug("Opened budget", common.Fields{
		"database":   settings.DatabasePath,
		"version":    store.Version,
		"incomes":    len(store.Incomes),
		"expenses":   len(store.Expenses),
		"categories": len(store.Categories),
	})

	return &session{
		storage:  db,
		dir:      category.NewDirectory(store.Categories),
		settings: settings,
		store:    store,
		result:   result,
	}, nil
}

func (s *session) Close() error {
	return s.storage.Close()
}

// currency is the store's label, falling back to configuration.
func (s *session) currency() string {
	if s.store.Currency != "" {
		return s.store.Currency
	}
	return s.settings.Currency
}

// save writes the store back, picking up directory edits first.
func (s *session) save(ctx context.Context) error {
	if s.result.Future {
		return common.NewUserError("This budget was written by a newer release and is read-only here", nil)
	}
	s.store.Categories = s.dir.All()
	if err := s.storage.Save(ctx, s.store); err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

// selector resolves --period, then the stored period, then the current month.
func (s *session) selector(cmd *cobra.Command, now time.Time) (period.Selector, error) {
	raw, _ := cmd.Flags().GetString("period")
	if raw == "" {
		raw = s.store.Period
	}
	if raw == "" {
		return period.Month(now), nil
	}

	sel, err := period.Parse(raw)
	if err != nil {
		return "", common.NewUserError("Periods look like 2024-03 or 2024-ALL", err)
	}
	return sel, nil
}

func withSession(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if err := s.Close(); err != nil {
				common.LogError(err, "Failed to close database", common.Fields{"database": s.settings.DatabasePath})
			}
		}()
		return fn(cmd, args, s)
	}
}
