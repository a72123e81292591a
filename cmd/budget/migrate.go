package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/config"
	"github.com/Veraticus/the-budget-must-balance/internal/migration"
	"github.com/Veraticus/the-budget-must-balance/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade the database and stored budget",
		Long: `Bring the database schema and the stored budget up to the latest
version. Every other command does this automatically; use --status to see
what would change, or --backup to keep a copy of the database first.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "show migration status without applying changes")
	cmd.Flags().Bool("backup", false, "back up the database before migrating")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")
	backup, _ := cmd.Flags().GetBool("backup")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	settings := config.Load(viper.GetViper())
	db, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if status {
		return printMigrationStatus(cmd, db)
	}

	if backup {
		dest, err := filepath.Abs(fmt.Sprintf("%s.%s.bak", settings.DatabasePath, time.Now().Format("20060102-150405")))
		if err != nil {
			return fmt.Errorf("failed to resolve backup path: %w", err)
		}
		if err := db.Backup(ctx, dest); err != nil {
			return fmt.Errorf("failed to back up database: %w", err)
		}
		common.LogInfo("Database backed up", common.Fields{"source": db.Path(), "destination": dest})
		fmt.Fprintln(out, cli.FormatInfo("Backed up database to "+dest))
	}

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	loaded, found, err := db.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if !found {
		loaded.Currency = settings.Currency
	}

	pipeline := &migration.Pipeline{Persister: db, Logger: slog.Default()}
	migrated, res, err := pipeline.Run(ctx, loaded)
	if err != nil {
		return err
	}

	switch {
	case res.Future:
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Budget is at version %d, newer than this build (%d); left untouched", migrated.Version, migration.CurrentVersion)))
	case res.Changed:
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Budget upgraded from version %d to %d", res.FromVersion, migrated.Version)))
	default:
		fmt.Fprintln(out, cli.FormatSuccess("Budget is already up to date"))
	}
	return nil
}

func printMigrationStatus(cmd *cobra.Command, db *storage.SQLiteStorage) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	schema, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, cli.FormatTitle("Migration status"))
	fmt.Fprintf(out, "Database  %s\n", db.Path())
	fmt.Fprintf(out, "Schema    %d of %d\n", schema, storage.ExpectedSchemaVersion)

	if schema < storage.ExpectedSchemaVersion {
		fmt.Fprintln(out, cli.FormatInfo("Schema upgrade pending; the stored budget is checked after it runs"))
		return nil
	}

	loaded, found, err := db.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if !found {
		fmt.Fprintln(out, cli.FormatInfo("No budget saved yet"))
		return nil
	}

	fmt.Fprintf(out, "Budget    %d of %d\n", loaded.Version, migration.CurrentVersion)
	for _, step := range migration.Pending(loaded.Version) {
		fmt.Fprintf(out, "  pending %d: %s\n", step.Version, step.Description)
	}

	revisions, err := db.Revisions(ctx, 5)
	if err != nil {
		return err
	}
	if len(revisions) > 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("Recent saves:"))
		for _, r := range revisions {
			fmt.Fprintf(out, "  %s  version %d  %d bytes\n", r.SavedAt.Format(time.DateTime), r.StoreVersion, r.Size)
		}
	}
	return nil
}
