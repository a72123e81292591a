package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/migration"
	"github.com/Veraticus/the-budget-must-balance/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command against dbPath and returns stdout.
func run(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--db", dbPath, "--log-level", "error"}, args...))
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), "budget %v", args)
	return out.String()
}

func TestEndToEnd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "budget.db")

	run(t, dbPath, "record", "income", "5000", "--date", "2024-01-02")
	run(t, dbPath, "record", "expense", "2000", "--date", "2024-01-03", "--category", "housing")
	run(t, dbPath, "record", "expense", "1000", "--date", "2024-01-04", "--category", "dining")
	run(t, dbPath, "record", "expense", "500", "--date", "2024-01-05", "--category", "investments")

	summary := run(t, dbPath, "summary", "--period", "2024-01")
	for _, want := range []string{"$5,000", "$2,500", "$1,500", "under"} {
		assert.Contains(t, summary, want)
	}

	bullets := run(t, dbPath, "insights", "--period", "2024-01")
	assert.Contains(t, bullets, "Total spending of $3,000 was $2,000 below your income.")

	breakdown := run(t, dbPath, "breakdown", "--period", "2024-01")
	assert.Contains(t, breakdown, "Housing")
	assert.Contains(t, breakdown, "Investments")

	status := run(t, dbPath, "migrate", "--status")
	assert.Contains(t, status, "Budget    4 of 4")

	// Flags on the shared root command keep their values between runs.
	upToDate := run(t, dbPath, "migrate", "--status=false")
	assert.Contains(t, upToDate, "already up to date")
}

func TestMigrate_UpgradesSeededStore(t *testing.T) {
	db := testutil.SetupTestDBWithStore(t, testutil.NewLedger(t, 2).
		WithoutGoals().
		WithPeriod("2024-01").
		Earn("2024-01", 4000).
		Spend("2024-01", 1000, "groceries").
		Store())
	path := db.Path()
	require.NoError(t, db.Storage.Close())

	out := run(t, path, "migrate", "--status=false")
	assert.Contains(t, out, fmt.Sprintf("upgraded from version 2 to %d", migration.CurrentVersion))

	summary := run(t, path, "summary")
	assert.Contains(t, summary, "$4,000")

	again := run(t, path, "migrate", "--status=false")
	assert.Contains(t, again, "already up to date")
}

func TestCategoriesAddAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "budget.db")

	added := run(t, dbPath, "categories", "add", "Rent", "--parent", "housing", "--bucket", "wants")
	assert.Contains(t, added, "Added Rent (rent) to needs")

	listed := run(t, dbPath, "categories", "list")
	assert.Contains(t, listed, "Rent")
	assert.Contains(t, listed, "(rent, needs)")
}

func TestCategoriesCmd(t *testing.T) {
	cmd := categoriesCmd()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["list"])
	assert.True(t, names["add"])
	assert.True(t, names["set-bucket"])
}

func TestRootCommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"summary", "trends", "breakdown", "insights", "goal", "outlook", "record", "categories", "migrate", "version"} {
		assert.Contains(t, names, want)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("period"))
}

func TestParseAmount(t *testing.T) {
	got, err := parseAmount("85.50", "amount")
	require.NoError(t, err)
	assert.Equal(t, "85.5", got.String())

	_, err = parseAmount("lots", "amount")
	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)

	_, err = parseAmount("-3", "amount")
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, got.Day())

	_, err = parseDate("29/02/2024")
	assert.ErrorIs(t, err, common.ErrInvalidDate)

	today, err := parseDate("")
	require.NoError(t, err)
	assert.False(t, today.IsZero())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "dining-out", slug("Dining Out"))
	assert.Equal(t, "car-wash-2", slug("  Car wash #2 "))
}
