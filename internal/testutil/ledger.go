package testutil

import (
	"testing"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/category"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
)

// Ledger builds a budget store over the default categories.
//
// Example:
//
//	store := testutil.NewLedger(t, migration.CurrentVersion).
//		Earn("2024-01", 5000).
//		Spend("2024-01", 2000, "housing").
//		Store()
type Ledger struct {
	t     *testing.T
	dir   *category.Directory
	store model.Store
}

// NewLedger starts an empty ledger stamped with version.
func NewLedger(t *testing.T, version int) *Ledger {
	t.Helper()
	defaults := category.Defaults()
	return &Ledger{
		t:   t,
		dir: category.NewDirectory(defaults),
		store: model.Store{
			Currency:   "USD",
			Version:    version,
			Categories: defaults,
			Goals:      []model.Goal{},
		},
	}
}

// On is a date five days into the month key.
func On(key string) time.Time {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		panic(err)
	}
	return t.AddDate(0, 0, 4)
}

// Earn records income in the given month.
func (l *Ledger) Earn(key string, amount int64) *Ledger {
	l.store.Incomes = append(l.store.Incomes,
		model.NewIncome(decimal.NewFromInt(amount), On(key), "salary"))
	return l
}

// Spend records an expense against a default category.
func (l *Ledger) Spend(key string, amount int64, categoryID string) *Ledger {
	l.t.Helper()
	cat, ok := l.dir.Get(categoryID)
	if !ok {
		l.t.Fatalf("unknown category %q", categoryID)
	}
	l.store.Expenses = append(l.store.Expenses,
		model.NewExpense(decimal.NewFromInt(amount), On(key), cat.Name, cat, nil))
	return l
}

// WithPeriod sets the stored active period.
func (l *Ledger) WithPeriod(key string) *Ledger {
	l.store.Period = key
	return l
}

// WithoutGoals clears the goals collection, as stores written before goals
// existed have none.
func (l *Ledger) WithoutGoals() *Ledger {
	l.store.Goals = nil
	return l
}

// Store returns a copy of the built store.
func (l *Ledger) Store() model.Store {
	return l.store.Clone()
}
