package testutil

import (
	"testing"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Store(t *testing.T) {
	store := NewLedger(t, 4).
		WithPeriod("2024-01").
		Earn("2024-01", 5000).
		Spend("2024-01", 2000, "housing").
		Store()

	assert.Equal(t, "2024-01", store.Period)
	require.Len(t, store.Incomes, 1)
	require.Len(t, store.Expenses, 1)
	assert.Equal(t, model.BucketNeeds, store.Expenses[0].Bucket)
	assert.Equal(t, "2024-01", store.Expenses[0].Period)
	assert.NotNil(t, store.Goals)
	assert.Nil(t, NewLedger(t, 0).WithoutGoals().Store().Goals)
}

func TestSetupTestDBWithStore(t *testing.T) {
	want := NewLedger(t, 4).Earn("2024-02", 1200).Store()
	db := SetupTestDBWithStore(t, want)

	got := db.MustLoad()
	assert.Equal(t, want.Version, got.Version)
	require.Len(t, got.Incomes, 1)
	assert.True(t, want.Incomes[0].Amount.Equal(got.Incomes[0].Amount))
	assert.NotEmpty(t, db.Path())
}
