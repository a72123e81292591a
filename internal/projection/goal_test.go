package projection

import (
	"testing"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestGoalTimeline(t *testing.T) {
	tests := []struct {
		name       string
		goal       decimal.Decimal
		starting   decimal.Decimal
		average    decimal.Decimal
		wantMonths int
		achievable bool
		message    string
	}{
		{name: "already reached", goal: d(1000), starting: d(1500), average: d(100), wantMonths: 0, achievable: true, message: "already reached"},
		{name: "exactly reached", goal: d(1000), starting: d(1000), average: d(-50), wantMonths: 0, achievable: true, message: "already reached"},
		{name: "no surplus", goal: d(1000), starting: d(0), average: d(0), wantMonths: NotAchievable, achievable: false, message: "not saving"},
		{name: "deficit", goal: d(1000), starting: d(10), average: d(-20), wantMonths: NotAchievable, achievable: false, message: "not saving"},
		{name: "rounds up", goal: d(10000), starting: d(0), average: d(750), wantMonths: 14, achievable: true, message: "14 months"},
		{name: "exact division", goal: d(10000), starting: d(0), average: d(1000), wantMonths: 10, achievable: true, message: "10 months"},
		{name: "singular month", goal: d(500), starting: d(100), average: d(400), wantMonths: 1, achievable: true, message: "in 1 month."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoalTimeline(tt.goal, tt.starting, tt.average, today)

			assert.Equal(t, tt.wantMonths, got.Months)
			assert.Equal(t, tt.achievable, got.IsAchievable)
			assert.Contains(t, got.Message, tt.message)
			if tt.wantMonths > 0 {
				require.NotNil(t, got.CompletionDate)
			} else {
				assert.Nil(t, got.CompletionDate)
			}
		})
	}
}

func TestGoalTimeline_CompletionDateUsesCalendarMonths(t *testing.T) {
	got := GoalTimeline(d(300), d(0), d(100), today)
	require.NotNil(t, got.CompletionDate)
	assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), *got.CompletionDate)
}

func TestAverageMonthlyCashBalance(t *testing.T) {
	needs := model.Category{ID: "housing", Bucket: model.BucketNeeds}
	save := model.Category{ID: "investments", Bucket: model.BucketSavings}
	on := func(key string) time.Time {
		tm, _ := time.Parse("2006-01", key)
		return tm
	}

	incomes := []model.Income{
		model.NewIncome(d(3000), on("2024-01"), ""),
		model.NewIncome(d(3000), on("2024-02"), ""),
		model.NewIncome(d(3000), on("2024-03"), ""),
	}
	expenses := []model.Expense{
		model.NewExpense(d(2000), on("2024-01"), "", needs, nil),
		model.NewExpense(d(500), on("2024-01"), "", save, nil),
		model.NewExpense(d(1500), on("2024-02"), "", needs, nil),
		model.NewExpense(d(2900), on("2024-03"), "", needs, nil),
	}

	// Jan 500, Feb 1500, Mar 100
	all := AverageMonthlyCashBalance(incomes, expenses, "")
	assert.True(t, d(700).Equal(all), "got %s", all)

	withoutCurrent := AverageMonthlyCashBalance(incomes, expenses, "2024-03")
	assert.True(t, d(1000).Equal(withoutCurrent), "got %s", withoutCurrent)

	assert.True(t, AverageMonthlyCashBalance(nil, nil, "").IsZero())
}
