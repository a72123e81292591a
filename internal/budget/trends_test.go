package budget

import (
	"testing"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyTrends(t *testing.T) {
	incomes := []model.Income{
		income("2024-02", 4000),
		income("2024-01", 3000),
		income("2024-01", 500),
	}
	expenses := []model.Expense{
		expense("2024-01", 1000, rent),
		expense("2024-01", 400, fun),
		expense("2024-01", 600, savings),
		expense("2024-03", 250, food),
	}

	points := MonthlyTrends(incomes, expenses)
	require.Len(t, points, 3)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, []string{points[0].Period, points[1].Period, points[2].Period})

	jan := points[0]
	assertDecimal(t, "3500", jan.Income)
	assertDecimal(t, "1400", jan.Expenses)
	assertDecimal(t, "1000", jan.Needs)
	assertDecimal(t, "400", jan.Wants)
	assertDecimal(t, "600", jan.SavingsContributions)
	assertDecimal(t, "2100", jan.Savings)
	assert.InDelta(t, 60.0, jan.SavingsRate(), 1e-9)

	mar := points[2]
	assertDecimal(t, "0", mar.Income)
	assertDecimal(t, "-250", mar.Savings)
	assert.Zero(t, mar.SavingsRate())

	for _, p := range points {
		assert.True(t, p.Savings.Equal(p.Income.Sub(p.Expenses)), "savings identity for %s", p.Period)
		assert.True(t, p.Expenses.Equal(p.Needs.Add(p.Wants)), "expenses exclude savings for %s", p.Period)
	}
}

func TestMonthlyTrends_Empty(t *testing.T) {
	assert.Empty(t, MonthlyTrends(nil, nil))
}

func TestYearlyTrends(t *testing.T) {
	monthly := MonthlyTrends(
		[]model.Income{income("2023-11", 1000), income("2023-12", 1000), income("2024-01", 2000)},
		[]model.Expense{expense("2023-11", 300, rent), expense("2023-12", 200, fun), expense("2024-01", 500, savings)},
	)

	years := YearlyTrends(monthly)
	require.Len(t, years, 2)

	assert.Equal(t, "2023", years[0].Period)
	assertDecimal(t, "2000", years[0].Income)
	assertDecimal(t, "500", years[0].Expenses)
	assertDecimal(t, "1500", years[0].Savings)
	assertDecimal(t, "300", years[0].Needs)
	assertDecimal(t, "200", years[0].Wants)

	assert.Equal(t, "2024", years[1].Period)
	assertDecimal(t, "2000", years[1].Savings)
	assertDecimal(t, "500", years[1].SavingsContributions)
	assertDecimal(t, "500", years[1].Bucket(model.BucketSavings))
}

func TestHistory(t *testing.T) {
	points := []TrendPoint{{Period: "2024-01"}, {Period: "2024-02"}, {Period: "2024-04"}}

	assert.Len(t, History(points, "2024-02"), 2)
	assert.Len(t, History(points, "2024-03"), 2)
	assert.Len(t, History(points, "2023-12"), 0)
	assert.Len(t, History(points, "2025-01"), 3)
}
