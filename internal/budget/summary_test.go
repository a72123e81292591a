package budget

import (
	"testing"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_FiftyThirtyTwentyScenario(t *testing.T) {
	incomes := []model.Income{income("2024-01", 5000)}
	expenses := []model.Expense{
		expense("2024-01", 2000, rent),
		expense("2024-01", 1000, fun),
		expense("2024-01", 500, savings),
	}

	s := Summarize(incomes, expenses, "2024-01")

	assertDecimal(t, "5000", s.TotalIncome)
	assertDecimal(t, "3000", s.TotalExpenses)
	assertDecimal(t, "2000", s.NetSavings)
	assertDecimal(t, "2500", s.Recommended.Needs)
	assertDecimal(t, "1500", s.Recommended.Wants)
	assertDecimal(t, "1000", s.Recommended.Savings)
	assertDecimal(t, "500", s.Actual.Savings)
	assertDecimal(t, "1500", s.UnallocatedCash)
	assert.Equal(t, StatusUnder, s.NeedsStatus)
	assert.Equal(t, StatusUnder, s.WantsStatus)
	assert.Equal(t, StatusUnder, s.SavingsStatus)
	assert.False(t, s.IsOverBudget)
	assert.InDelta(t, 40.0, s.Percentage.Needs, 1e-9)
	assert.InDelta(t, 20.0, s.Percentage.Wants, 1e-9)
	assert.InDelta(t, 10.0, s.Percentage.Savings, 1e-9)
	assert.InDelta(t, 40.0, s.SavingsRate(), 1e-9)
	assert.True(t, s.HasTransactions())
}

func TestSummarize_FiltersByPeriod(t *testing.T) {
	incomes := []model.Income{income("2024-01", 1000), income("2024-02", 2000), income("2023-12", 4000)}
	expenses := []model.Expense{expense("2024-01", 100, food), expense("2024-02", 300, food), expense("2023-12", 900, fun)}

	jan := Summarize(incomes, expenses, "2024-01")
	assertDecimal(t, "1000", jan.TotalIncome)
	assertDecimal(t, "100", jan.TotalExpenses)

	year := Summarize(incomes, expenses, period.Year(2024))
	assertDecimal(t, "3000", year.TotalIncome)
	assertDecimal(t, "400", year.TotalExpenses)
	assert.Equal(t, 2, year.IncomeCount)
	assert.Equal(t, 2, year.ExpenseCount)

	empty := Summarize(incomes, expenses, "2025-06")
	assert.False(t, empty.HasTransactions())
	assert.Equal(t, StatusOnTrack, empty.NeedsStatus)
	assert.Zero(t, empty.SavingsRate())
}

func TestSummarize_ExpenseInvariantHolds(t *testing.T) {
	bogus := model.Expense{ID: "bad", Period: "2024-03", Bucket: "mystery", Amount: decimal.NewFromInt(999)}
	incomes := []model.Income{income("2024-03", 3000)}
	expenses := []model.Expense{
		expense("2024-03", 1200, rent),
		expense("2024-03", 800, dining),
		expense("2024-03", 700, savings),
		bogus,
	}

	for _, sel := range []period.Selector{"2024-03", "2024-ALL", "2024-04"} {
		s := Summarize(incomes, expenses, sel)
		assert.True(t, s.TotalExpenses.Equal(s.Actual.Needs.Add(s.Actual.Wants)), "period %s", sel)
		assert.True(t, s.UnallocatedCash.Equal(s.NetSavings.Sub(s.Actual.Savings)), "period %s", sel)
	}

	s := Summarize(incomes, expenses, "2024-03")
	assertDecimal(t, "2000", s.TotalExpenses)
	assert.Equal(t, 4, s.ExpenseCount)
}

func TestSummarize_OverBudget(t *testing.T) {
	s := Summarize(
		[]model.Income{income("2024-05", 1000)},
		[]model.Expense{expense("2024-05", 900, rent), expense("2024-05", 400, dining)},
		"2024-05",
	)

	assert.True(t, s.IsOverBudget)
	assert.Equal(t, StatusOver, s.NeedsStatus)
	assert.Equal(t, StatusOver, s.WantsStatus)
	assert.Equal(t, StatusUnder, s.SavingsStatus)
	assertDecimal(t, "-300", s.NetSavings)
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name        string
		actual      string
		recommended string
		want        Status
	}{
		{name: "well under", actual: "50", recommended: "100", want: StatusUnder},
		{name: "just under band", actual: "94.99", recommended: "100", want: StatusUnder},
		{name: "lower edge of band", actual: "95", recommended: "100", want: StatusOnTrack},
		{name: "upper edge of band", actual: "105", recommended: "100", want: StatusOnTrack},
		{name: "just over band", actual: "105.01", recommended: "100", want: StatusOver},
		{name: "no recommendation", actual: "10", recommended: "0", want: StatusOnTrack},
		{name: "nothing at all", actual: "0", recommended: "0", want: StatusOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(decimal.RequireFromString(tt.actual), decimal.RequireFromString(tt.recommended))
			assert.Equal(t, tt.want, got)
		})
	}
}
