package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/budget"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/projection"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestRenderSummary(t *testing.T) {
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	needs := model.Category{ID: "housing", Name: "Housing", Bucket: model.BucketNeeds}
	wants := model.Category{ID: "dining", Name: "Dining Out", Bucket: model.BucketWants}
	save := model.Category{ID: "investments", Name: "Investments", Bucket: model.BucketSavings}

	s := budget.Summarize(
		[]model.Income{model.NewIncome(d(5000), date, "")},
		[]model.Expense{
			model.NewExpense(d(2000), date, "", needs, nil),
			model.NewExpense(d(1000), date, "", wants, nil),
			model.NewExpense(d(500), date, "", save, nil),
		},
		"2024-01",
	)

	out := RenderSummary(s, "USD")
	for _, want := range []string{"2024-01", "Needs", "Wants", "Savings", "$2,500", "$2,000", "under", "$5,000", "+$2,000", "$1,500"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "above income")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
}

func TestNewTable_AlignsStyledCells(t *testing.T) {
	tbl := newTable("Bucket", "Amount")
	tbl.Row(BucketStyle(model.BucketNeeds).Render("Needs"), "$1")
	tbl.Row("Savings", "$1,000,000")

	lines := strings.Split(tbl.Render(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	width := lipgloss.Width(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "line %q", line)
	}
}

func TestRenderSummary_Empty(t *testing.T) {
	out := RenderSummary(budget.Summary{Period: "2024-02"}, "USD")
	assert.Contains(t, out, "No transactions recorded")
}

func TestRenderTrends(t *testing.T) {
	assert.Contains(t, RenderTrends(nil, "USD"), "No history yet")

	out := RenderTrends([]budget.TrendPoint{
		{Period: "2024-01", Income: d(4000), Expenses: d(3000), Savings: d(1000), Needs: d(2000), Wants: d(1000)},
		{Period: "2024-02", Income: d(4000), Expenses: d(4600), Savings: d(-600), Needs: d(3000), Wants: d(1500)},
	}, "EUR")

	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "+€1,000")
	assert.Contains(t, out, "-€600")
	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "-15%")
}

func TestRenderBreakdown(t *testing.T) {
	assert.Contains(t, RenderBreakdown(nil, "USD"), "No spending")

	out := RenderBreakdown([]budget.CategorySlice{
		{CategoryID: "housing", Name: "Housing", Icon: "🏠", Bucket: model.BucketNeeds, Amount: d(750), Percentage: 75},
		{CategoryID: "dining", Name: "Dining Out", Bucket: model.BucketWants, Amount: d(250), Percentage: 25},
	}, "USD")

	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, out, "🏠 Housing")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, strings.Repeat("█", 15))
	assert.Contains(t, out, "$250")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(100))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(140))
	assert.Equal(t, strings.Repeat("█", 10), bar(50))
}

func TestRenderBullets(t *testing.T) {
	assert.Contains(t, RenderBullets(nil), "Nothing to report")

	out := RenderBullets([]string{"First.", "Second."})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], BulletIcon)
	assert.Contains(t, lines[1], "Second.")
}

func TestRenderTimeline(t *testing.T) {
	goal := model.Goal{Name: "Emergency fund", Target: d(10000)}
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	reachable := RenderTimeline(goal, projection.GoalTimeline(goal.Target, goal.Starting, d(1000), today), "USD")
	assert.Contains(t, reachable, "Emergency fund")
	assert.Contains(t, reachable, "10 months")
	assert.Contains(t, reachable, "November 15, 2024")

	stuck := RenderTimeline(goal, projection.GoalTimeline(goal.Target, goal.Starting, d(0), today), "USD")
	assert.Contains(t, stuck, "not saving toward this goal")
	assert.NotContains(t, stuck, "Expected by")
}

func TestRenderContinuation(t *testing.T) {
	assert.Contains(t, RenderContinuation(nil, "USD"), "Not enough history")

	c := &projection.Continuation{
		Direction:              projection.DirectionGrowing,
		EmergencyBuffer:        projection.BufferHealthy,
		Headline:               "If this continues, your savings grow by " + projection.AmountPlaceholder + " over the next 12 months.",
		AnalyzedPeriods:        []string{"2024-03", "2024-02", "2024-01"},
		AverageIncome:          d(5000),
		AverageExpenses:        d(4000),
		AverageSavings:         d(1000),
		YearlyProjection:       d(12000),
		MonthsOfLivingExpenses: decimal.RequireFromString("3"),
		Coverage: []projection.CategoryCoverage{
			{CategoryID: "housing", Name: "Housing", AverageSpend: d(1500), Months: d(8)},
		},
	}

	out := RenderContinuation(c, "USD")
	assert.Contains(t, out, "grow by $12,000")
	assert.NotContains(t, out, projection.AmountPlaceholder)
	assert.Contains(t, out, "Based on 3 months")
	assert.Contains(t, out, "Healthy")
	assert.Contains(t, out, "8.0")
}
