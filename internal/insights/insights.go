// Package insights turns one period's budget figures into a short, ranked
// list of plain-text bullets.
//
// Each rule is a producer that returns zero or more tagged candidates. A
// pure selection pass then caps variances, lets a trend displace one
// variance, derives the reconciliation hint from the surviving variance
// records, sorts by priority and truncates. Nothing here is random and no
// clock is read.
package insights

import (
	"github.com/Veraticus/the-budget-must-balance/internal/budget"
	"github.com/Veraticus/the-budget-must-balance/internal/category"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/shopspring/decimal"
)

// MaxBullets bounds the generated list.
const MaxBullets = 6

// maxVariances is how many bucket variance bullets may survive.
const maxVariances = 2

// Variance floors in currency units. The yearly floor is twelve monthly ones.
var (
	monthlyFloor      = decimal.NewFromInt(100)
	yearlyFloor       = decimal.NewFromInt(1200)
	varianceTolerance = decimal.RequireFromString("0.05")
	half              = decimal.RequireFromString("0.5")
	hundred           = decimal.NewFromInt(100)
)

// Input is the data a narrative is generated from.
type Input struct {
	Directory *category.Directory
	Period    period.Selector
	Currency  string
	Incomes   []model.Income
	Expenses  []model.Expense
}

// Generate picks the monthly or yearly narrative for in.Period.
func Generate(in Input) []string {
	if in.Period.IsYear() {
		return Yearly(in)
	}
	return Monthly(in)
}

// Monthly narrates a single month. It returns nil when the month has no
// transactions.
func Monthly(in Input) []string {
	monthly := budget.MonthlyTrends(in.Incomes, in.Expenses)
	return narrate(in, granularity{
		floor:    monthlyFloor,
		unit:     "months",
		key:      string(in.Period),
		history:  monthly,
		previous: period.Previous,
	})
}

// Yearly narrates a whole calendar year against year-level aggregates.
func Yearly(in Input) []string {
	yearly := budget.YearlyTrends(budget.MonthlyTrends(in.Incomes, in.Expenses))
	return narrate(in, granularity{
		floor:    yearlyFloor,
		unit:     "years",
		key:      in.Period.YearPrefix(),
		history:  yearly,
		previous: period.PreviousYear,
	})
}

// granularity captures what differs between the monthly and yearly runs.
type granularity struct {
	floor    decimal.Decimal
	unit     string
	key      string
	history  []budget.TrendPoint
	previous func(string) string
}

// report is the shared state every producer reads.
type report struct {
	in      Input
	summary budget.Summary
	slices  []budget.CategorySlice
	history []budget.TrendPoint
	floor   decimal.Decimal
	unit    string
}

func (r *report) money(amount decimal.Decimal) string {
	return model.FormatMoney(amount, r.in.Currency)
}

func narrate(in Input, g granularity) []string {
	summary := budget.Summarize(in.Incomes, in.Expenses, in.Period)
	if !summary.HasTransactions() {
		return nil
	}

	r := &report{
		in:      in,
		summary: summary,
		slices:  budget.SpendingSlices(budget.Breakdown(in.Expenses, in.Directory, in.Period)),
		history: consecutive(budget.History(g.history, g.key), g.key, g.previous),
		floor:   g.floor,
		unit:    g.unit,
	}

	var candidates []candidate
	for _, produce := range producers {
		candidates = append(candidates, produce(r)...)
	}

	return texts(selectCandidates(candidates))
}

// consecutive returns the unbroken run of points ending at key, oldest
// first. Savings health and trend compare adjacent periods only, so the run
// stops at the first gap and is empty when key itself has no point.
func consecutive(points []budget.TrendPoint, key string, previous func(string) string) []budget.TrendPoint {
	n := len(points)
	if n == 0 || points[n-1].Period != key {
		return nil
	}
	start := n - 1
	for start > 0 && points[start-1].Period == previous(points[start].Period) {
		start--
	}
	return points[start:]
}
