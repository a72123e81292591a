package budget

import (
	"sort"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/shopspring/decimal"
)

// TrendPoint aggregates one period. Savings is net cash growth
// (Income - Expenses), which already includes savings-bucket transfers and
// unallocated cash; SavingsContributions is the savings-bucket total alone.
type TrendPoint struct {
	Period               string          `json:"period"` // YYYY-MM for monthly points, YYYY for yearly
	Income               decimal.Decimal `json:"income"`
	Expenses             decimal.Decimal `json:"expenses"`
	Savings              decimal.Decimal `json:"savings"`
	Needs                decimal.Decimal `json:"needs"`
	Wants                decimal.Decimal `json:"wants"`
	SavingsContributions decimal.Decimal `json:"savingsContributions"`
}

// SavingsRate is Savings as a percentage of Income, 0 without income.
func (p TrendPoint) SavingsRate() float64 {
	return percentOf(p.Savings, p.Income)
}

// Bucket returns the accumulated spend for bucket.
func (p TrendPoint) Bucket(bucket model.Bucket) decimal.Decimal {
	switch bucket {
	case model.BucketNeeds:
		return p.Needs
	case model.BucketWants:
		return p.Wants
	case model.BucketSavings:
		return p.SavingsContributions
	default:
		return decimal.Zero
	}
}

// MonthlyTrends builds one point per month key present in either list,
// sorted chronologically.
func MonthlyTrends(incomes []model.Income, expenses []model.Expense) []TrendPoint {
	points := make(map[string]*TrendPoint)
	get := func(key string) *TrendPoint {
		p, ok := points[key]
		if !ok {
			p = &TrendPoint{Period: key}
			points[key] = p
		}
		return p
	}

	for _, inc := range incomes {
		p := get(inc.Period)
		p.Income = p.Income.Add(inc.Amount)
	}

	for _, exp := range expenses {
		p := get(exp.Period)
		switch exp.Bucket {
		case model.BucketNeeds:
			p.Needs = p.Needs.Add(exp.Amount)
			p.Expenses = p.Expenses.Add(exp.Amount)
		case model.BucketWants:
			p.Wants = p.Wants.Add(exp.Amount)
			p.Expenses = p.Expenses.Add(exp.Amount)
		case model.BucketSavings:
			p.SavingsContributions = p.SavingsContributions.Add(exp.Amount)
		}
	}

	out := make([]TrendPoint, 0, len(points))
	for _, p := range points {
		p.Savings = p.Income.Sub(p.Expenses)
		out = append(out, *p)
	}
	sortByPeriod(out)
	return out
}

// YearlyTrends folds monthly points into one point per year.
func YearlyTrends(monthly []TrendPoint) []TrendPoint {
	years := make(map[string]*TrendPoint)
	for _, m := range monthly {
		key := period.YearOf(m.Period)
		y, ok := years[key]
		if !ok {
			y = &TrendPoint{Period: key}
			years[key] = y
		}
		y.Income = y.Income.Add(m.Income)
		y.Expenses = y.Expenses.Add(m.Expenses)
		y.Savings = y.Savings.Add(m.Savings)
		y.Needs = y.Needs.Add(m.Needs)
		y.Wants = y.Wants.Add(m.Wants)
		y.SavingsContributions = y.SavingsContributions.Add(m.SavingsContributions)
	}

	out := make([]TrendPoint, 0, len(years))
	for _, y := range years {
		out = append(out, *y)
	}
	sortByPeriod(out)
	return out
}

// History returns the points at or before key, oldest first.
func History(points []TrendPoint, key string) []TrendPoint {
	idx := sort.Search(len(points), func(i int) bool { return points[i].Period > key })
	return points[:idx]
}

func sortByPeriod(points []TrendPoint) {
	sort.Slice(points, func(i, j int) bool { return points[i].Period < points[j].Period })
}
