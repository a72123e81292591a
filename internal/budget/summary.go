// Package budget computes 50/30/20 summaries, trend series and category
// breakdowns from raw transaction lists. Every function is pure.
package budget

import (
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/shopspring/decimal"
)

// Status compares actual spend in a bucket against its recommendation.
type Status string

// Bucket statuses.
const (
	StatusUnder   Status = "under"
	StatusOnTrack Status = "on-track"
	StatusOver    Status = "over"
)

// Recommended share of income per bucket.
var (
	NeedsShare   = decimal.RequireFromString("0.5")
	WantsShare   = decimal.RequireFromString("0.3")
	SavingsShare = decimal.RequireFromString("0.2")
)

// Tolerance band around the recommendation that still counts as on-track.
var (
	underThreshold = decimal.RequireFromString("0.95")
	overThreshold  = decimal.RequireFromString("1.05")
	hundred        = decimal.NewFromInt(100)
)

// BucketAmounts holds one figure per bucket.
type BucketAmounts struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

// Get returns the amount for bucket.
func (b BucketAmounts) Get(bucket model.Bucket) decimal.Decimal {
	switch bucket {
	case model.BucketNeeds:
		return b.Needs
	case model.BucketWants:
		return b.Wants
	case model.BucketSavings:
		return b.Savings
	default:
		return decimal.Zero
	}
}

func (b *BucketAmounts) add(bucket model.Bucket, amount decimal.Decimal) bool {
	switch bucket {
	case model.BucketNeeds:
		b.Needs = b.Needs.Add(amount)
	case model.BucketWants:
		b.Wants = b.Wants.Add(amount)
	case model.BucketSavings:
		b.Savings = b.Savings.Add(amount)
	default:
		return false
	}
	return true
}

// BucketPercentages holds actual spend per bucket as a percentage of income.
type BucketPercentages struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// Summary is the derived budget picture for one period. It is never stored.
type Summary struct {
	Period          period.Selector   `json:"period"`
	NeedsStatus     Status            `json:"needsStatus"`
	WantsStatus     Status            `json:"wantsStatus"`
	SavingsStatus   Status            `json:"savingsStatus"`
	Recommended     BucketAmounts     `json:"recommended"`
	Actual          BucketAmounts     `json:"actual"`
	Percentage      BucketPercentages `json:"percentage"`
	TotalIncome     decimal.Decimal   `json:"totalIncome"`
	TotalExpenses   decimal.Decimal   `json:"totalExpenses"`
	NetSavings      decimal.Decimal   `json:"netSavings"`
	UnallocatedCash decimal.Decimal   `json:"unallocatedCash"`
	IncomeCount     int               `json:"incomeCount"`
	ExpenseCount    int               `json:"expenseCount"`
	IsOverBudget    bool              `json:"isOverBudget"`
}

// StatusFor returns the status of bucket.
func (s Summary) StatusFor(bucket model.Bucket) Status {
	switch bucket {
	case model.BucketNeeds:
		return s.NeedsStatus
	case model.BucketWants:
		return s.WantsStatus
	case model.BucketSavings:
		return s.SavingsStatus
	default:
		return StatusOnTrack
	}
}

// HasTransactions reports whether anything was recorded in the period.
func (s Summary) HasTransactions() bool {
	return s.IncomeCount+s.ExpenseCount > 0
}

// SavingsRate is net savings as a percentage of income, 0 without income.
func (s Summary) SavingsRate() float64 {
	return percentOf(s.NetSavings, s.TotalIncome)
}

// Summarize computes the budget summary for the transactions in sel.
//
// Savings-bucket expenses are transfers, not consumption: they are excluded
// from TotalExpenses and show up in NetSavings instead. Expenses carrying an
// unknown bucket are left out of every bucketed sum.
func Summarize(incomes []model.Income, expenses []model.Expense, sel period.Selector) Summary {
	s := Summary{Period: sel}

	for _, inc := range incomes {
		if !sel.Matches(inc.Period) {
			continue
		}
		s.TotalIncome = s.TotalIncome.Add(inc.Amount)
		s.IncomeCount++
	}

	for _, exp := range expenses {
		if !sel.Matches(exp.Period) {
			continue
		}
		s.ExpenseCount++
		s.Actual.add(exp.Bucket, exp.Amount)
	}

	s.Recommended = BucketAmounts{
		Needs:   s.TotalIncome.Mul(NeedsShare),
		Wants:   s.TotalIncome.Mul(WantsShare),
		Savings: s.TotalIncome.Mul(SavingsShare),
	}

	s.TotalExpenses = s.Actual.Needs.Add(s.Actual.Wants)
	s.NetSavings = s.TotalIncome.Sub(s.TotalExpenses)
	s.UnallocatedCash = s.NetSavings.Sub(s.Actual.Savings)

	s.Percentage = BucketPercentages{
		Needs:   percentOf(s.Actual.Needs, s.TotalIncome),
		Wants:   percentOf(s.Actual.Wants, s.TotalIncome),
		Savings: percentOf(s.Actual.Savings, s.TotalIncome),
	}

	s.NeedsStatus = ClassifyStatus(s.Actual.Needs, s.Recommended.Needs)
	s.WantsStatus = ClassifyStatus(s.Actual.Wants, s.Recommended.Wants)
	s.SavingsStatus = ClassifyStatus(s.Actual.Savings, s.Recommended.Savings)

	s.IsOverBudget = s.TotalExpenses.GreaterThan(s.TotalIncome)

	return s
}

// ClassifyStatus buckets the actual/recommended ratio. Without a
// recommendation there is nothing to compare against, so it is on-track.
func ClassifyStatus(actual, recommended decimal.Decimal) Status {
	if !recommended.IsPositive() {
		return StatusOnTrack
	}
	ratio := actual.Div(recommended)
	switch {
	case ratio.LessThan(underThreshold):
		return StatusUnder
	case ratio.GreaterThan(overThreshold):
		return StatusOver
	default:
		return StatusOnTrack
	}
}

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
