package projection

import (
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/budget"
	"github.com/Veraticus/the-budget-must-balance/internal/category"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/shopspring/decimal"
)

// AmountPlaceholder marks where the caller substitutes its formatted amount.
const AmountPlaceholder = "##AMOUNT##"

// Analysis window bounds, in months.
const (
	DefaultWindow = 6
	MinWindow     = 3
	outlookMonths = 12
)

// Emergency buffer thresholds, in months of living expenses.
var (
	strongBufferMonths  = decimal.NewFromInt(6)
	healthyBufferMonths = decimal.NewFromInt(3)
	twelve              = decimal.NewFromInt(12)
)

// Direction is the sign of the projected yearly savings.
type Direction string

// Projection directions.
const (
	DirectionGrowing   Direction = "growing"
	DirectionShrinking Direction = "shrinking"
	DirectionFlat      Direction = "flat"
)

// Buffer classifies how many months of expenses the projection covers.
type Buffer string

// Emergency buffer levels.
const (
	BufferStrong  Buffer = "Strong"
	BufferHealthy Buffer = "Healthy"
	BufferBasic   Buffer = "Basic"
)

// Headline templates, one per direction.
const (
	headlineGrowing   = "If this continues, your savings grow by " + AmountPlaceholder + " over the next 12 months."
	headlineShrinking = "If this continues, your spending exceeds income by " + AmountPlaceholder + " over the next 12 months."
	headlineFlat      = "If this continues, your savings remain unchanged at " + AmountPlaceholder + " over the next 12 months."
)

// ContinuationInput is everything the projector looks at.
type ContinuationInput struct {
	Directory *category.Directory
	// Current is the active period; it and everything after it are excluded.
	Current            period.Selector
	Trends             []budget.TrendPoint
	Expenses           []model.Expense
	CoverageCategories []string
	// Window caps the number of months analysed. Zero means DefaultWindow.
	Window int
}

// ProjectedMonth is one month of the 12-month outlook.
type ProjectedMonth struct {
	Period            string          `json:"period"`
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Savings           decimal.Decimal `json:"savings"`
	CumulativeSavings decimal.Decimal `json:"cumulativeSavings"`
}

// CategoryCoverage is how long the projected savings could fund one category.
type CategoryCoverage struct {
	CategoryID   string          `json:"categoryId"`
	Name         string          `json:"name"`
	AverageSpend decimal.Decimal `json:"averageSpend"`
	Months       decimal.Decimal `json:"months"`
}

// Continuation is the "if this continues" projection.
type Continuation struct {
	Direction              Direction          `json:"direction"`
	EmergencyBuffer        Buffer             `json:"emergencyBuffer"`
	Headline               string             `json:"headline"`
	AnalyzedPeriods        []string           `json:"analyzedPeriods"`
	Outlook                []ProjectedMonth   `json:"outlook"`
	Coverage               []CategoryCoverage `json:"coverage,omitempty"`
	AverageIncome          decimal.Decimal    `json:"averageIncome"`
	AverageExpenses        decimal.Decimal    `json:"averageExpenses"`
	AverageSavings         decimal.Decimal    `json:"averageSavings"`
	AverageNeeds           decimal.Decimal    `json:"averageNeeds"`
	AverageWants           decimal.Decimal    `json:"averageWants"`
	YearlyProjection       decimal.Decimal    `json:"yearlyProjection"`
	MonthsOfLivingExpenses decimal.Decimal    `json:"monthsOfLivingExpenses"`
}

// HeadlineAmount is the figure the headline placeholder stands for.
func (c *Continuation) HeadlineAmount() decimal.Decimal {
	return c.YearlyProjection.Abs()
}

// FillHeadline substitutes the headline amount using the caller's formatter.
func (c *Continuation) FillHeadline(format func(decimal.Decimal) string) string {
	return strings.ReplaceAll(c.Headline, AmountPlaceholder, format(c.HeadlineAmount()))
}

// Continue projects recent completed months forward. It returns nil when
// fewer than MinWindow months with income precede the current period.
func Continue(in ContinuationInput) *Continuation {
	window := in.Window
	if window == 0 {
		window = DefaultWindow
	}
	if window < MinWindow {
		window = MinWindow
	}

	anchor := anchorKey(in.Current)
	months := analysisWindow(in.Trends, anchor, window)
	if len(months) < MinWindow {
		return nil
	}

	count := decimal.NewFromInt(int64(len(months)))
	var sumIncome, sumExpenses, sumSavings, sumNeeds, sumWants decimal.Decimal
	keys := make([]string, 0, len(months))
	for _, p := range months {
		sumIncome = sumIncome.Add(p.Income)
		sumExpenses = sumExpenses.Add(p.Expenses)
		sumSavings = sumSavings.Add(p.Savings)
		sumNeeds = sumNeeds.Add(p.Needs)
		sumWants = sumWants.Add(p.Wants)
		keys = append(keys, p.Period)
	}

	c := &Continuation{
		AnalyzedPeriods: keys,
		AverageIncome:   sumIncome.Div(count),
		AverageExpenses: sumExpenses.Div(count),
		AverageSavings:  sumSavings.Div(count),
		AverageNeeds:    sumNeeds.Div(count),
		AverageWants:    sumWants.Div(count),
	}
	c.YearlyProjection = c.AverageSavings.Mul(twelve)

	switch c.YearlyProjection.Sign() {
	case 1:
		c.Direction, c.Headline = DirectionGrowing, headlineGrowing
	case -1:
		c.Direction, c.Headline = DirectionShrinking, headlineShrinking
	default:
		c.Direction, c.Headline = DirectionFlat, headlineFlat
	}

	c.MonthsOfLivingExpenses = coverageMonths(c.YearlyProjection, c.AverageExpenses)
	c.EmergencyBuffer = ClassifyBuffer(c.MonthsOfLivingExpenses)
	c.Outlook = outlook(c, anchor)
	c.Coverage = categoryCoverage(in, keys, count, c.YearlyProjection)

	return c
}

// ClassifyBuffer grades months of living expenses covered.
func ClassifyBuffer(months decimal.Decimal) Buffer {
	switch {
	case months.GreaterThan(strongBufferMonths):
		return BufferStrong
	case months.GreaterThanOrEqual(healthyBufferMonths):
		return BufferHealthy
	default:
		return BufferBasic
	}
}

// anchorKey is the first month excluded from analysis. A year selector
// anchors at January of the following year.
func anchorKey(sel period.Selector) string {
	if sel.IsYear() {
		return period.AddMonths(sel.YearPrefix()+"-12", 1)
	}
	return string(sel)
}

// analysisWindow picks completed months with income before anchor,
// most recent first.
func analysisWindow(points []budget.TrendPoint, anchor string, size int) []budget.TrendPoint {
	var picked []budget.TrendPoint
	for i := len(points) - 1; i >= 0 && len(picked) < size; i-- {
		p := points[i]
		if p.Period >= anchor || p.Income.IsZero() {
			continue
		}
		picked = append(picked, p)
	}
	return picked
}

func outlook(c *Continuation, anchor string) []ProjectedMonth {
	months := make([]ProjectedMonth, 0, outlookMonths)
	cumulative := decimal.Zero
	for i := 0; i < outlookMonths; i++ {
		cumulative = cumulative.Add(c.AverageSavings)
		months = append(months, ProjectedMonth{
			Period:            period.AddMonths(anchor, i),
			Income:            c.AverageIncome,
			Expenses:          c.AverageExpenses,
			Savings:           c.AverageSavings,
			CumulativeSavings: cumulative,
		})
	}
	return months
}

func categoryCoverage(in ContinuationInput, keys []string, count, yearly decimal.Decimal) []CategoryCoverage {
	if len(in.CoverageCategories) == 0 {
		return nil
	}

	inWindow := make(map[string]bool, len(keys))
	for _, k := range keys {
		inWindow[k] = true
	}

	var out []CategoryCoverage
	for _, id := range in.CoverageCategories {
		cat, ok := in.Directory.Get(id)
		if !ok {
			continue
		}
		spend := decimal.Zero
		for _, e := range in.Expenses {
			if !inWindow[e.Period] {
				continue
			}
			if e.CategoryID == id || e.SubcategoryID == id {
				spend = spend.Add(e.Amount)
			}
		}
		avg := spend.Div(count)
		out = append(out, CategoryCoverage{
			CategoryID:   cat.ID,
			Name:         cat.Name,
			AverageSpend: avg,
			Months:       coverageMonths(yearly, avg),
		})
	}

	return out
}

// coverageMonths is yearly / monthlySpend, 0 if either side is not positive.
func coverageMonths(yearly, monthlySpend decimal.Decimal) decimal.Decimal {
	if !yearly.IsPositive() || !monthlySpend.IsPositive() {
		return decimal.Zero
	}
	return yearly.Div(monthlySpend)
}
