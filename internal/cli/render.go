package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/budget"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/projection"
	"github.com/shopspring/decimal"
)

const barWidth = 20

// RenderSummary renders the 50/30/20 table for one period.
func RenderSummary(s budget.Summary, currency string) string {
	money := moneyFormatter(currency)

	if !s.HasTransactions() {
		return FormatTitle("Budget summary · "+s.Period.String()) + "\n" +
			SubtleStyle.Render("No transactions recorded for this period.")
	}

	t := newTable("Bucket", "Planned", "Actual", "Of income", "Status")
	for _, bucket := range model.Buckets {
		status := s.StatusFor(bucket)
		t.Row(
			BucketStyle(bucket).Render(bucket.Title()),
			money(s.Recommended.Get(bucket)),
			money(s.Actual.Get(bucket)),
			fmt.Sprintf("%.0f%%", percentage(s.Percentage, bucket)),
			StatusStyle(bucket, status).Render(string(status)),
		)
	}

	var b strings.Builder
	b.WriteString(FormatTitle("Budget summary · " + s.Period.String()))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Income       %s\n", money(s.TotalIncome))
	fmt.Fprintf(&b, "Spending     %s\n", money(s.TotalExpenses))
	fmt.Fprintf(&b, "Net savings  %s (%.0f%% of income)\n", signed(s.NetSavings, money), s.SavingsRate())
	fmt.Fprintf(&b, "Unallocated  %s", money(s.UnallocatedCash))
	if s.IsOverBudget {
		b.WriteString("\n\n")
		b.WriteString(FormatWarning("Spending is above income for this period."))
	}
	return b.String()
}

func percentage(p budget.BucketPercentages, bucket model.Bucket) float64 {
	switch bucket {
	case model.BucketNeeds:
		return p.Needs
	case model.BucketWants:
		return p.Wants
	case model.BucketSavings:
		return p.Savings
	default:
		return 0
	}
}

// RenderTrends renders one row per trend point.
func RenderTrends(points []budget.TrendPoint, currency string) string {
	if len(points) == 0 {
		return SubtleStyle.Render("No history yet.")
	}
	money := moneyFormatter(currency)

	t := newTable("Period", "Income", "Spending", "Needs", "Wants", "Saved", "Rate")
	for _, p := range points {
		t.Row(
			p.Period,
			money(p.Income),
			money(p.Expenses),
			money(p.Needs),
			money(p.Wants),
			signed(p.Savings, money),
			fmt.Sprintf("%.0f%%", p.SavingsRate()),
		)
	}

	return FormatTitle(ChartIcon+" Trends") + "\n" + t.Render()
}

// RenderBreakdown renders category rows with a share bar.
func RenderBreakdown(slices []budget.CategorySlice, currency string) string {
	if len(slices) == 0 {
		return SubtleStyle.Render("No spending to break down.")
	}
	money := moneyFormatter(currency)

	t := newTable("Category", "Bucket", "Amount", "Share", "")
	for _, s := range slices {
		name := s.Name
		if s.Icon != "" {
			name = s.Icon + " " + name
		}
		t.Row(
			name,
			BucketStyle(s.Bucket).Render(string(s.Bucket)),
			money(s.Amount),
			fmt.Sprintf("%.1f%%", s.Percentage),
			BucketStyle(s.Bucket).Render(bar(s.Percentage)),
		)
	}
	return t.Render()
}

func bar(pct float64) string {
	n := int(pct/100*barWidth + 0.5)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n)
}

// RenderBullets renders the narrative summary.
func RenderBullets(bullets []string) string {
	if len(bullets) == 0 {
		return SubtleStyle.Render("Nothing to report for this period.")
	}
	lines := make([]string, len(bullets))
	for i, text := range bullets {
		lines[i] = InfoStyle.Render(BulletIcon) + " " + text
	}
	return strings.Join(lines, "\n")
}

// RenderTimeline renders a goal projection.
func RenderTimeline(goal model.Goal, tl projection.Timeline, currency string) string {
	money := moneyFormatter(currency)
	name := goal.Name
	if name == "" {
		name = "Savings goal"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Target    %s\nStarting  %s\n\n", money(goal.Target), money(goal.Starting))

	switch {
	case !tl.IsAchievable:
		b.WriteString(FormatWarning(tl.Message))
	case tl.CompletionDate != nil:
		b.WriteString(FormatSuccess(tl.Message))
		fmt.Fprintf(&b, "\n%s", SubtleStyle.Render("Expected by "+tl.CompletionDate.Format("January 2, 2006")))
	default:
		b.WriteString(FormatSuccess(tl.Message))
	}

	return RenderBox(GoalIcon+" "+name, b.String())
}

// RenderContinuation renders the "if this continues" outlook.
func RenderContinuation(c *projection.Continuation, currency string) string {
	if c == nil {
		return FormatInfo(fmt.Sprintf("Not enough history yet: at least %d completed months with income are needed.", projection.MinWindow))
	}
	money := moneyFormatter(currency)

	headline := c.FillHeadline(money)
	switch c.Direction {
	case projection.DirectionGrowing:
		headline = SuccessStyle.Render(headline)
	case projection.DirectionShrinking:
		headline = ErrorStyle.Render(headline)
	}

	var b strings.Builder
	b.WriteString(headline)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Based on %d months: %s\n", len(c.AnalyzedPeriods), strings.Join(c.AnalyzedPeriods, ", "))
	fmt.Fprintf(&b, "Average income    %s\n", money(c.AverageIncome))
	fmt.Fprintf(&b, "Average spending  %s (needs %s, wants %s)\n", money(c.AverageExpenses), money(c.AverageNeeds), money(c.AverageWants))
	fmt.Fprintf(&b, "Average saved     %s\n", signed(c.AverageSavings, money))
	fmt.Fprintf(&b, "Emergency buffer  %s (%s months of spending)", c.EmergencyBuffer, c.MonthsOfLivingExpenses.StringFixed(1))

	if len(c.Coverage) > 0 {
		t := newTable("Category", "Avg / month", "Months covered")
		for _, cov := range c.Coverage {
			t.Row(cov.Name, money(cov.AverageSpend), cov.Months.StringFixed(1))
		}
		b.WriteString("\n\n")
		b.WriteString(t.Render())
	}

	return RenderBox(ChartIcon+" If this continues", b.String())
}

func moneyFormatter(currency string) func(decimal.Decimal) string {
	return func(d decimal.Decimal) string {
		return model.FormatMoney(d, currency)
	}
}

func signed(d decimal.Decimal, money func(decimal.Decimal) string) string {
	if d.IsPositive() {
		return "+" + money(d)
	}
	return money(d)
}
