package insights

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/budget"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
)

// producers run in this order; order does not affect ranking.
var producers = []func(*report) []candidate{
	outcome,
	variances,
	drivers,
	savingsHealth,
	trend,
}

func outcome(r *report) []candidate {
	spent := r.summary.TotalExpenses
	diff := r.summary.TotalIncome.Sub(spent)

	var text string
	switch diff.Sign() {
	case 1:
		text = fmt.Sprintf("Total spending of %s was %s below your income.", r.money(spent), r.money(diff))
	case -1:
		text = fmt.Sprintf("Total spending of %s was %s above your income.", r.money(spent), r.money(diff.Abs()))
	default:
		text = fmt.Sprintf("Total spending of %s matched your income.", r.money(spent))
	}

	return []candidate{{priority: priorityOutcome, kind: kindOutcome, text: text, magnitude: diff.Abs()}}
}

var variancePriority = map[model.Bucket]int{
	model.BucketNeeds:   priorityNeedsVariance,
	model.BucketWants:   priorityWantsVariance,
	model.BucketSavings: prioritySavingsVariance,
}

func variances(r *report) []candidate {
	var out []candidate
	for _, bucket := range model.Buckets {
		recommended := r.summary.Recommended.Get(bucket)
		diff := r.summary.Actual.Get(bucket).Sub(recommended)

		threshold := decimal.Max(recommended.Mul(varianceTolerance), r.floor)
		if diff.Abs().LessThanOrEqual(threshold) {
			continue
		}

		dir := directionUnder
		if diff.IsPositive() {
			dir = directionOver
		}

		out = append(out, candidate{
			priority:  variancePriority[bucket],
			kind:      kindVariance,
			text:      varianceText(bucket, dir, r.money(diff.Abs())),
			magnitude: diff.Abs(),
			bucket:    bucket,
			direction: dir,
		})
	}
	return out
}

func varianceText(bucket model.Bucket, dir direction, amount string) string {
	if bucket == model.BucketSavings {
		if dir == directionOver {
			return fmt.Sprintf("Savings exceeded plan by %s.", amount)
		}
		return fmt.Sprintf("Saved %s less than target.", amount)
	}

	word := "less"
	if dir == directionOver {
		word = "more"
	}
	return fmt.Sprintf("%s spending was %s %s than planned.", bucket.Title(), amount, word)
}

func drivers(r *report) []candidate {
	total := r.summary.TotalExpenses
	if !total.IsPositive() || len(r.slices) == 0 {
		return nil
	}

	picked := r.slices[:1]
	share := picked[0].Amount.Div(total)
	if share.LessThan(half) {
		if len(r.slices) < 2 {
			return nil
		}
		picked = r.slices[:2]
		share = share.Add(picked[1].Amount.Div(total))
		if share.LessThan(half) {
			return nil
		}
	}

	names := make([]string, len(picked))
	for i, s := range picked {
		names[i] = s.Name
	}

	return []candidate{{
		priority:  priorityDrivers,
		kind:      kindDrivers,
		text:      fmt.Sprintf("%s made up %s%% of total spending.", strings.Join(names, " and "), share.Mul(hundred).Round(0).String()),
		magnitude: share,
	}}
}

func savingsHealth(r *report) []candidate {
	n := len(r.history)
	if n < 2 {
		return nil
	}

	prev := math.Round(r.history[n-2].SavingsRate())
	cur := math.Round(r.history[n-1].SavingsRate())
	delta := cur - prev
	if math.Abs(delta) < 1 {
		return nil
	}

	verb := "fell"
	if delta > 0 {
		verb = "increased"
	}

	return []candidate{{
		priority:  prioritySavingsHealth,
		kind:      kindSavingsHealth,
		text:      fmt.Sprintf("Savings %s from %.0f%% to %.0f%%.", verb, prev, cur),
		magnitude: decimal.NewFromFloat(math.Abs(delta)),
	}}
}

const trendPoints = 3

func trend(r *report) []candidate {
	n := len(r.history)
	if n < trendPoints {
		return nil
	}
	window := r.history[n-trendPoints:]

	var text string
	switch {
	case monotonic(window, needs, rising):
		text = fmt.Sprintf("Needs spending has risen for %d consecutive %s.", trendPoints, r.unit)
	case monotonic(window, wants, rising):
		text = fmt.Sprintf("Wants spending has risen for %d consecutive %s.", trendPoints, r.unit)
	case monotonic(window, netSavings, falling):
		text = fmt.Sprintf("Savings have fallen for %d consecutive %s.", trendPoints, r.unit)
	default:
		return nil
	}

	return []candidate{{priority: priorityTrend, kind: kindTrend, text: text}}
}

func needs(p budget.TrendPoint) decimal.Decimal      { return p.Needs }
func wants(p budget.TrendPoint) decimal.Decimal      { return p.Wants }
func netSavings(p budget.TrendPoint) decimal.Decimal { return p.Savings }

func rising(a, b decimal.Decimal) bool  { return b.GreaterThan(a) }
func falling(a, b decimal.Decimal) bool { return b.LessThan(a) }

func monotonic(points []budget.TrendPoint, field func(budget.TrendPoint) decimal.Decimal, step func(a, b decimal.Decimal) bool) bool {
	for i := 1; i < len(points); i++ {
		if !step(field(points[i-1]), field(points[i])) {
			return false
		}
	}
	return true
}

// reconciliation pairs an overspent and an underspent spending bucket among
// the variances that survived selection.
func reconciliation(survivors []candidate) []candidate {
	var over, under *candidate
	for i := range survivors {
		c := &survivors[i]
		if c.kind != kindVariance || c.bucket == model.BucketSavings {
			continue
		}
		switch {
		case c.direction == directionOver && (over == nil || c.magnitude.GreaterThan(over.magnitude)):
			over = c
		case c.direction == directionUnder && (under == nil || c.magnitude.GreaterThan(under.magnitude)):
			under = c
		}
	}
	if over == nil || under == nil {
		return nil
	}

	return []candidate{{
		priority: priorityReconciliation,
		kind:     kindReconciliation,
		text:     fmt.Sprintf("Lower %s spending offset some of the %s overspend.", under.bucket, over.bucket),
	}}
}
