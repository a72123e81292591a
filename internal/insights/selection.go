package insights

import (
	"sort"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
)

type kind string

const (
	kindOutcome        kind = "outcome"
	kindVariance       kind = "variance"
	kindDrivers        kind = "drivers"
	kindSavingsHealth  kind = "savings-health"
	kindTrend          kind = "trend"
	kindReconciliation kind = "reconciliation"
)

// Lower is more important.
const (
	priorityOutcome = iota + 1
	priorityNeedsVariance
	priorityWantsVariance
	prioritySavingsVariance
	priorityDrivers
	prioritySavingsHealth
	priorityTrend
	priorityReconciliation
)

type direction string

const (
	directionOver  direction = "over"
	directionUnder direction = "under"
)

// candidate is one potential bullet. bucket and direction are only set on
// variances.
type candidate struct {
	magnitude decimal.Decimal
	kind      kind
	text      string
	bucket    model.Bucket
	direction direction
	priority  int
}

func selectCandidates(all []candidate) []candidate {
	var vars, rest []candidate
	for _, c := range all {
		if c.kind == kindVariance {
			vars = append(vars, c)
		} else {
			rest = append(rest, c)
		}
	}

	sort.SliceStable(vars, func(i, j int) bool {
		if !vars[i].magnitude.Equal(vars[j].magnitude) {
			return vars[i].magnitude.GreaterThan(vars[j].magnitude)
		}
		return vars[i].priority < vars[j].priority
	})
	if len(vars) > maxVariances {
		vars = vars[:maxVariances]
	}

	if hasKind(rest, kindTrend) && len(vars) > 0 {
		drop := 0
		for i := range vars {
			if vars[i].priority > vars[drop].priority {
				drop = i
			}
		}
		vars = append(vars[:drop], vars[drop+1:]...)
	}

	out := append(rest, vars...)
	out = append(out, reconciliation(vars)...)

	sort.SliceStable(out, func(i, j int) bool { return out[i].priority < out[j].priority })
	if len(out) > MaxBullets {
		out = out[:MaxBullets]
	}
	return out
}

func hasKind(cs []candidate, k kind) bool {
	for _, c := range cs {
		if c.kind == k {
			return true
		}
	}
	return false
}

func texts(cs []candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.text
	}
	return out
}
