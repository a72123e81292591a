// Package projection extrapolates trend history into goal timelines and
// "if this continues" outlooks.
package projection

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/budget"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/shopspring/decimal"
)

// NotAchievable is the Months value of a goal that cannot be reached.
const NotAchievable = -1

// Timeline is the projected path to a savings goal.
type Timeline struct {
	CompletionDate *time.Time `json:"completionDate,omitempty"`
	Message        string     `json:"message"`
	Months         int        `json:"months"`
	IsAchievable   bool       `json:"isAchievable"`
}

// AverageMonthlyCashBalance is the mean monthly cash left over after both
// spending and savings-bucket transfers. The savings contribution is summed
// straight from the raw expense list for each month. When exclude is set,
// that month (usually the one still in progress) is ignored.
func AverageMonthlyCashBalance(incomes []model.Income, expenses []model.Expense, exclude string) decimal.Decimal {
	contributions := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.Bucket == model.BucketSavings {
			contributions[e.Period] = contributions[e.Period].Add(e.Amount)
		}
	}

	total := decimal.Zero
	count := 0
	for _, p := range budget.MonthlyTrends(incomes, expenses) {
		if exclude != "" && p.Period == exclude {
			continue
		}
		total = total.Add(p.Income.Sub(p.Expenses).Sub(contributions[p.Period]))
		count++
	}

	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// GoalTimeline projects how many months it takes to grow starting into goal
// at average per month. today anchors the completion date.
func GoalTimeline(goal, starting, average decimal.Decimal, today time.Time) Timeline {
	if starting.GreaterThanOrEqual(goal) {
		return Timeline{
			Months:       0,
			IsAchievable: true,
			Message:      "You have already reached this goal.",
		}
	}

	if !average.IsPositive() {
		return Timeline{
			Months:       NotAchievable,
			IsAchievable: false,
			Message:      "At your current pace you are not saving toward this goal. Increase your monthly surplus to make progress.",
		}
	}

	months := int(goal.Sub(starting).Div(average).Ceil().IntPart())
	completion := period.AddCalendarMonths(today, months)

	return Timeline{
		Months:         months,
		IsAchievable:   true,
		CompletionDate: &completion,
		Message:        fmt.Sprintf("At your current pace you will reach this goal in %s.", pluralMonths(months)),
	}
}

func pluralMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
