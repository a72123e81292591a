package budget

import (
	"sort"

	"github.com/Veraticus/the-budget-must-balance/internal/category"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/shopspring/decimal"
)

// CategorySlice is one row of a category breakdown.
type CategorySlice struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon,omitempty"`
	Bucket     model.Bucket    `json:"bucket"`
	Color      string          `json:"color"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// Breakdown groups the period's expenses by category, largest first.
//
// Expenses are grouped under their subcategory when they have one, so a
// parent never double-counts its children. Rows are split by the bucket
// stamped on each expense, the same snapshot Summarize reads, so a category
// moved to another bucket without a restamp shows up once per bucket. Groups
// whose category cannot be resolved are dropped from both the rows and the
// total. A period without resolvable expenses yields nil.
func Breakdown(expenses []model.Expense, dir *category.Directory, sel period.Selector) []CategorySlice {
	type group struct {
		categoryID string
		bucket     model.Bucket
	}
	totals := make(map[group]decimal.Decimal)
	var order []group

	for _, exp := range expenses {
		if !sel.Matches(exp.Period) {
			continue
		}
		cat, ok := dir.Get(exp.GroupKey())
		if !ok {
			continue
		}
		bucket := exp.Bucket
		if bucket == "" {
			bucket = cat.Bucket
		}
		key := group{categoryID: cat.ID, bucket: bucket}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(exp.Amount)
	}

	if len(order) == 0 {
		return nil
	}

	total := decimal.Zero
	for _, key := range order {
		total = total.Add(totals[key])
	}

	slices := make([]CategorySlice, 0, len(order))
	for _, key := range order {
		cat, _ := dir.Get(key.categoryID)
		color := cat.Color
		if color == "" {
			color = category.DefaultColor(key.bucket)
		}
		slices = append(slices, CategorySlice{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Icon:       cat.Icon,
			Bucket:     key.bucket,
			Color:      color,
			Amount:     totals[key],
			Percentage: percentOf(totals[key], total),
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		if c := slices[i].Amount.Cmp(slices[j].Amount); c != 0 {
			return c > 0
		}
		if slices[i].Name != slices[j].Name {
			return slices[i].Name < slices[j].Name
		}
		if slices[i].CategoryID != slices[j].CategoryID {
			return slices[i].CategoryID < slices[j].CategoryID
		}
		return slices[i].Bucket < slices[j].Bucket
	})

	return slices
}

// SpendingSlices filters a breakdown down to needs and wants rows. Their
// amounts add up to Summary.TotalExpenses for the same period.
func SpendingSlices(slices []CategorySlice) []CategorySlice {
	var out []CategorySlice
	for _, s := range slices {
		if s.Bucket == model.BucketSavings {
			continue
		}
		out = append(out, s)
	}
	return out
}
