package category

import "github.com/Veraticus/the-budget-must-balance/internal/model"

// Bucket palette used when a category has no colour of its own.
const (
	ColorNeeds    = "#F59E0B" // amber
	ColorWants    = "#8B5CF6" // purple
	ColorSavings  = "#3B82F6" // blue
	ColorFallback = "#9CA3AF" // grey
)

// DefaultColor returns the palette colour for bucket.
func DefaultColor(bucket model.Bucket) string {
	switch bucket {
	case model.BucketNeeds:
		return ColorNeeds
	case model.BucketWants:
		return ColorWants
	case model.BucketSavings:
		return ColorSavings
	default:
		return ColorFallback
	}
}

// Defaults returns the built-in categories new stores start with. IDs are
// stable across releases; the migration pipeline relies on them.
func Defaults() []model.Category {
	return []model.Category{
		{ID: "housing", Name: "Housing", Icon: "🏠", Bucket: model.BucketNeeds},
		{ID: "utilities", Name: "Utilities", Icon: "💡", Bucket: model.BucketNeeds},
		{ID: "groceries", Name: "Groceries", Icon: "🛒", Bucket: model.BucketNeeds},
		{ID: "transport", Name: "Transportation", Icon: "🚌", Bucket: model.BucketNeeds},
		{ID: "insurance", Name: "Insurance", Icon: "🛡️", Bucket: model.BucketNeeds},
		{ID: "health", Name: "Healthcare", Icon: "🩺", Bucket: model.BucketNeeds},
		{ID: "dining", Name: "Dining Out", Icon: "🍽️", Bucket: model.BucketWants},
		{ID: "entertainment", Name: "Entertainment", Icon: "🎬", Bucket: model.BucketWants},
		{ID: "shopping", Name: "Shopping", Icon: "🛍️", Bucket: model.BucketWants},
		{ID: "travel", Name: "Travel", Icon: "✈️", Bucket: model.BucketWants},
		{ID: "subscriptions", Name: "Subscriptions", Icon: "📺", Bucket: model.BucketWants},
		{ID: "emergency-fund", Name: "Emergency Fund", Icon: "🧯", Bucket: model.BucketSavings},
		{ID: "investments", Name: "Investments", Icon: "📈", Bucket: model.BucketSavings},
		{ID: "debt-payoff", Name: "Debt Payoff", Icon: "💳", Bucket: model.BucketSavings},
	}
}

// DefaultBucket returns the bucket a default category ID ships with.
func DefaultBucket(id string) (model.Bucket, bool) {
	for _, c := range Defaults() {
		if c.ID == id {
			return c.Bucket, true
		}
	}
	return "", false
}
