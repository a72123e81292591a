package model

// Bucket is the 50/30/20 classification of a category or expense.
type Bucket string

// Budget buckets.
const (
	BucketNeeds   Bucket = "needs"
	BucketWants   Bucket = "wants"
	BucketSavings Bucket = "savings"
)

// Buckets lists every bucket in priority order.
var Buckets = []Bucket{BucketNeeds, BucketWants, BucketSavings}

// Valid reports whether b is one of the known buckets.
func (b Bucket) Valid() bool {
	switch b {
	case BucketNeeds, BucketWants, BucketSavings:
		return true
	default:
		return false
	}
}

// Title returns the display name of the bucket.
func (b Bucket) Title() string {
	switch b {
	case BucketNeeds:
		return "Needs"
	case BucketWants:
		return "Wants"
	case BucketSavings:
		return "Savings"
	default:
		return "Uncategorized"
	}
}

// Category represents a spending category. A category with a ParentID is a
// subcategory; the tree never goes deeper than two levels.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	Bucket   Bucket `json:"bucket"`
	ParentID string `json:"parentId,omitempty"`
}

// IsSubcategory reports whether the category hangs off a parent.
func (c Category) IsSubcategory() bool {
	return c.ParentID != ""
}
