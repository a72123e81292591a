// Package category holds the category directory every calculator resolves
// expenses against.
package category

import (
	"fmt"
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
)

// Directory is an ordered lookup of categories by ID.
//
// Subcategories inherit their parent's bucket when they are added. Later
// changes to the parent's bucket are not propagated; a subcategory only
// changes bucket through an explicit SetBucket on its own ID.
type Directory struct {
	byID  map[string]int
	items []model.Category
}

// NewDirectory builds a directory from cats. Later duplicates of an ID are
// ignored so the first record wins.
func NewDirectory(cats []model.Category) *Directory {
	d := &Directory{byID: make(map[string]int, len(cats))}
	for _, c := range cats {
		if _, exists := d.byID[c.ID]; exists {
			continue
		}
		d.byID[c.ID] = len(d.items)
		d.items = append(d.items, c)
	}
	return d
}

// Get returns the category with id.
func (d *Directory) Get(id string) (model.Category, bool) {
	if d == nil {
		return model.Category{}, false
	}
	idx, ok := d.byID[id]
	if !ok {
		return model.Category{}, false
	}
	return d.items[idx], true
}

// All returns every category in insertion order.
func (d *Directory) All() []model.Category {
	if d == nil {
		return nil
	}
	out := make([]model.Category, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of categories.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Children returns the subcategories of parentID in insertion order.
func (d *Directory) Children(parentID string) []model.Category {
	var out []model.Category
	for _, c := range d.All() {
		if c.ParentID == parentID && parentID != "" {
			out = append(out, c)
		}
	}
	return out
}

// Add inserts a new category. Subcategories take their parent's bucket
// regardless of the bucket passed in.
func (d *Directory) Add(cat model.Category) (model.Category, error) {
	cat.ID = strings.TrimSpace(cat.ID)
	cat.Name = strings.TrimSpace(cat.Name)
	if cat.ID == "" || cat.Name == "" {
		return model.Category{}, fmt.Errorf("%w: id and name are required", common.ErrInvalidCategory)
	}
	if _, exists := d.byID[cat.ID]; exists {
		return model.Category{}, fmt.Errorf("%w: category %q", common.ErrDuplicateEntry, cat.ID)
	}

	if cat.IsSubcategory() {
		parent, ok := d.Get(cat.ParentID)
		if !ok {
			return model.Category{}, fmt.Errorf("%w: parent category %q", common.ErrNotFound, cat.ParentID)
		}
		if parent.IsSubcategory() {
			return model.Category{}, fmt.Errorf("%w: %q is already a subcategory", common.ErrInvalidCategory, parent.ID)
		}
		cat.Bucket = parent.Bucket
	}

	if !cat.Bucket.Valid() {
		return model.Category{}, fmt.Errorf("%w: %q", common.ErrInvalidBucket, cat.Bucket)
	}

	d.byID[cat.ID] = len(d.items)
	d.items = append(d.items, cat)
	return cat, nil
}

// SetBucket changes the bucket of one category. Its subcategories keep
// their current bucket.
func (d *Directory) SetBucket(id string, bucket model.Bucket) error {
	if !bucket.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidBucket, bucket)
	}
	idx, ok := d.byID[id]
	if !ok {
		return fmt.Errorf("%w: category %q", common.ErrNotFound, id)
	}
	d.items[idx].Bucket = bucket
	return nil
}

// Rename changes the display name of a category.
func (d *Directory) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", common.ErrInvalidCategory)
	}
	idx, ok := d.byID[id]
	if !ok {
		return fmt.Errorf("%w: category %q", common.ErrNotFound, id)
	}
	d.items[idx].Name = name
	return nil
}

// BucketFor resolves the bucket an expense should be stamped with: its
// subcategory's when present and known, else its category's.
func (d *Directory) BucketFor(e model.Expense) (model.Bucket, bool) {
	if e.SubcategoryID != "" {
		if sub, ok := d.Get(e.SubcategoryID); ok {
			return sub.Bucket, true
		}
	}
	cat, ok := d.Get(e.CategoryID)
	if !ok {
		return "", false
	}
	return cat.Bucket, true
}

// Restamp returns a copy of expenses with each bucket snapshot refreshed
// from the directory. Expenses whose category is unknown keep their stamp.
func (d *Directory) Restamp(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	for i, e := range expenses {
		if bucket, ok := d.BucketFor(e); ok {
			e.Bucket = bucket
		}
		out[i] = e
	}
	return out
}
