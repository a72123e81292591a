// Package migration upgrades a persisted store to the current schema.
//
// Steps run in version order, each owning the fields it touches and stamping
// the version when done. A default-category merge runs after the versioned
// steps on every load. A store from a newer release passes through untouched.
package migration

import (
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/category"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
)

// CurrentVersion is the store schema version this build writes.
const CurrentVersion = 4

// Step is one versioned store migration. Up reports whether it changed
// anything besides the version stamp.
type Step struct {
	Up          func(model.Store) (model.Store, bool)
	Description string
	Version     int
}

// Result describes what Migrate did.
type Result struct {
	Applied       []Step
	AddedDefaults []string
	FromVersion   int
	Changed       bool
	Future        bool
}

var steps = []Step{
	{
		Version:     1,
		Description: "Backfill category buckets",
		Up:          backfillBuckets,
	},
	{
		Version:     2,
		Description: "Rename legacy default categories",
		Up:          renameLegacyCategories,
	},
	{
		Version:     3,
		Description: "Add goals collection",
		Up: func(s model.Store) (model.Store, bool) {
			if s.Goals != nil {
				return s, false
			}
			s.Goals = []model.Goal{}
			return s, true
		},
	},
	{
		Version:     4,
		Description: "Backfill transaction period keys",
		Up:          backfillPeriods,
	},
}

// Steps returns the ordered migration list.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Pending lists the steps a store at version would still need.
func Pending(version int) []Step {
	var out []Step
	for _, step := range steps {
		if step.Version > version {
			out = append(out, step)
		}
	}
	return out
}

// Migrate upgrades a copy of store. It never modifies its argument and is
// idempotent: migrating an already migrated store reports no change.
func Migrate(store model.Store) (model.Store, Result) {
	res := Result{FromVersion: store.Version}
	out := store.Clone()

	if out.Version > CurrentVersion {
		res.Future = true
		return out, res
	}

	for _, step := range Pending(out.Version) {
		out, _ = step.Up(out)
		out.Version = step.Version
		res.Applied = append(res.Applied, step)
		res.Changed = true
	}

	out, res.AddedDefaults = mergeDefaults(out)
	if len(res.AddedDefaults) > 0 {
		res.Changed = true
	}

	return out, res
}

// mergeDefaults appends every default category whose ID is missing. Existing
// entries are never overwritten.
func mergeDefaults(s model.Store) (model.Store, []string) {
	have := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		have[c.ID] = true
	}

	var added []string
	for _, def := range category.Defaults() {
		if have[def.ID] {
			continue
		}
		s.Categories = append(s.Categories, def)
		added = append(added, def.ID)
	}
	return s, added
}

func backfillBuckets(s model.Store) (model.Store, bool) {
	s = s.Clone()
	changed := false

	byID := make(map[string]model.Category, len(s.Categories))
	for _, c := range s.Categories {
		byID[c.ID] = c
	}

	// Top-level categories first so children can inherit a repaired parent.
	for _, pass := range []bool{false, true} {
		for i, c := range s.Categories {
			if c.IsSubcategory() != pass || c.Bucket.Valid() {
				continue
			}
			c.Bucket = inferBucket(c, byID)
			s.Categories[i] = c
			byID[c.ID] = c
			changed = true
		}
	}

	dir := category.NewDirectory(s.Categories)
	for i, e := range s.Expenses {
		if e.Bucket != "" {
			continue
		}
		bucket, ok := dir.BucketFor(e)
		if !ok {
			continue
		}
		s.Expenses[i].Bucket = bucket
		changed = true
	}

	return s, changed
}

func inferBucket(c model.Category, byID map[string]model.Category) model.Bucket {
	if bucket, ok := category.DefaultBucket(c.ID); ok {
		return bucket
	}
	if parent, ok := byID[c.ParentID]; ok && parent.Bucket.Valid() {
		return parent.Bucket
	}
	return model.BucketWants
}

// legacyNames maps default category IDs to the names earlier releases
// shipped them with.
var legacyNames = map[string]struct{ old, current string }{
	"dining":         {old: "Restaurants", current: "Dining Out"},
	"transport":      {old: "Car", current: "Transportation"},
	"health":         {old: "Medical", current: "Healthcare"},
	"emergency-fund": {old: "Rainy Day", current: "Emergency Fund"},
}

func renameLegacyCategories(s model.Store) (model.Store, bool) {
	s = s.Clone()
	changed := false
	for i, c := range s.Categories {
		names, ok := legacyNames[c.ID]
		if !ok || !strings.EqualFold(strings.TrimSpace(c.Name), names.old) {
			continue
		}
		s.Categories[i].Name = names.current
		changed = true
	}
	return s, changed
}

func backfillPeriods(s model.Store) (model.Store, bool) {
	s = s.Clone()
	changed := false
	for i, inc := range s.Incomes {
		if inc.Period == "" && !inc.Date.IsZero() {
			s.Incomes[i].Period = period.Key(inc.Date)
			changed = true
		}
	}
	for i, e := range s.Expenses {
		if e.Period == "" && !e.Date.IsZero() {
			s.Expenses[i].Period = period.Key(e.Date)
			changed = true
		}
	}
	return s, changed
}
