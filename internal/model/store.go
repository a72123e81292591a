package model

import "github.com/shopspring/decimal"

// Goal is a savings target the user is working towards.
type Goal struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Starting decimal.Decimal `json:"starting"`
}

// Store is the whole persisted collection. Only the migration pipeline looks
// at Version; every other component treats the store as a bag of records.
type Store struct {
	Period              string     `json:"period"`
	Currency            string     `json:"currency"`
	Incomes             []Income   `json:"incomes"`
	Expenses            []Expense  `json:"expenses"`
	Categories          []Category `json:"categories"`
	Goals               []Goal     `json:"goals"`
	Version             int        `json:"version,omitempty"`
	OnboardingCompleted bool       `json:"onboardingCompleted"`
}

// Clone returns a copy whose slices can be mutated without touching s.
func (s Store) Clone() Store {
	out := s
	out.Incomes = cloneSlice(s.Incomes)
	out.Expenses = cloneSlice(s.Expenses)
	out.Categories = cloneSlice(s.Categories)
	out.Goals = cloneSlice(s.Goals)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
