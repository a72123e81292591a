// Package storage persists the budget store as a JSON document in SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateStore checks every transaction in a decoded store. Categories are
// left to the migration pipeline, which repairs missing buckets.
func validateStore(store model.Store) error {
	seen := make(map[string]bool, len(store.Incomes)+len(store.Expenses))

	for i, inc := range store.Incomes {
		if err := inc.Validate(); err != nil {
			return fmt.Errorf("income at index %d: %w", i, err)
		}
		if seen[inc.ID] {
			return fmt.Errorf("income at index %d: %w: id %s", i, common.ErrDuplicateEntry, inc.ID)
		}
		seen[inc.ID] = true
	}

	for i, exp := range store.Expenses {
		if err := exp.Validate(); err != nil {
			return fmt.Errorf("expense at index %d: %w", i, err)
		}
		if seen[exp.ID] {
			return fmt.Errorf("expense at index %d: %w: id %s", i, common.ErrDuplicateEntry, exp.ID)
		}
		seen[exp.ID] = true
	}

	return nil
}
