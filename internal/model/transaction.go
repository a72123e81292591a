package model

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is money coming into the household.
type Income struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Period      string          `json:"period"` // YYYY-MM, derived from Date at write time
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// Expense is money leaving the household.
//
// Bucket is a point-in-time snapshot of the referenced category's bucket,
// stamped when the expense is written or recategorized. It is not a live
// join: editing a category's bucket later does not rewrite history unless
// the caller re-stamps explicitly.
type Expense struct {
	Date          time.Time       `json:"date"`
	ID            string          `json:"id"`
	Period        string          `json:"period"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId,omitempty"`
	Bucket        Bucket          `json:"bucket"`
	Amount        decimal.Decimal `json:"amount"`
}

// NewIncome creates an income record with a fresh ID and period key.
func NewIncome(amount decimal.Decimal, date time.Time, description string) Income {
	return Income{
		ID:          uuid.NewString(),
		Amount:      amount,
		Date:        date,
		Period:      period.Key(date),
		Description: description,
	}
}

// NewExpense creates an expense record against cat, optionally narrowed to
// a subcategory, stamping the bucket from the most specific category.
func NewExpense(amount decimal.Decimal, date time.Time, description string, cat Category, sub *Category) Expense {
	e := Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Date:        date,
		Period:      period.Key(date),
		Description: description,
	}
	return e.Recategorize(cat, sub)
}

// Reschedule returns a copy of the income moved to date.
func (i Income) Reschedule(date time.Time) Income {
	i.Date = date
	i.Period = period.Key(date)
	return i
}

// Validate checks the record at the boundary.
func (i Income) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: income missing ID", common.ErrInvalidRecord)
	}
	return validateAmountAndDate(i.ID, i.Amount, i.Date)
}

// Reschedule returns a copy of the expense moved to date.
func (e Expense) Reschedule(date time.Time) Expense {
	e.Date = date
	e.Period = period.Key(date)
	return e
}

// Recategorize returns a copy pointing at cat (and optional sub) with the
// bucket re-stamped.
func (e Expense) Recategorize(cat Category, sub *Category) Expense {
	e.CategoryID = cat.ID
	e.SubcategoryID = ""
	e.Bucket = cat.Bucket
	if sub != nil {
		e.SubcategoryID = sub.ID
		e.Bucket = sub.Bucket
	}
	return e
}

// GroupKey is the category an expense is reported under: the subcategory
// when set, otherwise the category.
func (e Expense) GroupKey() string {
	if e.SubcategoryID != "" {
		return e.SubcategoryID
	}
	return e.CategoryID
}

// Validate checks the record at the boundary.
func (e Expense) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: expense missing ID", common.ErrInvalidRecord)
	}
	if e.CategoryID == "" {
		return fmt.Errorf("%w: expense %s has no category", common.ErrInvalidCategory, e.ID)
	}
	return validateAmountAndDate(e.ID, e.Amount, e.Date)
}

func validateAmountAndDate(id string, amount decimal.Decimal, date time.Time) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s has negative amount %s", common.ErrInvalidAmount, id, amount)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: %s has no date", common.ErrInvalidDate, id)
	}
	return nil
}
