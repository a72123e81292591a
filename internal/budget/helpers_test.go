package budget

import (
	"testing"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(key string, d int) time.Time {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		panic(err)
	}
	return t.AddDate(0, 0, d-1)
}

func income(key string, amount int64) model.Income {
	return model.NewIncome(decimal.NewFromInt(amount), day(key, 1), "salary")
}

func expense(key string, amount int64, cat model.Category) model.Expense {
	return model.NewExpense(decimal.NewFromInt(amount), day(key, 10), cat.Name, cat, nil)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

var (
	rent    = model.Category{ID: "housing", Name: "Housing", Bucket: model.BucketNeeds}
	food    = model.Category{ID: "groceries", Name: "Groceries", Bucket: model.BucketNeeds}
	fun     = model.Category{ID: "entertainment", Name: "Entertainment", Bucket: model.BucketWants}
	dining  = model.Category{ID: "dining", Name: "Dining Out", Bucket: model.BucketWants}
	savings = model.Category{ID: "investments", Name: "Investments", Bucket: model.BucketSavings}
)
