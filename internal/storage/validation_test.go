package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/shopspring/decimal"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		paramName string
		wantErr   bool
	}{
		{
			name:      "valid string",
			str:       "test",
			paramName: "param",
			wantErr:   false,
		},
		{
			name:      "empty string",
			str:       "",
			paramName: "param",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			str:       "   ",
			paramName: "param",
			wantErr:   true,
		},
		{
			name:      "string with spaces",
			str:       "  test  ",
			paramName: "param",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, tt.paramName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.paramName) {
				t.Errorf("validateString() error should contain param name %s, got %v", tt.paramName, err)
			}
		})
	}
}

func TestValidateStore(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	good := model.Income{ID: "i1", Date: date, Period: "2024-02", Amount: decimal.NewFromInt(10)}
	spend := model.Expense{ID: "e1", Date: date, Period: "2024-02", CategoryID: "housing", Amount: decimal.NewFromInt(5)}

	tests := []struct {
		wantErr error
		name    string
		store   model.Store
	}{
		{
			name:  "empty store",
			store: model.Store{},
		},
		{
			name:  "valid records",
			store: model.Store{Incomes: []model.Income{good}, Expenses: []model.Expense{spend}},
		},
		{
			name:    "negative income",
			store:   model.Store{Incomes: []model.Income{{ID: "i2", Date: date, Amount: decimal.NewFromInt(-1)}}},
			wantErr: common.ErrInvalidAmount,
		},
		{
			name:    "expense without category",
			store:   model.Store{Expenses: []model.Expense{{ID: "e2", Date: date, Amount: decimal.NewFromInt(1)}}},
			wantErr: common.ErrInvalidCategory,
		},
		{
			name:    "expense without date",
			store:   model.Store{Expenses: []model.Expense{{ID: "e3", CategoryID: "x", Amount: decimal.NewFromInt(1)}}},
			wantErr: common.ErrInvalidDate,
		},
		{
			name:    "duplicate id",
			store:   model.Store{Incomes: []model.Income{good, good}},
			wantErr: common.ErrDuplicateEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStore(tt.store)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validateStore() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateStore() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
