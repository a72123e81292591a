package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/spf13/cobra"
)

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record income or an expense",
	}

	cmd.AddCommand(recordIncomeCmd())
	cmd.AddCommand(recordExpenseCmd())

	return cmd
}

func recordIncomeCmd() *cobra.Command {
	var date, description string

	cmd := &cobra.Command{
		Use:   "income <amount>",
		Short: "Record money coming in",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			amount, err := parseAmount(args[0], "amount")
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}

			inc := model.NewIncome(amount, when, description)
			if err := inc.Validate(); err != nil {
				return common.NewUserError("That income can't be recorded", err)
			}

			s.store.Incomes = append(s.store.Incomes, inc)
			if err := s.save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Recorded %s of income for %s",
				model.FormatMoney(amount, s.currency()), inc.Period)))
			return nil
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "date received, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what it was")

	return cmd
}

func recordExpenseCmd() *cobra.Command {
	var date, description, categoryID, subcategoryID string

	cmd := &cobra.Command{
		Use:   "expense <amount>",
		Short: "Record money going out",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			amount, err := parseAmount(args[0], "amount")
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}

			cat, ok := s.dir.Get(categoryID)
			if !ok || cat.IsSubcategory() {
				return common.NewUserError(fmt.Sprintf("No top-level category %q; see 'budget categories list'", categoryID), common.ErrInvalidCategory)
			}

			var sub *model.Category
			if subcategoryID != "" {
				found, ok := s.dir.Get(subcategoryID)
				if !ok || found.ParentID != cat.ID {
					return common.NewUserError(fmt.Sprintf("%q is not a subcategory of %q", subcategoryID, cat.ID), common.ErrInvalidCategory)
				}
				sub = &found
			}

			exp := model.NewExpense(amount, when, description, cat, sub)
			if err := exp.Validate(); err != nil {
				return common.NewUserError("That expense can't be recorded", err)
			}

			s.store.Expenses = append(s.store.Expenses, exp)
			if err := s.save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Recorded %s under %s (%s) for %s",
				model.FormatMoney(amount, s.currency()), cat.Name, exp.Bucket, exp.Period)))
			return nil
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "date spent, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what it was")
	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category ID")
	cmd.Flags().StringVar(&subcategoryID, "subcategory", "", "subcategory ID")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, common.NewUserError("Dates look like 2024-03-15", fmt.Errorf("%w: %w", common.ErrInvalidDate, err))
	}
	return t, nil
}
