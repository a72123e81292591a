package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/budget"
	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/Veraticus/the-budget-must-balance/internal/projection"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func goalCmd() *cobra.Command {
	var (
		name     string
		target   string
		starting string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Estimate when a savings goal will be reached",
		Long: `Project how long it takes to reach a savings target at your average
monthly surplus. The month in progress is left out of the average.`,
		Args: cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			goal := model.Goal{ID: uuid.NewString(), Name: name}

			var err error
			if goal.Target, err = parseAmount(target, "target"); err != nil {
				return err
			}
			if starting != "" {
				if goal.Starting, err = parseAmount(starting, "starting"); err != nil {
					return err
				}
			}

			now := time.Now()
			average := projection.AverageMonthlyCashBalance(s.store.Incomes, s.store.Expenses, period.Key(now))
			timeline := projection.GoalTimeline(goal.Target, goal.Starting, average, now)

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTimeline(goal, timeline, s.currency()))

			if save {
				s.store.Goals = append(s.store.Goals, goal)
				if err := s.save(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Goal saved"))
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name")
	cmd.Flags().StringVar(&target, "target", "", "amount to reach")
	cmd.Flags().StringVar(&starting, "starting", "", "amount already saved")
	cmd.Flags().BoolVar(&save, "save", false, "remember this goal")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func outlookCmd() *cobra.Command {
	var (
		categories []string
		window     int
	)

	cmd := &cobra.Command{
		Use:   "outlook",
		Short: "Project recent months forward: what happens if this continues",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			sel, err := s.selector(cmd, time.Now())
			if err != nil {
				return err
			}
			if window == 0 {
				window = s.settings.ProjectionWindow
			}

			c := projection.Continue(projection.ContinuationInput{
				Directory:          s.dir,
				Current:            sel,
				Trends:             budget.MonthlyTrends(s.store.Incomes, s.store.Expenses),
				Expenses:           s.store.Expenses,
				CoverageCategories: categories,
				Window:             window,
			})

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderContinuation(c, s.currency()))
			return nil
		}),
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "category IDs to show coverage for (repeatable)")
	cmd.Flags().IntVar(&window, "window", 0, "months to average over (default from projection.window)")

	return cmd
}

func parseAmount(raw, field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, common.NewUserError(fmt.Sprintf("The %s must be a number like 1200 or 85.50", field), err)
	}
	if amount.IsNegative() {
		return decimal.Zero, common.NewUserError(fmt.Sprintf("The %s cannot be negative", field), common.ErrInvalidAmount)
	}
	return amount, nil
}
