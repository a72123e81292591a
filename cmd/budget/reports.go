package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/budget"
	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/insights"
	"github.com/Veraticus/the-budget-must-balance/internal/period"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the 50/30/20 summary for a period",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			sel, err := s.selector(cmd, time.Now())
			if err != nil {
				return err
			}

			summary := budget.Summarize(s.store.Incomes, s.store.Expenses, sel)
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(summary, s.currency()))
			return nil
		}),
	}
}

func trendsCmd() *cobra.Command {
	var yearly bool

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show income, spending and savings over time",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			points := budget.MonthlyTrends(s.store.Incomes, s.store.Expenses)
			if yearly {
				points = budget.YearlyTrends(points)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTrends(points, s.currency()))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&yearly, "yearly", false, "aggregate by calendar year")
	return cmd
}

func breakdownCmd() *cobra.Command {
	var spendingOnly bool

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show spending by category",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			sel, err := s.selector(cmd, time.Now())
			if err != nil {
				return err
			}

			slices := budget.Breakdown(s.store.Expenses, s.dir, sel)
			if spendingOnly {
				slices = budget.SpendingSlices(slices)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle("Where the money went · "+sel.String()))
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBreakdown(slices, s.currency()))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&spendingOnly, "spending", false, "leave out savings categories")
	return cmd
}

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Summarise a period in a few sentences",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			sel, err := s.selector(cmd, time.Now())
			if err != nil {
				return err
			}

			bullets := insights.Generate(insights.Input{
				Directory: s.dir,
				Period:    sel,
				Currency:  s.currency(),
				Incomes:   s.store.Incomes,
				Expenses:  s.store.Expenses,
			})

			title := "This month"
			if sel.IsYear() {
				title = "This year"
			}
			if sel != period.Month(time.Now()) && sel != period.Year(time.Now().Year()) {
				title = sel.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle(title))
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBullets(bullets))
			return nil
		}),
	}
}
