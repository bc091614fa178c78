// ABOUTME: CLI commands for showing, generating, and transitioning today's plan.
// ABOUTME: plan (show), plan generate, plan start, plan complete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/behavior"
	"github.com/harperreed/coach/internal/coach"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Show today's plan, generating one if needed",
	Long: `Show today's workout plan. If no plan exists yet today, one is
generated from your current adherence and readiness scores.

A plan has three items, always in this order:

  Workout    the main session; intensity and duration adapt to your scores
  Habit      a small daily habit (hydration, macros)
  Recovery   stretching, mobility, or sleep hygiene

EXAMPLES:

  coach plan            # Show (or generate) today's plan
  coach plan generate   # Force regeneration from current scores
  coach plan start      # Mark today's plan In Progress
  coach plan complete   # Mark today's plan Completed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := currentUser()

		plan, err := coach.PlanForDate(st, userID, models.Today())
		if err != nil {
			return err
		}
		if plan == nil {
			user, err := coach.EnsureUser(st, userID, cfg.GetUserName())
			if err != nil {
				return err
			}
			plan, err = coach.GeneratePlan(user, behavior.NewScorer(st), st)
			if err != nil {
				return fmt.Errorf("failed to generate plan: %w", err)
			}
		}

		printPlan(plan)
		return nil
	},
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate today's plan from current scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := coach.EnsureUser(st, currentUser(), cfg.GetUserName())
		if err != nil {
			return err
		}
		plan, err := coach.GeneratePlan(user, behavior.NewScorer(st), st)
		if err != nil {
			return fmt.Errorf("failed to generate plan: %w", err)
		}

		color.Green("✓ Plan for %s", plan.Date)
		printPlan(plan)
		return nil
	},
}

var planStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Mark today's plan In Progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := coach.StartPlan(st, currentUser()); err != nil {
			return err
		}
		color.Green("✓ Plan started")
		return nil
	},
}

var planCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark today's plan Completed",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := coach.CompletePlan(st, currentUser()); err != nil {
			return err
		}
		color.Green("✓ Plan completed")
		return nil
	},
}

func printPlan(plan *models.Plan) {
	faint := color.New(color.Faint)
	fmt.Printf("%s  %s\n", plan.Date, statusColor(plan.Status))
	for _, item := range plan.Items {
		fmt.Printf("  %s %s %3dm  %s\n",
			padRight(string(item.Type), 9),
			padRight(string(item.Intensity), 9),
			item.DurationMinutes,
			faint.Sprint(item.Notes))
	}
}

func statusColor(status models.PlanStatus) string {
	switch status {
	case models.StatusCompleted:
		return color.GreenString(string(status))
	case models.StatusInProgress:
		return color.YellowString(string(status))
	default:
		return string(status)
	}
}

func init() {
	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planStartCmd)
	planCmd.AddCommand(planCompleteCmd)
	rootCmd.AddCommand(planCmd)
}
