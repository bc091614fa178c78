// ABOUTME: CLI command for setting today's step total.
// ABOUTME: Upserts one Steps record per (user, day).
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/coach"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Set today's step total",
	Long: `Overwrite today's step count. Unlike 'coach add Steps', which
appends a sample, this keeps exactly one running total per day. Calling
it again today replaces the earlier value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := strconv.Atoi(args[0])
		if err != nil || steps < 0 {
			return fmt.Errorf("invalid step count: %s", args[0])
		}

		m, err := coach.SetDailySteps(st, currentUser(), steps)
		if err != nil {
			return fmt.Errorf("failed to set steps: %w", err)
		}

		color.Green("✓ Steps for %s set to %d", m.Day, steps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}
