// ABOUTME: CLI command for inspecting the scores behind plan generation.
// ABOUTME: Prints adherence, readiness, and the suggested next intensity.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/behavior"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show adherence, readiness, and suggested intensity",
	Long: `Show the behavior scores that drive plan generation.

  Adherence    fraction of your last 7 days of plans marked Completed.
               0.5 when you have no plans yet.
  Readiness    recovery signal in [0.1, 1.0] from heart rate and sleep
               score trends against your 14-day baseline.
  Next         the workout intensity those scores suggest, after
               hysteresis against your last plan.

EXAMPLES:

  coach score           # Show current scores`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := currentUser()
		scorer := behavior.NewScorer(st)

		adherence, err := scorer.AdherenceScore(userID, 0)
		if err != nil {
			return err
		}
		readiness, err := scorer.ReadinessScore(userID)
		if err != nil {
			return err
		}
		next, err := scorer.NextBestIntensity(userID)
		if err != nil {
			return err
		}

		fmt.Printf("Adherence  %.2f\n", adherence)
		fmt.Printf("Readiness  %.2f\n", readiness)
		fmt.Printf("Next       %s\n", color.CyanString(string(next)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
