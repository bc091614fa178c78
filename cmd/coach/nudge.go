// ABOUTME: CLI command for generating a step-trend nudge.
// ABOUTME: Averages recent step samples and prints a motivational message.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/coach"
	"github.com/spf13/cobra"
)

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Generate a nudge from your recent step trend",
	Long: `Generate a motivational nudge from your recent step samples.

The six most recent step samples are averaged and the nudge adapts to
where that average falls: a quick-win suggestion when steps are low, a
goal reminder in the middle, and a stretch-break tip when you're moving
plenty. The nudge is saved to your recommendation history.

EXAMPLES:

  coach nudge           # Generate and save a nudge
  coach recs            # Review past nudges`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := coach.GenerateNudge(currentUser(), st)
		if err != nil {
			return fmt.Errorf("failed to generate nudge: %w", err)
		}

		fmt.Println(color.CyanString(rec.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
}
