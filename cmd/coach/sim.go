// ABOUTME: CLI command for seeding simulated sensor data.
// ABOUTME: Useful for trying plan generation without a real device.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/sim"
	"github.com/spf13/cobra"
)

var (
	simRounds   int
	simInterval time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Seed simulated sensor data",
	Long: `Seed simulated HR, Steps, and SleepScore samples so scoring and
plan generation have a history to work with.

Each round writes one heart rate and one step sample; about a third of
rounds also write a sleep score. Timestamps are spread backwards from
now at the given interval.

EXAMPLES:

  coach sim                      # 10 rounds, 1 hour apart
  coach sim -r 48 -i 30m         # two days of half-hourly samples`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := sim.Run(st, currentUser(), simRounds, simInterval, nil)
		if err != nil {
			return err
		}

		color.Green("✓ Seeded %d samples", summary.Samples)
		for metricType, n := range summary.ByType {
			fmt.Printf("  %s: %d\n", metricType, n)
		}
		return nil
	},
}

func init() {
	simCmd.Flags().IntVarP(&simRounds, "rounds", "r", 10, "number of simulation rounds")
	simCmd.Flags().DurationVarP(&simInterval, "interval", "i", time.Hour, "spacing between rounds")
	rootCmd.AddCommand(simCmd)
}
