// ABOUTME: CLI command for listing sensor samples.
// ABOUTME: Most recent first, with an optional limit.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/coach"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent sensor samples",
	Long: `List recent sensor samples, most recent first.

OUTPUT FORMAT:

  Each line shows: TIMESTAMP  TYPE  VALUE  UNIT

EXAMPLES:

  coach list          # Show last 50 samples
  coach list -n 10    # Show last 10 samples`,
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := coach.RecentMetrics(st, currentUser(), listLimit)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}

		if len(metrics) == 0 {
			fmt.Println("No samples found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range metrics {
			value := "?"
			if v, ok := m.Value.(float64); ok {
				value = fmt.Sprintf("%.0f", v)
			}
			fmt.Printf("%s %s %6s %s\n",
				faint.Sprint(m.RecordedAt.Format("2006-01-02 15:04")),
				padRight(string(m.MetricType), 12),
				value,
				faint.Sprint(models.MetricUnits[m.MetricType]))
		}
		return nil
	},
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "max samples to show")
	rootCmd.AddCommand(listCmd)
}
