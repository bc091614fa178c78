// ABOUTME: CLI command for adding sensor samples.
// ABOUTME: Validates the metric type and supports custom timestamps.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/coach"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var (
	addAt     string
	addDevice string
)

var addCmd = &cobra.Command{
	Use:     "add <type> <value>",
	Aliases: []string{"a"},
	Short:   "Add a sensor sample",
	Long: `Add a sensor sample to the store.

Examples:
  coach add HR 72
  coach add SleepScore 78
  coach add HR 64 --at "2025-06-14 07:00"
  coach add Weight 82.5 --device SCALE1

Note: for step counts prefer 'coach steps', which keeps one running
total per day instead of appending samples.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		metricType := args[0]
		if !models.IsValidMetricType(metricType) {
			return fmt.Errorf("unknown metric type: %s\nValid types: HR, Steps, SleepScore, Weight, HRV", metricType)
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		m := models.NewMetric(currentUser(), models.MetricType(metricType), value)

		if addAt != "" {
			t, err := parseTime(addAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", addAt)
			}
			m.WithRecordedAt(t)
		}
		if addDevice != "" {
			m.WithDevice(addDevice)
		}

		if err := coach.IngestMetrics(st, []*models.Metric{m}); err != nil {
			return fmt.Errorf("failed to add metric: %w", err)
		}

		color.Green("✓ Added %s", metricType)
		fmt.Printf("  %.2f %s at %s\n",
			value, models.MetricUnits[m.MetricType],
			color.New(color.Faint).Sprint(m.RecordedAt.Format("2006-01-02 15:04")))

		return nil
	},
}

// parseTime accepts the common timestamp spellings users actually type.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}

func init() {
	addCmd.Flags().StringVar(&addAt, "at", "", "timestamp for the sample (default: now)")
	addCmd.Flags().StringVar(&addDevice, "device", "", "originating device ID")
	rootCmd.AddCommand(addCmd)
}
