// ABOUTME: CLI command for recording session feedback.
// ABOUTME: RPE, mood, pain, and free-form notes, appended to a log.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/coach"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var (
	feedbackRPE   int
	feedbackMood  string
	feedbackPain  string
	feedbackNotes string
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record how a session felt",
	Long: `Record feedback about a workout session.

OPTIONS:

  --rpe      rate of perceived exertion, 1-10
  --mood     how you felt (e.g. great, tired, flat)
  --pain     any pain (default "none")
  --notes    free-form notes

EXAMPLES:

  coach feedback --rpe 7 --mood great
  coach feedback --rpe 9 --pain "left knee" --notes "cut intervals short"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if feedbackRPE != 0 && (feedbackRPE < 1 || feedbackRPE > 10) {
			return fmt.Errorf("rpe must be between 1 and 10, got %d", feedbackRPE)
		}

		fb := models.NewFeedback(currentUser())
		if feedbackRPE != 0 {
			fb = fb.WithRPE(feedbackRPE)
		}
		if feedbackMood != "" {
			fb = fb.WithMood(feedbackMood)
		}
		if feedbackPain != "" {
			fb = fb.WithPain(feedbackPain)
		}
		if feedbackNotes != "" {
			fb = fb.WithNotes(feedbackNotes)
		}

		if err := coach.RecordFeedback(st, fb); err != nil {
			return err
		}

		color.Green("✓ Feedback recorded")
		return nil
	},
}

func init() {
	feedbackCmd.Flags().IntVar(&feedbackRPE, "rpe", 0, "rate of perceived exertion (1-10)")
	feedbackCmd.Flags().StringVar(&feedbackMood, "mood", "", "how the session felt")
	feedbackCmd.Flags().StringVar(&feedbackPain, "pain", "", "any pain (default none)")
	feedbackCmd.Flags().StringVar(&feedbackNotes, "notes", "", "free-form notes")
	rootCmd.AddCommand(feedbackCmd)
}
