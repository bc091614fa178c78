// ABOUTME: CLI command for listing past recommendations.
// ABOUTME: Shows the newest nudges first with timestamps.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/coach"
	"github.com/spf13/cobra"
)

var recsLimit int

var recsCmd = &cobra.Command{
	Use:     "recs",
	Aliases: []string{"recommendations"},
	Short:   "List recent recommendations",
	Long: `List your recent recommendations, newest first.

EXAMPLES:

  coach recs            # Show last 20 recommendations
  coach recs -n 5       # Show last 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recs, err := coach.RecentRecommendations(st, currentUser(), recsLimit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No recommendations yet. Try 'coach nudge'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, rec := range recs {
			fmt.Printf("%s  %s\n",
				faint.Sprint(rec.CreatedAt.Format("2006-01-02 15:04")),
				rec.Message)
		}
		return nil
	},
}

func init() {
	recsCmd.Flags().IntVarP(&recsLimit, "limit", "n", 20, "number of recommendations to show")
	rootCmd.AddCommand(recsCmd)
}
