// ABOUTME: Root Cobra command for coach CLI.
// ABOUTME: Handles config load and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/coach/internal/config"
	"github.com/harperreed/coach/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	st       store.Store
	flagUser string
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "Adaptive fitness coaching from your own sensor data",
	Long: `Coach turns sensor samples into daily workout plans and nudges.

HOW IT WORKS:

  A small behavior model scores two things from your history:

  Adherence    how many of your recent plans you actually completed
  Readiness    recovery signal from heart rate and sleep score trends

  Together they pick the next workout intensity (Low, Moderate, High),
  with hysteresis so the recommendation never jumps two tiers at once.

QUICK START:

  $ coach add HR 72                  # Log a heart rate sample
  $ coach add SleepScore 78          # Log last night's sleep score
  $ coach steps 6500                 # Set today's step total
  $ coach plan                       # See (or generate) today's plan
  $ coach plan complete              # Mark it done
  $ coach nudge                      # Get a step-trend nudge
  $ coach score                      # Inspect the scores behind the plan

DEMO DATA:

  $ coach sim                        # Seed a day of simulated sensor data

MCP INTEGRATION:

  Run 'coach mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "coach": { "command": "coach", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Documents live in a local store at ~/.local/share/coach (SQLite by
  default; badger and Charm Cloud backends are available via config).
  With the charm backend, data syncs across devices E2E encrypted with
  your SSH key.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		st, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

// currentUser resolves the account a command acts on.
func currentUser() string {
	if flagUser != "" {
		return flagUser
	}
	return cfg.GetUserID()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "",
		"account to act on (defaults to the configured user)")
}
