// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/coach/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants like Claude read your plans and scores and log
data on your behalf. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "coach": {
        "command": "coach",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_plan              Get today's plan, generating one if needed
  generate_plan         Regenerate today's plan from current scores
  start_plan            Mark today's plan In Progress
  complete_plan         Mark today's plan Completed
  generate_nudge        Generate a step-trend nudge
  add_metric            Record a sensor sample
  set_steps             Set today's step total
  list_metrics          List recent sensor samples
  list_recommendations  List recent nudges
  get_scores            Get adherence, readiness, and next intensity

AVAILABLE RESOURCES:

  coach://plan/today              Today's plan
  coach://metrics/recent          Recent sensor samples
  coach://recommendations/recent  Recent nudges`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(st, cfg.GetUserID(), cfg.GetUserName())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
