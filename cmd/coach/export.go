// ABOUTME: CLI commands for exporting and importing coaching data.
// ABOUTME: Supports JSON and YAML export formats.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/store"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export coaching data",
	Long: `Export all coaching data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  coach export json                  # Export all data as JSON
  coach export json -o backup.json   # Save to file
  coach export yaml                  # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		data, err := store.GetAllData(st)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		raw, err := store.MarshalExport(data, format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, raw, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(raw))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import coaching data from a backup",
	Long: `Import coaching data from a previously exported file.

The format is inferred from the file extension (.json, .yaml, .yml).
Imported documents receive fresh storage keys, so importing into a
non-empty store duplicates rather than merges.

EXAMPLES:

  coach import backup.json           # Import from a JSON backup
  coach import backup.yaml           # Import from a YAML backup`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		format := "json"
		if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
			format = "yaml"
		}

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		data, err := store.UnmarshalExport(raw, format)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := store.ImportData(st, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
