// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies every collection from the configured backend to another.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <backend>",
	Short: "Copy data to another storage backend",
	Long: `Copy all coaching data from the configured backend to another one.

The destination should be empty: migrated documents receive fresh
storage keys, so migrating into a non-empty store duplicates rather
than merges. Source data is left untouched; switch the "backend" key in
your config once you have verified the copy.

BACKENDS:

  sqlite     local SQLite database (default)
  badger     local Badger key-value store
  charm      Charm Cloud, synced across devices

EXAMPLES:

  coach migrate badger       # Copy sqlite data into the badger backend
  coach migrate charm        # Copy local data up to Charm Cloud`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"sqlite", "badger", "charm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", target)
		}

		dst, err := cfg.OpenBackend(target)
		if err != nil {
			return fmt.Errorf("open %s backend: %w", target, err)
		}
		defer dst.Close()

		summary, err := store.MigrateData(st, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d documents to %s", summary.Total(), target)
		for collection, n := range summary.Counts {
			fmt.Printf("  %s: %d\n", collection, n)
		}
		fmt.Println()
		fmt.Printf("To switch, set \"backend\": %q in %s\n", target, "~/.config/coach/config.json")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
