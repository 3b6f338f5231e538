// Root command for the refbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/internal/backend"
	"github.com/mesh-intelligence/refbook/pkg/refbook"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagDB        string
	flagJSON      bool
)

// store is the backend facade, opened once per invocation by
// PersistentPreRunE and closed by PersistentPostRunE.
var store *backend.Backend

var rootCmd = &cobra.Command{
	Use:     "refbook",
	Short:   "Refbook records referee match earnings by season",
	Version: refbook.Version,
	Long: `Refbook keeps a record of refereed matches: date, game number,
location, fee breakdown, paid status, and notes, grouped by season.

Games live in per-season JSON files under the data directory. When a
database is configured (a SQLite file, a postgres:// URL, or credentials in
config.yaml) it becomes the source of truth and the JSON files turn into a
write-through backup.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return openStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/data)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database path or postgres:// URL (default: JSON files only; also REFBOOK_DB)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(statusCmd)
}
