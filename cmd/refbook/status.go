// Status command reports which backend is active.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/internal/backend"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active storage backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(map[string]string{
				"backend":  store.Active(),
				"data_dir": store.DataDir(),
				"warning":  store.Warning(),
			})
		}

		switch store.Active() {
		case backend.BackendSQL:
			fmt.Println("Backend: database connection")
		default:
			fmt.Println("Backend: local JSON files")
		}
		fmt.Println("Data directory:", store.DataDir())
		if w := store.Warning(); w != "" {
			fmt.Println("Warning:", w)
		}
		return nil
	},
}
