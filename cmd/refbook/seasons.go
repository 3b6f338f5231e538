// Seasons command lists the recorded seasons.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List recorded seasons",
	RunE: func(cmd *cobra.Command, args []string) error {
		seasons, err := store.Seasons()
		if err != nil {
			return fmt.Errorf("list seasons: %w", err)
		}

		if flagJSON {
			if seasons == nil {
				seasons = []string{}
			}
			return printJSON(seasons)
		}
		if len(seasons) == 0 {
			fmt.Println("No seasons recorded.")
			return nil
		}
		for _, s := range seasons {
			fmt.Println(s)
		}
		return nil
	},
}
