// List command shows recorded games.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

var listSeason string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded games",
	Long: `List shows recorded games, every season by default.

Example:
  refbook list
  refbook list --season 2024/2025
  refbook list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSeason, "season", "", "limit to one season")
}

func runList(cmd *cobra.Command, args []string) error {
	games, err := store.ListGames(listSeason)
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}

	if flagJSON {
		if games == nil {
			games = []types.Game{}
		}
		return printJSON(games)
	}
	printGameTable(games)
	return nil
}
