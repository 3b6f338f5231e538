// Search command filters a season's games by text.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <season> <query>",
	Short: "Search a season's games",
	Long: `Search returns the season's games whose number, location, or date
contains the query, case-insensitively.

Example:
  refbook search 2024/2025 arena
  refbook search 2024/2025 2025-03`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	season, query := args[0], args[1]

	games, err := store.SearchGames(season, query)
	if err != nil {
		return fmt.Errorf("search games: %w", err)
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
