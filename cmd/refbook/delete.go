// Delete command removes a recorded game.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <season> <number>",
	Short: "Delete a recorded game",
	Long: `Delete removes the game identified by season and game number.

Example:
  refbook delete 2024/2025 7`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	season, number := args[0], args[1]

	if err := store.DeleteGame(season, number); err != nil {
		return fmt.Errorf("delete game %s/%s: %w", season, number, err)
	}

	fmt.Printf("Deleted game %s/%s\n", season, number)
	return nil
}
