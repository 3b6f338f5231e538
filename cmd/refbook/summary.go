// Summary command aggregates a season's earnings.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <season>",
	Short: "Show paid and outstanding totals for a season",
	Long: `Summary aggregates a season's fee totals: how much has been received
and how much is still outstanding.

Example:
  refbook summary 2024/2025
  refbook summary 2024/2025 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	season := args[0]

	s, err := store.Summary(season)
	if err != nil {
		return fmt.Errorf("summarize season %s: %w", season, err)
	}

	if flagJSON {
		return printJSON(s)
	}
	fmt.Printf("Season %s: %d game(s)\n", season, s.Games)
	fmt.Printf("Total fees:  %.2f\n", s.TotalFees)
	fmt.Printf("Amount paid: %.2f\n", s.AmountPaid)
	fmt.Printf("Amount left: %.2f\n", s.AmountLeft)
	return nil
}
