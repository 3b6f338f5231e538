// Add command records a new game.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

var (
	addSeason     string
	addNumber     string
	addDate       string
	addLocation   string
	addTransport  float64
	addFood       float64
	addMatchFee   float64
	addPaidStatus string
	addAmountPaid float64
	addNotes      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a game",
	Long: `Add records a refereed game under a season. Adding a game number
that already exists in the season updates the existing record.

Example:
  refbook add --season 2024/2025 --number 7 --date 2025-03-14 \
      --location "City Arena" --match-fee 50 --transport 10 --food 5
  refbook add --season 2024/2025 --number 8 --match-fee 45 --paid paid`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addSeason, "season", "", "season the game belongs to, e.g. 2024/2025 (required)")
	addCmd.Flags().StringVar(&addNumber, "number", "", "game number, unique within the season (required)")
	addCmd.Flags().StringVar(&addDate, "date", "", "game date, YYYY-MM-DD")
	addCmd.Flags().StringVar(&addLocation, "location", "", "venue")
	addCmd.Flags().Float64Var(&addTransport, "transport", 0, "transport fee")
	addCmd.Flags().Float64Var(&addFood, "food", 0, "food allowance")
	addCmd.Flags().Float64Var(&addMatchFee, "match-fee", 0, "match fee")
	addCmd.Flags().StringVar(&addPaidStatus, "paid", types.PaidStatusUnpaid, "paid status: unpaid, partially_paid, or paid")
	addCmd.Flags().Float64Var(&addAmountPaid, "amount-paid", 0, "amount received so far (for partially_paid)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	_ = addCmd.MarkFlagRequired("season")
	_ = addCmd.MarkFlagRequired("number")
}

func runAdd(cmd *cobra.Command, args []string) error {
	game := types.Game{
		Season:     addSeason,
		Number:     addNumber,
		Date:       addDate,
		Location:   addLocation,
		Payments:   types.Payments{Transport: addTransport, Food: addFood, MatchFee: addMatchFee},
		PaidStatus: addPaidStatus,
		AmountPaid: addAmountPaid,
		Notes:      addNotes,
	}

	if err := store.AddGame(game); err != nil {
		return fmt.Errorf("add game: %w", err)
	}

	saved, err := store.GetGame(addSeason, addNumber)
	if err != nil {
		// Recorded but could not be read back; report the key only.
		fmt.Printf("Added game %s/%s\n", addSeason, addNumber)
		return nil
	}

	if flagJSON {
		return printJSON(saved)
	}
	fmt.Printf("Added game %s/%s (%s)\n", saved.Season, saved.Number, saved.GameID)
	return nil
}
