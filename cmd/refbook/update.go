// Update command edits an existing game.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updDate       string
	updLocation   string
	updTransport  float64
	updFood       float64
	updMatchFee   float64
	updPaidStatus string
	updAmountPaid float64
	updNotes      string
)

var updateCmd = &cobra.Command{
	Use:   "update <season> <number>",
	Short: "Update a recorded game",
	Long: `Update edits the game identified by season and game number. Only the
fields given as flags change; everything else keeps its stored value.

Example:
  refbook update 2024/2025 7 --paid paid
  refbook update 2024/2025 7 --paid partially_paid --amount-paid 30`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updDate, "date", "", "game date, YYYY-MM-DD")
	updateCmd.Flags().StringVar(&updLocation, "location", "", "venue")
	updateCmd.Flags().Float64Var(&updTransport, "transport", 0, "transport fee")
	updateCmd.Flags().Float64Var(&updFood, "food", 0, "food allowance")
	updateCmd.Flags().Float64Var(&updMatchFee, "match-fee", 0, "match fee")
	updateCmd.Flags().StringVar(&updPaidStatus, "paid", "", "paid status: unpaid, partially_paid, or paid")
	updateCmd.Flags().Float64Var(&updAmountPaid, "amount-paid", 0, "amount received so far")
	updateCmd.Flags().StringVar(&updNotes, "notes", "", "free-form notes")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	season, number := args[0], args[1]

	game, err := store.GetGame(season, number)
	if err != nil {
		return fmt.Errorf("get game %s/%s: %w", season, number, err)
	}

	flags := cmd.Flags()
	if flags.Changed("date") {
		game.Date = updDate
	}
	if flags.Changed("location") {
		game.Location = updLocation
	}
	if flags.Changed("transport") {
		game.Payments.Transport = updTransport
	}
	if flags.Changed("food") {
		game.Payments.Food = updFood
	}
	if flags.Changed("match-fee") {
		game.Payments.MatchFee = updMatchFee
	}
	if flags.Changed("paid") {
		game.PaidStatus = updPaidStatus
	}
	if flags.Changed("amount-paid") {
		game.AmountPaid = updAmountPaid
	}
	if flags.Changed("notes") {
		game.Notes = updNotes
	}

	if err := store.UpdateGame(season, number, game); err != nil {
		return fmt.Errorf("update game %s/%s: %w", season, number, err)
	}

	if flagJSON {
		saved, err := store.GetGame(season, number)
		if err != nil {
			return fmt.Errorf("read back game %s/%s: %w", season, number, err)
		}
		return printJSON(saved)
	}
	fmt.Printf("Updated game %s/%s\n", season, number)
	return nil
}
