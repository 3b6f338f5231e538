package types

// Summary aggregates a season's earnings for display.
type Summary struct {
	Games      int     `json:"games"`
	TotalFees  float64 `json:"total_fees"`
	AmountPaid float64 `json:"amount_paid"`
	AmountLeft float64 `json:"amount_left"`
}

// Summarize computes the aggregate totals over a set of games.
func Summarize(games []Game) Summary {
	var s Summary
	for _, g := range games {
		s.Games++
		s.TotalFees += g.Total()
		s.AmountPaid += g.Paid()
		s.AmountLeft += g.Left()
	}
	return s
}
