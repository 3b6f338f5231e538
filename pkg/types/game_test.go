package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGame() Game {
	return Game{
		Season:     "2024/2025",
		Number:     "1",
		Date:       "2025-03-14",
		Location:   "City Arena",
		Payments:   Payments{Transport: 10, Food: 5, MatchFee: 50},
		PaidStatus: PaidStatusUnpaid,
	}
}

func TestGameValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *Game)
		wantErr error
	}{
		{
			name:   "valid game",
			mutate: func(g *Game) {},
		},
		{
			name:   "empty date allowed",
			mutate: func(g *Game) { g.Date = "" },
		},
		{
			name:   "empty paid status allowed",
			mutate: func(g *Game) { g.PaidStatus = "" },
		},
		{
			name:    "missing season",
			mutate:  func(g *Game) { g.Season = "" },
			wantErr: ErrSeasonEmpty,
		},
		{
			name:    "missing game number",
			mutate:  func(g *Game) { g.Number = "" },
			wantErr: ErrNumberEmpty,
		},
		{
			name:    "negative transport",
			mutate:  func(g *Game) { g.Payments.Transport = -1 },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "negative food",
			mutate:  func(g *Game) { g.Payments.Food = -0.5 },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "negative match fee",
			mutate:  func(g *Game) { g.Payments.MatchFee = -50 },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "negative amount paid",
			mutate:  func(g *Game) { g.AmountPaid = -10 },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "unknown paid status",
			mutate:  func(g *Game) { g.PaidStatus = "maybe" },
			wantErr: ErrInvalidPaidStatus,
		},
		{
			name:    "malformed date",
			mutate:  func(g *Game) { g.Date = "14.03.2025" },
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGame()
			tt.mutate(&g)
			err := g.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGameDerivedAmounts(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		amountPaid float64
		wantPaid   float64
		wantLeft   float64
	}{
		{name: "unpaid", status: PaidStatusUnpaid, wantPaid: 0, wantLeft: 65},
		{name: "paid in full", status: PaidStatusPaid, wantPaid: 65, wantLeft: 0},
		{name: "partially paid", status: PaidStatusPartially, amountPaid: 30, wantPaid: 30, wantLeft: 35},
		{name: "partial clamped to total", status: PaidStatusPartially, amountPaid: 100, wantPaid: 65, wantLeft: 0},
		{name: "empty status counts as unpaid", status: "", wantPaid: 0, wantLeft: 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGame()
			g.PaidStatus = tt.status
			g.AmountPaid = tt.amountPaid

			assert.InDelta(t, 65, g.Total(), 1e-9)
			assert.InDelta(t, tt.wantPaid, g.Paid(), 1e-9)
			assert.InDelta(t, tt.wantLeft, g.Left(), 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	partial := validGame()
	partial.PaidStatus = PaidStatusPartially
	partial.AmountPaid = 30

	settled := validGame()
	settled.Number = "2"
	settled.Payments = Payments{MatchFee: 45}
	settled.PaidStatus = PaidStatusPaid

	s := Summarize([]Game{partial, settled})
	require.Equal(t, 2, s.Games)
	assert.InDelta(t, 110, s.TotalFees, 1e-9)
	assert.InDelta(t, 75, s.AmountPaid, 1e-9)
	assert.InDelta(t, 35, s.AmountLeft, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
}
