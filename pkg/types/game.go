package types

import "time"

// Paid statuses. A game's fee is either fully outstanding, partially
// settled, or fully settled.
const (
	PaidStatusUnpaid    = "unpaid"
	PaidStatusPartially = "partially_paid"
	PaidStatusPaid      = "paid"
)

// validPaidStatuses is the set of recognized paid status values.
var validPaidStatuses = map[string]bool{
	PaidStatusUnpaid:    true,
	PaidStatusPartially: true,
	PaidStatusPaid:      true,
}

// dateLayout is the calendar date format used for Game.Date.
const dateLayout = "2006-01-02"

// Payments is the fee breakdown for a single game.
type Payments struct {
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	MatchFee  float64 `json:"match_fee"`
}

// Game is a refereed match and its earnings. (Season, Number) is the
// uniqueness key across the authoritative store; GameID is a surrogate
// UUID assigned on first persist and preserved across updates.
type Game struct {
	GameID     string   `json:"game_id,omitempty"`
	Season     string   `json:"season"`
	Number     string   `json:"game_number"`
	Date       string   `json:"date"`
	Location   string   `json:"location"`
	Payments   Payments `json:"payments"`
	PaidStatus string   `json:"paid_status"`
	AmountPaid float64  `json:"amount_paid"`
	Notes      string   `json:"notes,omitempty"`
}

// Validate checks that the game is well-formed before it reaches any store.
// It returns a sentinel error from this package on failure.
func (g Game) Validate() error {
	if g.Season == "" {
		return ErrSeasonEmpty
	}
	if g.Number == "" {
		return ErrNumberEmpty
	}
	if g.Payments.Transport < 0 || g.Payments.Food < 0 || g.Payments.MatchFee < 0 {
		return ErrNegativeAmount
	}
	if g.AmountPaid < 0 {
		return ErrNegativeAmount
	}
	if g.PaidStatus != "" && !validPaidStatuses[g.PaidStatus] {
		return ErrInvalidPaidStatus
	}
	if g.Date != "" {
		if _, err := time.Parse(dateLayout, g.Date); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}

// Total returns the full fee for the game: transport + food + match fee.
func (g Game) Total() float64 {
	return g.Payments.Transport + g.Payments.Food + g.Payments.MatchFee
}

// Paid returns the amount settled so far. A paid game is settled in full,
// an unpaid game not at all. For a partial payment the recorded amount is
// used, clamped to the fee total.
func (g Game) Paid() float64 {
	switch g.PaidStatus {
	case PaidStatusPaid:
		return g.Total()
	case PaidStatusPartially:
		if g.AmountPaid > g.Total() {
			return g.Total()
		}
		return g.AmountPaid
	default:
		return 0
	}
}

// Left returns the outstanding amount for the game.
func (g Game) Left() float64 {
	return g.Total() - g.Paid()
}

// Key returns the (season, game number) uniqueness key.
func (g Game) Key() GameKey {
	return GameKey{Season: g.Season, Number: g.Number}
}

// GameKey identifies a game within the authoritative store.
type GameKey struct {
	Season string
	Number string
}
