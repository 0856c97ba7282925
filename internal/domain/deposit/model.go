package deposit

import "time"

// Deposit is one bankroll movement. Negative amounts are withdrawals.
type Deposit struct {
	ID          string
	UserID      string
	Amount      float64
	Description string
	CreatedAt   time.Time
}

const DefaultDescription = "Aporte"

// Total sums the movements; together with settled bet profit it gives
// the user's current bankroll.
func Total(deposits []Deposit) float64 {
	var total float64
	for _, d := range deposits {
		total += d.Amount
	}
	return total
}
