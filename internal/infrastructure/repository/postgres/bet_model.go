package postgres

import (
	"time"

	"github.com/betmetrics/betmetrics-api/internal/domain/bet"
)

type betTableModel struct {
	ID              string     `db:"id"`
	UserID          string     `db:"user_id"`
	MatchName       string     `db:"match_name"`
	League          string     `db:"league"`
	BetType         string     `db:"bet_type"`
	Odds            float64    `db:"odds"`
	Stake           float64    `db:"stake"`
	PotentialReturn float64    `db:"potential_return"`
	Result          string     `db:"result"`
	ProfitLoss      float64    `db:"profit_loss"`
	CreatedAt       time.Time  `db:"created_at"`
	SettledAt       *time.Time `db:"settled_at"`
}

func betFromRow(row betTableModel) bet.Bet {
	return bet.Bet{
		ID:              row.ID,
		UserID:          row.UserID,
		MatchName:       row.MatchName,
		League:          row.League,
		BetType:         row.BetType,
		Odds:            row.Odds,
		Stake:           row.Stake,
		PotentialReturn: row.PotentialReturn,
		Result:          bet.Result(row.Result),
		ProfitLoss:      row.ProfitLoss,
		CreatedAt:       row.CreatedAt,
		SettledAt:       row.SettledAt,
	}
}
