package postgres

import (
	"time"

	"github.com/betmetrics/betmetrics-api/internal/domain/deposit"
)

type depositTableModel struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func depositFromRow(row depositTableModel) deposit.Deposit {
	return deposit.Deposit{
		ID:          row.ID,
		UserID:      row.UserID,
		Amount:      row.Amount,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
