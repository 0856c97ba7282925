package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/betmetrics/betmetrics-api/internal/domain/deposit"
	qb "github.com/betmetrics/betmetrics-api/internal/platform/querybuilder"
)

type DepositRepository struct {
	db *sqlx.DB
}

func NewDepositRepository(db *sqlx.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

func (r *DepositRepository) ListByUser(ctx context.Context, userID string) ([]deposit.Deposit, error) {
	query, args, err := qb.Select("*").From("deposits").
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list deposits query: %w", err)
	}

	var rows []depositTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}

	out := make([]deposit.Deposit, 0, len(rows))
	for _, row := range rows {
		out = append(out, depositFromRow(row))
	}

	return out, nil
}

func (r *DepositRepository) Create(ctx context.Context, d deposit.Deposit) error {
	query, args, err := qb.InsertInto("deposits").
		Columns("id", "user_id", "amount", "description", "created_at").
		Values(d.ID, d.UserID, d.Amount, d.Description, d.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert deposit query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert deposit: %w", err)
	}

	return nil
}

func (r *DepositRepository) Delete(ctx context.Context, userID, depositID string) error {
	query, args, err := qb.DeleteFrom("deposits").
		Where(
			qb.Eq("id", depositID),
			qb.Eq("user_id", userID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete deposit query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete deposit: %w", err)
	}

	return nil
}
