package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/betmetrics/betmetrics-api/internal/domain/bet"
	qb "github.com/betmetrics/betmetrics-api/internal/platform/querybuilder"
)

type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

func (r *BetRepository) ListByUser(ctx context.Context, userID string) ([]bet.Bet, error) {
	query, args, err := qb.Select("*").From("bets").
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list bets query: %w", err)
	}

	var rows []betTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}

	out := make([]bet.Bet, 0, len(rows))
	for _, row := range rows {
		out = append(out, betFromRow(row))
	}

	return out, nil
}

func (r *BetRepository) GetByID(ctx context.Context, userID, betID string) (bet.Bet, bool, error) {
	query, args, err := qb.Select("*").From("bets").
		Where(
			qb.Eq("id", betID),
			qb.Eq("user_id", userID),
		).
		ToSQL()
	if err != nil {
		return bet.Bet{}, false, fmt.Errorf("build get bet query: %w", err)
	}

	var row betTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return bet.Bet{}, false, nil
		}
		return bet.Bet{}, false, fmt.Errorf("get bet: %w", err)
	}

	return betFromRow(row), true, nil
}

func (r *BetRepository) Create(ctx context.Context, b bet.Bet) error {
	query, args, err := qb.InsertInto("bets").
		Columns("id", "user_id", "match_name", "league", "bet_type", "odds", "stake", "potential_return", "result", "profit_loss", "created_at", "settled_at").
		Values(b.ID, b.UserID, b.MatchName, b.League, b.BetType, b.Odds, b.Stake, b.PotentialReturn, string(b.Result), b.ProfitLoss, b.CreatedAt, b.SettledAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert bet query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert bet: %w", err)
	}

	return nil
}

func (r *BetRepository) Update(ctx context.Context, b bet.Bet) error {
	query, args, err := qb.Update("bets").
		Set("result", string(b.Result)).
		Set("profit_loss", b.ProfitLoss).
		Set("settled_at", b.SettledAt).
		Where(
			qb.Eq("id", b.ID),
			qb.Eq("user_id", b.UserID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update bet query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update bet: %w", err)
	}

	return nil
}

func (r *BetRepository) Delete(ctx context.Context, userID, betID string) error {
	query, args, err := qb.DeleteFrom("bets").
		Where(
			qb.Eq("id", betID),
			qb.Eq("user_id", userID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete bet query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete bet: %w", err)
	}

	return nil
}
