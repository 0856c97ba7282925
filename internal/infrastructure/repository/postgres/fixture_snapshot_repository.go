package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/betmetrics/betmetrics-api/internal/domain/fixturecache"
	qb "github.com/betmetrics/betmetrics-api/internal/platform/querybuilder"
)

type FixtureSnapshotRepository struct {
	db *sqlx.DB
}

func NewFixtureSnapshotRepository(db *sqlx.DB) *FixtureSnapshotRepository {
	return &FixtureSnapshotRepository{db: db}
}

func (r *FixtureSnapshotRepository) GetByDate(ctx context.Context, cacheDate string) (fixturecache.Snapshot, bool, error) {
	query, args, err := qb.Select(
		"id",
		"cache_date::text AS cache_date",
		"fixtures",
		"fixtures_by_league",
		"api_calls_count",
		"message",
		"created_at",
	).From("fixture_snapshots").
		Where(qb.Eq("cache_date", cacheDate)).
		ToSQL()
	if err != nil {
		return fixturecache.Snapshot{}, false, fmt.Errorf("build get snapshot query: %w", err)
	}

	var row fixtureSnapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixturecache.Snapshot{}, false, nil
		}
		return fixturecache.Snapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}

	snapshot, err := snapshotFromRow(row)
	if err != nil {
		return fixturecache.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}

	return snapshot, true, nil
}

func (r *FixtureSnapshotRepository) Upsert(ctx context.Context, snapshot fixturecache.Snapshot) error {
	row, err := snapshotToRow(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	query, args, err := qb.InsertInto("fixture_snapshots").
		Columns("cache_date", "fixtures", "fixtures_by_league", "api_calls_count", "message", "created_at").
		Values(row.CacheDate, row.Fixtures, row.FixturesByLeague, row.APICallsCount, row.Message, row.CreatedAt).
		Suffix(`ON CONFLICT (cache_date) DO UPDATE SET
			fixtures = EXCLUDED.fixtures,
			fixtures_by_league = EXCLUDED.fixtures_by_league,
			api_calls_count = EXCLUDED.api_calls_count,
			message = EXCLUDED.message,
			created_at = EXCLUDED.created_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert snapshot query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}

	return nil
}

func (r *FixtureSnapshotRepository) DeleteBefore(ctx context.Context, cacheDate string) (int64, error) {
	query, args, err := qb.DeleteFrom("fixture_snapshots").
		Where(qb.Expr("cache_date < ?", cacheDate)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete snapshots query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete snapshots: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted snapshots: %w", err)
	}

	return deleted, nil
}
