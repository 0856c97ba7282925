package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/betmetrics/betmetrics-api/internal/domain/fixture"
	"github.com/betmetrics/betmetrics-api/internal/domain/fixturecache"
)

type fixtureSnapshotTableModel struct {
	ID               int64     `db:"id"`
	CacheDate        string    `db:"cache_date"`
	Fixtures         []byte    `db:"fixtures"`
	FixturesByLeague []byte    `db:"fixtures_by_league"`
	APICallsCount    int       `db:"api_calls_count"`
	Message          string    `db:"message"`
	CreatedAt        time.Time `db:"created_at"`
}

func snapshotFromRow(row fixtureSnapshotTableModel) (fixturecache.Snapshot, error) {
	var fixtures []fixture.Fixture
	if len(row.Fixtures) > 0 {
		if err := sonic.Unmarshal(row.Fixtures, &fixtures); err != nil {
			return fixturecache.Snapshot{}, fmt.Errorf("unmarshal fixtures: %w", err)
		}
	}

	var grouped map[string][]fixture.Fixture
	if len(row.FixturesByLeague) > 0 {
		if err := sonic.Unmarshal(row.FixturesByLeague, &grouped); err != nil {
			return fixturecache.Snapshot{}, fmt.Errorf("unmarshal fixtures by league: %w", err)
		}
	}

	return fixturecache.Snapshot{
		CacheDate:        row.CacheDate,
		Fixtures:         fixtures,
		FixturesByLeague: grouped,
		APICallsCount:    row.APICallsCount,
		Message:          row.Message,
		CreatedAt:        row.CreatedAt,
	}, nil
}

func snapshotToRow(snapshot fixturecache.Snapshot) (fixtureSnapshotTableModel, error) {
	fixtures := snapshot.Fixtures
	if fixtures == nil {
		fixtures = []fixture.Fixture{}
	}
	grouped := snapshot.FixturesByLeague
	if grouped == nil {
		grouped = map[string][]fixture.Fixture{}
	}

	encodedFixtures, err := sonic.Marshal(fixtures)
	if err != nil {
		return fixtureSnapshotTableModel{}, fmt.Errorf("marshal fixtures: %w", err)
	}
	encodedGrouped, err := sonic.Marshal(grouped)
	if err != nil {
		return fixtureSnapshotTableModel{}, fmt.Errorf("marshal fixtures by league: %w", err)
	}

	return fixtureSnapshotTableModel{
		CacheDate:        snapshot.CacheDate,
		Fixtures:         encodedFixtures,
		FixturesByLeague: encodedGrouped,
		APICallsCount:    snapshot.APICallsCount,
		Message:          snapshot.Message,
		CreatedAt:        snapshot.CreatedAt,
	}, nil
}
