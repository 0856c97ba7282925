package cache

import (
	"context"

	"github.com/betmetrics/betmetrics-api/internal/domain/teamstats"
	basecache "github.com/betmetrics/betmetrics-api/internal/platform/cache"
)

// TeamStatsRepository caches stat lookups in front of a slower store.
// Stat lines change at most once a day, so a short TTL is safe.
type TeamStatsRepository struct {
	next  teamstats.Repository
	cache *basecache.Store
}

func NewTeamStatsRepository(next teamstats.Repository, cache *basecache.Store) *TeamStatsRepository {
	return &TeamStatsRepository{next: next, cache: cache}
}

func (r *TeamStatsRepository) GetByTeam(ctx context.Context, team string) (teamstats.TeamStats, bool, error) {
	key := "teamstats:team:" + team
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByTeam(ctx, team)
		if err != nil {
			return nil, err
		}
		return cachedTeamStats{value: item, exists: exists}, nil
	})
	if err != nil {
		return teamstats.TeamStats{}, false, err
	}

	cached, _ := v.(cachedTeamStats)
	return cached.value, cached.exists, nil
}

func (r *TeamStatsRepository) List(ctx context.Context) ([]teamstats.TeamStats, error) {
	v, err := r.cache.GetOrLoad(ctx, "teamstats:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]teamstats.TeamStats(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]teamstats.TeamStats)
	return append([]teamstats.TeamStats(nil), items...), nil
}

type cachedTeamStats struct {
	value  teamstats.TeamStats
	exists bool
}
