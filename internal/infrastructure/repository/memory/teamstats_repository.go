package memory

import (
	"context"
	"sync"

	"github.com/betmetrics/betmetrics-api/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	mu     sync.RWMutex
	items  map[string]teamstats.TeamStats
	orders []string
}

func NewTeamStatsRepository(stats []teamstats.TeamStats) *TeamStatsRepository {
	items := make(map[string]teamstats.TeamStats, len(stats))
	orders := make([]string, 0, len(stats))

	for _, s := range stats {
		items[s.Team] = s
		orders = append(orders, s.Team)
	}

	return &TeamStatsRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TeamStatsRepository) GetByTeam(_ context.Context, team string) (teamstats.TeamStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[team]
	if !ok {
		return teamstats.TeamStats{}, false, nil
	}

	return s, true, nil
}

func (r *TeamStatsRepository) List(_ context.Context) ([]teamstats.TeamStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teamstats.TeamStats, 0, len(r.orders))
	for _, team := range r.orders {
		out = append(out, r.items[team])
	}

	return out, nil
}
