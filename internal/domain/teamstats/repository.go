package teamstats

import "context"

// Repository exposes team stat lookups by exact team name.
type Repository interface {
	GetByTeam(ctx context.Context, team string) (TeamStats, bool, error)
	List(ctx context.Context) ([]TeamStats, error)
}
