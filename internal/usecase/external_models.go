package usecase

import "context"

// ExternalFixture is one raw match row from the sports-data provider,
// before allow-list filtering and normalization.
type ExternalFixture struct {
	ID           int64
	Date         string
	Timestamp    int64
	Status       string
	LeagueID     int64
	LeagueName   string
	Country      string
	LeagueLogo   string
	Round        string
	HomeTeamID   int64
	HomeTeamName string
	HomeTeamLogo string
	AwayTeamID   int64
	AwayTeamName string
	AwayTeamLogo string
}

// FixtureProvider fetches all fixtures scheduled on one UTC calendar
// day (key format YYYY-MM-DD). Implementations must return
// ErrNotConfigured when no provider credential is present so callers
// can distinguish a configuration gap from a provider outage.
type FixtureProvider interface {
	EventsByDate(ctx context.Context, day string) ([]ExternalFixture, error)
}
