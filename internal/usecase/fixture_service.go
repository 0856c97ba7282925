package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/betmetrics/betmetrics-api/internal/domain/fixture"
	"github.com/betmetrics/betmetrics-api/internal/domain/fixturecache"
	"github.com/betmetrics/betmetrics-api/internal/domain/leagues"
	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
	"github.com/betmetrics/betmetrics-api/internal/platform/resilience"
)

// Advisory messages surfaced to the client. The UI renders them as-is.
const (
	msgFromCache        = "dados do dia já carregados"
	msgFetched          = "jogos carregados com sucesso"
	msgUpstreamFailed   = "não foi possível carregar os jogos de hoje"
	msgKeyNotConfigured = "chave da API não configurada"
	msgUnexpected       = "erro inesperado"
)

// FixtureFeed is the gateway payload for one day's fixtures.
type FixtureFeed struct {
	Fixtures         []fixture.Fixture
	FixturesByLeague map[string][]fixture.Fixture
	Date             string
	FromCache        bool
	APICallsToday    int
	Message          string
	ErrorDetail      string
}

type FixtureServiceConfig struct {
	RetentionDays int
	Now           func() time.Time
}

// FixtureService serves today's fixtures through a one-row-per-day
// cache: the first request of a UTC day fetches from the provider,
// everything after reads the stored snapshot. Provider trouble is
// recovered locally by caching an empty snapshot for the rest of the
// day, so a bad upstream day costs at most one billable call.
type FixtureService struct {
	snapshots     fixturecache.Repository
	provider      FixtureProvider
	allowlist     leagues.Allowlist
	retentionDays int
	now           func() time.Time
	logger        *logging.Logger
	flight        resilience.SingleFlight
}

func NewFixtureService(
	snapshots fixturecache.Repository,
	provider FixtureProvider,
	allowlist leagues.Allowlist,
	cfg FixtureServiceConfig,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &FixtureService{
		snapshots:     snapshots,
		provider:      provider,
		allowlist:     allowlist,
		retentionDays: cfg.RetentionDays,
		now:           now,
		logger:        logger,
	}
}

// TodayFixtures returns the fixture feed for the current UTC day. Every
// code path produces a well-formed feed; faults degrade to an empty
// list with an advisory message rather than an error.
func (s *FixtureService) TodayFixtures(ctx context.Context) FixtureFeed {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.TodayFixtures")
	defer span.End()

	day := fixturecache.DateKey(s.now())

	snapshot, found, err := s.snapshots.GetByDate(ctx, day)
	if err != nil {
		s.logger.ErrorContext(ctx, "read fixture snapshot failed", "cache_date", day, "error", err)
		return emptyFeed(day, msgUnexpected, err.Error())
	}
	if found {
		return feedFromSnapshot(snapshot, true, msgFromCache)
	}

	// Concurrent first-of-the-day requests on this replica collapse into
	// one fetch. Across replicas the date-keyed upsert keeps the benign
	// race idempotent; exactly-once upstream calls are best-effort only.
	v, _, shared := s.flight.Do("fixtures:"+day, func() (any, error) {
		return s.refresh(ctx, day), nil
	})
	feed, ok := v.(FixtureFeed)
	if !ok {
		return emptyFeed(day, msgUnexpected, "")
	}
	if shared {
		s.logger.DebugContext(ctx, "fixture fetch shared with concurrent request", "cache_date", day)
	}
	return feed
}

// refresh performs the once-per-day fetch-transform-persist cycle.
func (s *FixtureService) refresh(ctx context.Context, day string) FixtureFeed {
	rows, err := s.provider.EventsByDate(ctx, day)
	if err != nil {
		return s.failSoft(ctx, day, err)
	}

	fixtures := s.buildFixtures(rows)
	grouped := groupByLeague(fixtures)

	snapshot := fixturecache.Snapshot{
		CacheDate:        day,
		Fixtures:         fixtures,
		FixturesByLeague: grouped,
		APICallsCount:    1,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.snapshots.Upsert(ctx, snapshot); err != nil {
		// Serve the fresh data anyway; the next request retries the write.
		s.logger.ErrorContext(ctx, "persist fixture snapshot failed", "cache_date", day, "error", err)
	} else {
		s.prune(ctx, day)
	}

	s.logger.InfoContext(ctx, "fixtures fetched",
		"cache_date", day,
		"fixtures", len(fixtures),
		"leagues", len(grouped),
		"received", len(rows),
	)

	return feedFromSnapshot(snapshot, false, msgFetched)
}

// failSoft records an empty snapshot for the day so the provider is not
// retried until tomorrow, then degrades to an empty feed.
func (s *FixtureService) failSoft(ctx context.Context, day string, cause error) FixtureFeed {
	message := msgUpstreamFailed
	callCount := 1
	if errors.Is(cause, ErrNotConfigured) {
		message = msgKeyNotConfigured
		callCount = 0
	}

	snapshot := fixturecache.Snapshot{
		CacheDate:        day,
		Fixtures:         []fixture.Fixture{},
		FixturesByLeague: map[string][]fixture.Fixture{},
		APICallsCount:    callCount,
		Message:          message,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.snapshots.Upsert(ctx, snapshot); err != nil {
		s.logger.ErrorContext(ctx, "persist empty fixture snapshot failed", "cache_date", day, "error", err)
	}

	s.logger.WarnContext(ctx, "fixture fetch degraded to empty feed",
		"cache_date", day,
		"message", message,
		"error", cause,
	)

	feed := feedFromSnapshot(snapshot, false, message)
	feed.ErrorDetail = cause.Error()
	return feed
}

// buildFixtures keeps only allow-listed leagues, substitutes the curated
// country/priority/name, and sorts by (priority, kickoff, id).
func (s *FixtureService) buildFixtures(rows []ExternalFixture) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		descriptor, ok := s.allowlist.Lookup(row.LeagueID)
		if !ok {
			continue
		}

		name := row.LeagueName
		if descriptor.Name != "" {
			name = descriptor.Name
		}

		out = append(out, fixture.Fixture{
			ID:        row.ID,
			Date:      row.Date,
			Timestamp: row.Timestamp,
			Status:    row.Status,
			League: fixture.League{
				ID:       row.LeagueID,
				Name:     name,
				Country:  descriptor.Country,
				Logo:     row.LeagueLogo,
				Round:    row.Round,
				Priority: descriptor.Priority,
			},
			HomeTeam: fixture.Team{ID: row.HomeTeamID, Name: row.HomeTeamName, Logo: row.HomeTeamLogo},
			AwayTeam: fixture.Team{ID: row.AwayTeamID, Name: row.AwayTeamName, Logo: row.AwayTeamLogo},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].League.Priority != out[j].League.Priority {
			return out[i].League.Priority < out[j].League.Priority
		}
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func groupByLeague(fixtures []fixture.Fixture) map[string][]fixture.Fixture {
	grouped := make(map[string][]fixture.Fixture)
	for _, f := range fixtures {
		key := f.GroupKey()
		grouped[key] = append(grouped[key], f)
	}
	return grouped
}

// prune drops snapshots older than the retention window. Best effort:
// a failed prune only logs.
func (s *FixtureService) prune(ctx context.Context, day string) {
	if s.retentionDays <= 0 {
		return
	}

	parsed, err := time.Parse("2006-01-02", day)
	if err != nil {
		return
	}
	cutoff := fixturecache.DateKey(parsed.AddDate(0, 0, -s.retentionDays))

	deleted, err := s.snapshots.DeleteBefore(ctx, cutoff)
	if err != nil {
		s.logger.WarnContext(ctx, "prune fixture snapshots failed", "cutoff", cutoff, "error", err)
		return
	}
	if deleted > 0 {
		s.logger.InfoContext(ctx, "pruned fixture snapshots", "cutoff", cutoff, "deleted", deleted)
	}
}

func feedFromSnapshot(snapshot fixturecache.Snapshot, fromCache bool, message string) FixtureFeed {
	fixtures := snapshot.Fixtures
	if fixtures == nil {
		fixtures = []fixture.Fixture{}
	}
	grouped := snapshot.FixturesByLeague
	if grouped == nil {
		grouped = map[string][]fixture.Fixture{}
	}
	if message == "" {
		message = snapshot.Message
	}

	return FixtureFeed{
		Fixtures:         fixtures,
		FixturesByLeague: grouped,
		Date:             snapshot.CacheDate,
		FromCache:        fromCache,
		APICallsToday:    snapshot.APICallsCount,
		Message:          message,
	}
}

func emptyFeed(day, message, detail string) FixtureFeed {
	return FixtureFeed{
		Fixtures:         []fixture.Fixture{},
		FixturesByLeague: map[string][]fixture.Fixture{},
		Date:             day,
		Message:          message,
		ErrorDetail:      detail,
	}
}
