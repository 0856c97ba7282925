package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/betmetrics/betmetrics-api/external/apifootball"
	"github.com/betmetrics/betmetrics-api/internal/config"
	"github.com/betmetrics/betmetrics-api/internal/domain/bet"
	"github.com/betmetrics/betmetrics-api/internal/domain/deposit"
	"github.com/betmetrics/betmetrics-api/internal/domain/fixturecache"
	"github.com/betmetrics/betmetrics-api/internal/domain/leagues"
	"github.com/betmetrics/betmetrics-api/internal/domain/teamstats"
	"github.com/betmetrics/betmetrics-api/internal/infrastructure/account/gotrue"
	cacherepo "github.com/betmetrics/betmetrics-api/internal/infrastructure/repository/cache"
	"github.com/betmetrics/betmetrics-api/internal/infrastructure/repository/memory"
	"github.com/betmetrics/betmetrics-api/internal/infrastructure/repository/postgres"
	"github.com/betmetrics/betmetrics-api/internal/interfaces/httpapi"
	basecache "github.com/betmetrics/betmetrics-api/internal/platform/cache"
	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
	"github.com/betmetrics/betmetrics-api/internal/platform/resilience"
	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. When DB_URL is empty the service runs entirely on
// in-memory repositories, which is how local development works.
// The returned cleanup closes the database pool, when one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		db            *sqlx.DB
		snapshotRepo  fixturecache.Repository
		betRepo       bet.Repository
		depositRepo   deposit.Repository
		teamStatsRepo teamstats.Repository
	)

	if cfg.DBURL != "" {
		opened, err := openDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		db = opened

		snapshotRepo = postgres.NewFixtureSnapshotRepository(db)
		betRepo = postgres.NewBetRepository(db)
		depositRepo = postgres.NewDepositRepository(db)
		logger.Info("repositories backed by postgres", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		snapshotRepo = memory.NewFixtureSnapshotRepository()
		betRepo = memory.NewBetRepository()
		depositRepo = memory.NewDepositRepository()
		logger.Info("repositories backed by memory", "reason", "DB_URL empty")
	}

	// Team statistics are a curated in-process dataset in both modes.
	teamStatsRepo = memory.NewTeamStatsRepository(memory.SeedTeamStats())

	var memo *basecache.Store
	if cfg.CacheEnabled {
		memo = basecache.NewStore(cfg.CacheTTL)
		teamStatsRepo = cacherepo.NewTeamStatsRepository(teamStatsRepo, memo)
	}

	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		APIKey:     cfg.APIFootballKey,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})

	fixtureSvc := usecase.NewFixtureService(
		snapshotRepo,
		provider,
		leagues.Default(),
		usecase.FixtureServiceConfig{RetentionDays: cfg.FixtureRetentionDays},
		logger,
	)
	analysisSvc := usecase.NewAnalysisService(teamStatsRepo, memo, logger)
	betSvc := usecase.NewBetService(betRepo, nil, nil, logger)
	bankrollSvc := usecase.NewBankrollService(depositRepo, betRepo, nil, nil, logger)

	verifier := gotrue.NewClient(
		&http.Client{Timeout: cfg.GoTrueTimeout},
		cfg.GoTrueBaseURL,
		cfg.GoTrueAnonKey,
		logger,
	)

	handler := httpapi.NewHandler(fixtureSvc, analysisSvc, betSvc, bankrollSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() error {
		if db != nil {
			return db.Close()
		}
		return nil
	}

	return server, cleanup, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}
