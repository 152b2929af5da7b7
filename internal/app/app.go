package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/priyanshusaraf/fantasy-arena/external/matchfeed"
	"github.com/priyanshusaraf/fantasy-arena/internal/config"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/bonus"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/match"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/points"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	"github.com/priyanshusaraf/fantasy-arena/internal/infrastructure/account/gatekeeper"
	cacherepo "github.com/priyanshusaraf/fantasy-arena/internal/infrastructure/repository/cache"
	"github.com/priyanshusaraf/fantasy-arena/internal/infrastructure/repository/memory"
	"github.com/priyanshusaraf/fantasy-arena/internal/infrastructure/repository/postgres"
	"github.com/priyanshusaraf/fantasy-arena/internal/interfaces/httpapi"
	"github.com/priyanshusaraf/fantasy-arena/internal/platform/cache"
	idgen "github.com/priyanshusaraf/fantasy-arena/internal/platform/id"
	"github.com/priyanshusaraf/fantasy-arena/internal/platform/resilience"
	"github.com/priyanshusaraf/fantasy-arena/internal/usecase"
)

// staticMatchdayLabel is served by the in-memory feed so matchday-scoped
// edit limits still work without the feed service.
const staticMatchdayLabel = "matchday-1"

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	var (
		contestRepo contest.Repository
		teamRepo    roster.Repository
		matchRepo   match.Repository
	)

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		contestRepo = postgres.NewContestRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
	default:
		contestRepo = memory.NewContestRepository(memory.SeedContests()...)
		teamRepo = memory.NewTeamRepository()
		matchRepo = memory.NewMatchRepository()
	}

	feed := buildMatchFeed(cfg)

	var snapshots *cache.Store
	if cfg.CacheEnabled {
		snapshots = cache.NewStore(cfg.CacheTTL)
	}

	// Contest rows barely change once a contest is open, so postgres reads
	// go through the read-through cache. The memory driver needs no cache.
	if snapshots != nil && cfg.StorageDriver == config.StoragePostgres {
		contestRepo = cacherepo.NewContestRepository(contestRepo, snapshots)
	}

	pointsCfg := points.DefaultConfig()
	bonusRules := bonus.DefaultRules()

	contestSvc := usecase.NewContestService(contestRepo, teamRepo, logger)
	rosterSvc := usecase.NewRosterService(contestRepo, teamRepo, feed, idgen.NewRandomGenerator(), logger)
	leaderboardSvc := usecase.NewLeaderboardService(contestRepo, teamRepo, snapshots, logger)
	scoringSvc := usecase.NewScoringService(contestRepo, teamRepo, matchRepo, pointsCfg, bonusRules, logger)
	scoringSvc.SetParallelism(cfg.ScoringParallelism)
	settlementSvc := usecase.NewSettlementService(contestRepo, teamRepo, matchRepo, leaderboardSvc, pointsCfg, bonusRules, logger)
	settlementSvc.SetMaxWorkers(cfg.ResettleWorkers)

	verifier := gatekeeper.NewClient(
		&http.Client{Timeout: cfg.GatekeeperTimeout},
		cfg.GatekeeperBaseURL,
		cfg.GatekeeperIntrospectPath,
		cfg.GatekeeperAdminKey,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.GatekeeperCircuitEnabled,
			FailureThreshold: cfg.GatekeeperCircuitFailureCount,
			OpenTimeout:      cfg.GatekeeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GatekeeperCircuitHalfOpenMaxReq,
		},
		logger,
	)

	handler := httpapi.NewHandler(contestSvc, rosterSvc, scoringSvc, leaderboardSvc, settlementSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return db, nil
}

func buildMatchFeed(cfg config.Config) usecase.MatchFeed {
	if !cfg.MatchFeedEnabled {
		return memory.NewStaticFeed(memory.SeedPlayerPrices(), staticMatchdayLabel)
	}

	return matchfeed.NewClient(matchfeed.ClientConfig{
		BaseURL:    cfg.MatchFeedBaseURL,
		Token:      cfg.MatchFeedToken,
		Timeout:    cfg.MatchFeedTimeout,
		MaxRetries: cfg.MatchFeedMaxRetries,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.MatchFeedCircuitEnabled,
			FailureThreshold: cfg.MatchFeedCircuitFailureCount,
			OpenTimeout:      cfg.MatchFeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.MatchFeedCircuitHalfOpenMaxReq,
		},
	})
}
