package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/sunnygoyal1983/play11-w-sub002/external/feed"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/config"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/contest"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/match"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/settlement"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/team"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/infrastructure/repository/memory"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/infrastructure/repository/postgres"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/interfaces/httpapi"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/jobs"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/id"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/resilience"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/usecase"

	_ "github.com/lib/pq"
)

// App bundles the wired HTTP server, the reconciliation scheduler and the
// shared database handle so main can manage their lifecycles.
type App struct {
	Server    *http.Server
	Scheduler *jobs.Scheduler
	DB        *sqlx.DB
}

// New wires repositories, services and the HTTP surface. With DB_URL unset
// the service runs entirely on seeded in-memory repositories, which is how
// local development and most tests exercise it.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger, httpLogger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if httpLogger == nil {
		httpLogger = slog.Default()
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var provider usecase.StatsProvider
	if cfg.FeedEnabled {
		provider = feed.NewClient(feed.ClientConfig{
			BaseURL:    cfg.FeedBaseURL,
			Token:      cfg.FeedToken,
			Timeout:    cfg.FeedTimeout,
			MaxRetries: cfg.FeedMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FeedCircuitEnabled,
				FailureThreshold: cfg.FeedCircuitFailureCount,
				OpenTimeout:      cfg.FeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
			},
		})
	}

	idGen := id.NewRandomGenerator()

	settlementSvc := usecase.NewSettlementService(
		repos.contest,
		repos.match,
		repos.team,
		repos.player,
		repos.stats,
		repos.wallet,
		repos.settlement,
		idGen,
		logger,
		usecase.SettlementConfig{MaxWorkers: cfg.SettlementMaxWorkers},
	)
	reconcileSvc := usecase.NewReconcileService(
		repos.contest,
		repos.wallet,
		repos.settlement,
		idGen,
		logger,
		usecase.ReconcileConfig{
			WindowDays: cfg.ReconcileWindowDays,
			LeaseTTL:   cfg.ReconcileLeaseTTL,
		},
	)
	prizeSvc := usecase.NewPrizeService()
	ingestionSvc := usecase.NewIngestionService(repos.stats, repos.match, provider, logger)
	walletSvc := usecase.NewWalletService(repos.wallet)
	teamSvc := usecase.NewTeamService(repos.team, repos.match, repos.player, idGen)

	handler := httpapi.NewHandler(settlementSvc, reconcileSvc, prizeSvc, ingestionSvc, walletSvc, teamSvc, httpLogger)
	router := httpapi.NewRouter(handler, httpLogger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var scheduler *jobs.Scheduler
	if cfg.SweepEnabled {
		scheduler = jobs.NewScheduler(reconcileSvc, jobs.SchedulerConfig{
			Spec:       cfg.SweepCronSpec,
			RunTimeout: cfg.SweepRunTimeout,
			Logger:     logger,
		})
	}

	return &App{
		Server:    server,
		Scheduler: scheduler,
		DB:        db,
	}, nil
}

type repositories struct {
	contest    contest.Repository
	match      match.Repository
	team       team.Repository
	player     player.Repository
	stats      stats.Repository
	wallet     wallet.Repository
	settlement settlement.Repository
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if cfg.DBURL == "" {
		logger.Info("database url not set, using in-memory repositories")
		return repositories{
			contest:    memory.NewContestRepository(memory.SeedContests(), memory.SeedEntries()),
			match:      memory.NewMatchRepository(memory.SeedMatches()),
			team:       memory.NewTeamRepository(memory.SeedTeams()),
			player:     memory.NewPlayerRepository(memory.SeedPlayers()),
			stats:      memory.NewStatsRepository(nil),
			wallet:     memory.NewWalletRepository(),
			settlement: memory.NewSettlementRepository(),
		}, nil, nil
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.ConnectContext(ctx, "postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.SeedOnBoot {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	return repositories{
		contest:    postgres.NewContestRepository(db),
		match:      postgres.NewMatchRepository(db),
		team:       postgres.NewTeamRepository(db),
		player:     postgres.NewPlayerRepository(db),
		stats:      postgres.NewStatsRepository(db),
		wallet:     postgres.NewWalletRepository(db),
		settlement: postgres.NewSettlementRepository(db),
	}, db, nil
}
