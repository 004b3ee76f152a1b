package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/usecase"
)

const defaultRunTimeout = 10 * time.Minute

// Scheduler runs the reconciliation sweeper on a fixed cron schedule. The
// persisted lease inside the sweeper keeps overlapping runs (and other
// instances) from racing, so the schedule itself can stay dumb.
type Scheduler struct {
	cron             *cron.Cron
	reconcileService *usecase.ReconcileService
	logger           *logging.Logger
	spec             string
	runTimeout       time.Duration
}

type SchedulerConfig struct {
	// Spec is a standard five-field cron expression.
	Spec       string
	RunTimeout time.Duration
	Logger     *logging.Logger
}

func NewScheduler(reconcileService *usecase.ReconcileService, cfg SchedulerConfig) *Scheduler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	spec := cfg.Spec
	if spec == "" {
		spec = "*/30 * * * *"
	}
	runTimeout := cfg.RunTimeout
	if runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}

	return &Scheduler{
		cron:             cron.New(cron.WithLocation(time.UTC)),
		reconcileService: reconcileService,
		logger:           logger,
		spec:             spec,
		runTimeout:       runTimeout,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
		defer cancel()

		result, err := s.reconcileService.Reconcile(runCtx, 0)
		if err != nil {
			s.logger.ErrorContext(runCtx, "scheduled reconciliation sweep failed", "error", err)
			return
		}
		if result.Skipped {
			s.logger.DebugContext(runCtx, "scheduled reconciliation sweep skipped, lease held elsewhere")
			return
		}
		s.logger.InfoContext(runCtx, "scheduled reconciliation sweep finished",
			"scanned", result.ScannedCount,
			"issues_found", result.IssuesFound,
			"issues_fixed", result.IssuesFixed,
		)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.InfoContext(ctx, "reconciliation scheduler started", "spec", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}
