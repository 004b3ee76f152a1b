package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/contest"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/settlement"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/id"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
)

const (
	defaultReconcileWindowDays = 7
	defaultReconcileWorkers    = 4
	defaultReconcileLeaseTTL   = 5 * time.Minute
	defaultFailureBatchSize    = 200
)

type ReconcileConfig struct {
	WindowDays int
	MaxWorkers int
	LeaseTTL   time.Duration
	// Owner identifies this instance on the persisted lease. Defaults to the
	// hostname plus a random suffix.
	Owner string
}

type ReconcileResult struct {
	Skipped      bool `json:"skipped"`
	WindowDays   int  `json:"window_days"`
	ScannedCount int  `json:"scanned_count"`
	IssuesFound  int  `json:"issues_found"`
	IssuesFixed  int  `json:"issues_fixed"`
}

// ReconcileService is the safety net behind settlement: it re-checks every
// winning entry in a trailing window against the wallet ledger, repairs
// missed credits, and drains the payout failure log. Only one instance runs
// at a time, guarded by a persisted lease that expires on its own if the
// holder dies.
type ReconcileService struct {
	contestRepo    contest.Repository
	walletRepo     wallet.Repository
	settlementRepo settlement.Repository
	idGen          id.Generator
	logger         *logging.Logger
	cfg            ReconcileConfig
	now            func() time.Time
}

func NewReconcileService(
	contestRepo contest.Repository,
	walletRepo wallet.Repository,
	settlementRepo settlement.Repository,
	idGen id.Generator,
	logger *logging.Logger,
	cfg ReconcileConfig,
) *ReconcileService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = defaultReconcileWindowDays
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = defaultReconcileWorkers
	}
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = defaultReconcileLeaseTTL
	}
	if cfg.Owner == "" {
		cfg.Owner = leaseOwnerName(idGen)
	}

	return &ReconcileService{
		contestRepo:    contestRepo,
		walletRepo:     walletRepo,
		settlementRepo: settlementRepo,
		idGen:          idGen,
		logger:         logger,
		cfg:            cfg,
		now:            time.Now,
	}
}

func leaseOwnerName(idGen id.Generator) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "sweeper"
	}
	suffix, err := idGen.NewID()
	if err != nil || len(suffix) < 8 {
		return host
	}
	return host + "-" + suffix[:8]
}

// Reconcile runs one sweep. windowDays overrides the configured window when
// positive. A sweep that cannot take the lease reports Skipped instead of
// failing: another instance is already on it.
func (s *ReconcileService) Reconcile(ctx context.Context, windowDays int) (ReconcileResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.Reconcile")
	defer span.End()

	if windowDays <= 0 {
		windowDays = s.cfg.WindowDays
	}

	acquired, err := s.settlementRepo.AcquireLease(ctx, s.cfg.Owner, s.cfg.LeaseTTL)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("acquire sweeper lease: %w", err)
	}
	if !acquired {
		s.logger.DebugContext(ctx, "sweeper lease held elsewhere, skipping run", "owner", s.cfg.Owner)
		return ReconcileResult{Skipped: true, WindowDays: windowDays}, nil
	}
	defer func() {
		if releaseErr := s.settlementRepo.ReleaseLease(context.WithoutCancel(ctx), s.cfg.Owner); releaseErr != nil {
			s.logger.WarnContext(ctx, "release sweeper lease failed", "owner", s.cfg.Owner, "error", releaseErr)
		}
	}()

	result := ReconcileResult{WindowDays: windowDays}

	scanned, found, fixed, err := s.repairWinningEntries(ctx, windowDays)
	if err != nil {
		return ReconcileResult{}, err
	}
	result.ScannedCount = scanned
	result.IssuesFound += found
	result.IssuesFixed += fixed

	found, fixed, err = s.drainFailureLog(ctx)
	if err != nil {
		return ReconcileResult{}, err
	}
	result.IssuesFound += found
	result.IssuesFixed += fixed

	s.logger.InfoContext(ctx, "reconciliation sweep finished",
		"owner", s.cfg.Owner,
		"window_days", windowDays,
		"scanned", result.ScannedCount,
		"issues_found", result.IssuesFound,
		"issues_fixed", result.IssuesFixed,
	)
	return result, nil
}

// repairWinningEntries cross-checks each winning entry against the wallet:
// a missing credit is paid out, a credited entry stuck outside paid status
// is advanced. Entries are checked concurrently; one broken entry does not
// stop the sweep.
func (s *ReconcileService) repairWinningEntries(ctx context.Context, windowDays int) (int, int, int, error) {
	entries, err := s.contestRepo.ListWinningEntries(ctx, windowDays)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("list winning entries for sweep: %w", err)
	}
	if len(entries) == 0 {
		return 0, 0, 0, nil
	}

	var found atomic.Int32
	var fixed atomic.Int32

	workerCount := s.cfg.MaxWorkers
	if workerCount > len(entries) {
		workerCount = len(entries)
	}
	workers, err := ants.NewPool(workerCount)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("create sweep worker pool: %w", err)
	}
	defer workers.Release()

	var wg sync.WaitGroup
	for _, entry := range entries {
		entry := entry
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			issue, repaired := s.repairEntry(ctx, entry)
			if issue {
				found.Add(1)
			}
			if repaired {
				fixed.Add(1)
			}
		}); err != nil {
			wg.Done()
			return 0, 0, 0, fmt.Errorf("submit sweep task: %w", err)
		}
	}
	wg.Wait()

	return len(entries), int(found.Load()), int(fixed.Load()), nil
}

func (s *ReconcileService) repairEntry(ctx context.Context, entry contest.Entry) (issue bool, repaired bool) {
	if entry.WonAmount() <= 0 {
		return false, false
	}

	_, credited, err := s.walletRepo.GetContestWinByEntry(ctx, entry.ContestID, entry.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "sweep credit lookup failed",
			"contest_id", entry.ContestID,
			"entry_id", entry.ID,
			"error", err,
		)
		return true, false
	}

	if credited {
		if entry.Status == contest.StatusPaid {
			return false, false
		}
		// Money landed but the entry never advanced; finish the state move.
		entry.Status = contest.StatusPaid
		if err := s.contestRepo.UpdateEntrySettlement(ctx, entry); err != nil {
			s.logger.WarnContext(ctx, "sweep status repair failed",
				"entry_id", entry.ID,
				"error", err,
			)
			return true, false
		}
		return true, true
	}

	if err := s.creditEntry(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "sweep credit repair failed",
			"contest_id", entry.ContestID,
			"entry_id", entry.ID,
			"error", err,
		)
		return true, false
	}

	entry.Status = contest.StatusPaid
	if err := s.contestRepo.UpdateEntrySettlement(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "sweep status update failed after credit",
			"entry_id", entry.ID,
			"error", err,
		)
		// The credit is durable and deduped; the next sweep fixes the status.
		return true, true
	}
	return true, true
}

func (s *ReconcileService) creditEntry(ctx context.Context, entry contest.Entry) error {
	txID, err := s.idGen.NewID()
	if err != nil {
		return fmt.Errorf("generate transaction id: %w", err)
	}

	err = s.walletRepo.CreditContestWin(ctx, wallet.LedgerTransaction{
		ID:          txID,
		UserID:      entry.UserID,
		Type:        wallet.TransactionContestWin,
		Status:      wallet.TransactionCompleted,
		Amount:      entry.WonAmount(),
		ContestID:   entry.ContestID,
		EntryID:     entry.ID,
		Description: fmt.Sprintf("Winnings repair (rank %d)", entry.Rank),
		CreatedAt:   s.now().UTC(),
	})
	if err != nil && !errors.Is(err, wallet.ErrDuplicateTransaction) {
		return fmt.Errorf("credit contest win entry=%s: %w", entry.ID, err)
	}
	return nil
}

// drainFailureLog retries payouts that settlement could not land. Processed
// rows are stamped with this sweeper's owner name so a stuck row is easy to
// trace back.
func (s *ReconcileService) drainFailureLog(ctx context.Context) (int, int, error) {
	failures, err := s.settlementRepo.ListUnprocessedFailures(ctx, defaultFailureBatchSize)
	if err != nil {
		return 0, 0, fmt.Errorf("list unprocessed payout failures: %w", err)
	}
	if len(failures) == 0 {
		return 0, 0, nil
	}

	fixed := 0
	for _, failure := range failures {
		entry := contest.Entry{
			ID:        failure.EntryID,
			ContestID: failure.ContestID,
			UserID:    failure.UserID,
			Rank:      failure.Rank,
			WinAmount: &failure.Amount,
			Status:    contest.StatusFailed,
		}

		if err := s.creditEntry(ctx, entry); err != nil {
			s.logger.WarnContext(ctx, "failure log retry did not land",
				"failure_id", failure.ID,
				"entry_id", failure.EntryID,
				"error", err,
			)
			continue
		}

		entry.Status = contest.StatusPaid
		if err := s.contestRepo.UpdateEntrySettlement(ctx, entry); err != nil {
			s.logger.WarnContext(ctx, "failure log status update failed",
				"entry_id", failure.EntryID,
				"error", err,
			)
			continue
		}

		if err := s.settlementRepo.MarkFailureProcessed(ctx, failure.ID, s.cfg.Owner); err != nil {
			s.logger.WarnContext(ctx, "mark payout failure processed failed",
				"failure_id", failure.ID,
				"error", err,
			)
			continue
		}
		fixed++
	}

	return len(failures), fixed, nil
}
