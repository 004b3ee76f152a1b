package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/contest"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/match"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/points"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/prize"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/settlement"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/team"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/id"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/resilience"
)

const defaultSettlementWorkers = 8

type SettlementConfig struct {
	MaxWorkers int
}

type SettlementResult struct {
	ContestID      string `json:"contest_id"`
	AlreadySettled bool   `json:"already_settled"`
	EntryCount     int    `json:"entry_count"`
	RankedCount    int    `json:"ranked_count"`
	PaidCount      int    `json:"paid_count"`
	FailedCount    int    `json:"failed_count"`
}

// SettlementService drives a completed contest from raw stats to paid-out
// entries: recompute points, rank, assign prizes, credit winners. Each step
// is idempotent so a crashed run can simply be retried.
type SettlementService struct {
	contestRepo    contest.Repository
	matchRepo      match.Repository
	teamRepo       team.Repository
	playerRepo     player.Repository
	statsRepo      stats.Repository
	walletRepo     wallet.Repository
	settlementRepo settlement.Repository
	idGen          id.Generator
	logger         *logging.Logger
	settleFlight   resilience.SingleFlight
	maxWorkers     int
	now            func() time.Time
}

func NewSettlementService(
	contestRepo contest.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	statsRepo stats.Repository,
	walletRepo wallet.Repository,
	settlementRepo settlement.Repository,
	idGen id.Generator,
	logger *logging.Logger,
	cfg SettlementConfig,
) *SettlementService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = defaultSettlementWorkers
	}

	return &SettlementService{
		contestRepo:    contestRepo,
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		statsRepo:      statsRepo,
		walletRepo:     walletRepo,
		settlementRepo: settlementRepo,
		idGen:          idGen,
		logger:         logger,
		maxWorkers:     cfg.MaxWorkers,
		now:            time.Now,
	}
}

// SettleContest settles one contest end to end. Concurrent calls for the
// same contest collapse into a single in-process run; a duplicate run on
// another instance is stopped by the wallet dedupe constraint instead.
func (s *SettlementService) SettleContest(ctx context.Context, contestID string) (SettlementResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.SettleContest")
	defer span.End()

	contestID = strings.TrimSpace(contestID)
	if contestID == "" {
		return SettlementResult{}, fmt.Errorf("%w: contest id is required", ErrInvalidInput)
	}

	key := "settlement:contest:" + contestID
	value, err, _ := s.settleFlight.Do(key, func() (any, error) {
		return s.settleContestOnce(ctx, contestID)
	})
	if err != nil {
		return SettlementResult{}, err
	}

	result, ok := value.(SettlementResult)
	if !ok {
		return SettlementResult{}, fmt.Errorf("unexpected settlement result type %T", value)
	}
	return result, nil
}

func (s *SettlementService) settleContestOnce(ctx context.Context, contestID string) (SettlementResult, error) {
	item, exists, err := s.contestRepo.GetByID(ctx, contestID)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("get contest for settlement: %w", err)
	}
	if !exists {
		return SettlementResult{}, fmt.Errorf("%w: contest=%s", ErrNotFound, contestID)
	}
	if item.SettledAt != nil {
		return SettlementResult{ContestID: contestID, AlreadySettled: true}, nil
	}

	matchItem, exists, err := s.matchRepo.GetByID(ctx, item.MatchID)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("get match for settlement: %w", err)
	}
	if !exists {
		return SettlementResult{}, fmt.Errorf("%w: match=%s", ErrNotFound, item.MatchID)
	}
	if !matchItem.IsCompleted() {
		return SettlementResult{}, fmt.Errorf("%w: match=%s status=%s is not completed", ErrInvalidInput, matchItem.ID, matchItem.Status)
	}

	entries, err := s.contestRepo.ListEntriesByContest(ctx, contestID)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("list entries for settlement: %w", err)
	}

	result := SettlementResult{ContestID: contestID, EntryCount: len(entries)}
	if len(entries) == 0 {
		if err := s.contestRepo.MarkSettled(ctx, contestID); err != nil {
			return SettlementResult{}, fmt.Errorf("mark empty contest settled: %w", err)
		}
		return result, nil
	}

	if err := s.recomputeEntryPoints(ctx, item.MatchID, entries); err != nil {
		return SettlementResult{}, err
	}

	ranked := contest.RankEntries(entries)
	result.RankedCount = len(ranked)

	tiers, err := prize.GenerateTiers(item.TotalPrize, item.WinnerCount, item.FirstPrize, item.EntryFee)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("%w: generate prize tiers contest=%s: %v", ErrInvalidInput, contestID, err)
	}
	if err := prize.ValidateTiers(tiers, item.TotalPrize, item.WinnerCount); err != nil {
		// Uncovered ranks win zero; keep settling instead of stranding money
		// that is covered.
		s.logger.WarnContext(ctx, "prize breakup failed integrity check",
			"contest_id", contestID,
			"error", err,
		)
	}

	assigned := contest.AssignPrizes(ranked, tiers, item.WinnerCount)

	paid, failed, err := s.creditWinners(ctx, item, assigned)
	if err != nil {
		return SettlementResult{}, err
	}
	result.PaidCount = paid
	result.FailedCount = failed

	if err := s.contestRepo.MarkSettled(ctx, contestID); err != nil {
		return SettlementResult{}, fmt.Errorf("mark contest settled: %w", err)
	}

	s.logger.InfoContext(ctx, "contest settled",
		"contest_id", contestID,
		"entries", result.EntryCount,
		"paid", result.PaidCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

// recomputeEntryPoints rebuilds every entry's fantasy points from the final
// match stats and persists them. Entries whose team cannot be loaded fail
// the whole run: ranking a contest with partial points would be worse than
// retrying later.
func (s *SettlementService) recomputeEntryPoints(ctx context.Context, matchID string, entries []contest.Entry) error {
	statRows, err := s.statsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("list match stats for settlement: %w", err)
	}
	statByPlayer := make(map[string]stats.PlayerMatchStat, len(statRows))
	for _, row := range statRows {
		statByPlayer[row.PlayerID] = row
	}

	players, err := s.playerRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return fmt.Errorf("list match players for settlement: %w", err)
	}
	roleByPlayer := make(map[string]player.Role, len(players))
	for _, row := range players {
		roleByPlayer[row.ID] = row.Role
	}

	teamIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		teamIDs = append(teamIDs, entry.TeamID)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return fmt.Errorf("list teams for settlement: %w", err)
	}
	teamByID := make(map[string]team.FantasyTeam, len(teams))
	for _, row := range teams {
		teamByID[row.ID] = row
	}

	workers := pool.New().WithMaxGoroutines(s.maxWorkers).WithErrors()
	for idx := range entries {
		idx := idx
		workers.Go(func() error {
			entry := entries[idx]
			picked, ok := teamByID[entry.TeamID]
			if !ok {
				return fmt.Errorf("%w: team=%s for entry=%s", ErrNotFound, entry.TeamID, entry.ID)
			}

			total := s.teamPoints(ctx, picked, statByPlayer, roleByPlayer)
			if err := s.contestRepo.UpdateEntryPoints(ctx, entry.ID, total); err != nil {
				return fmt.Errorf("update entry points entry=%s: %w", entry.ID, err)
			}
			entries[idx].Points = total
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return fmt.Errorf("recompute entry points match=%s: %w", matchID, err)
	}

	return nil
}

// teamPoints sums the scored points of every picked player. A player with
// no stat row contributes zero; a player with no roster record is skipped
// because role-dependent rules cannot be applied to it.
func (s *SettlementService) teamPoints(
	ctx context.Context,
	picked team.FantasyTeam,
	statByPlayer map[string]stats.PlayerMatchStat,
	roleByPlayer map[string]player.Role,
) float64 {
	total := 0.0
	for _, playerID := range picked.PlayerIDs {
		role, ok := roleByPlayer[playerID]
		if !ok {
			s.logger.WarnContext(ctx, "team references unknown player, scoring zero",
				"team_id", picked.ID,
				"player_id", playerID,
			)
			continue
		}

		captaincy := points.CaptaincyNone
		switch {
		case picked.IsCaptain(playerID):
			captaincy = points.CaptaincyCaptain
		case picked.IsViceCaptain(playerID):
			captaincy = points.CaptaincyVice
		}

		total += points.Compute(statByPlayer[playerID], role, captaincy)
	}
	return total
}

// creditWinners persists every entry's settlement outcome and pays the
// winning ones. Payout failures are logged for the sweeper and do not stop
// the batch; a duplicate credit means the money already landed.
func (s *SettlementService) creditWinners(ctx context.Context, item contest.Contest, assigned []contest.Entry) (int, int, error) {
	paid := 0
	failed := 0
	now := s.now().UTC()

	for idx := range assigned {
		entry := assigned[idx]

		if entry.WonAmount() <= 0 {
			if err := s.contestRepo.UpdateEntrySettlement(ctx, entry); err != nil {
				return paid, failed, fmt.Errorf("persist non-winning entry=%s: %w", entry.ID, err)
			}
			continue
		}

		txID, err := s.idGen.NewID()
		if err != nil {
			return paid, failed, fmt.Errorf("generate transaction id: %w", err)
		}

		creditErr := s.walletRepo.CreditContestWin(ctx, wallet.LedgerTransaction{
			ID:          txID,
			UserID:      entry.UserID,
			Type:        wallet.TransactionContestWin,
			Status:      wallet.TransactionCompleted,
			Amount:      entry.WonAmount(),
			ContestID:   item.ID,
			EntryID:     entry.ID,
			Description: fmt.Sprintf("Winnings for %s (rank %d)", item.Name, entry.Rank),
			CreatedAt:   now,
		})

		switch {
		case creditErr == nil:
			entry.Status = contest.StatusPaid
			paid++
		case errors.Is(creditErr, wallet.ErrDuplicateTransaction):
			s.logger.DebugContext(ctx, "contest win already credited",
				"contest_id", item.ID,
				"entry_id", entry.ID,
			)
			entry.Status = contest.StatusPaid
			paid++
		default:
			s.logger.WarnContext(ctx, "credit contest win failed",
				"contest_id", item.ID,
				"entry_id", entry.ID,
				"user_id", entry.UserID,
				"error", creditErr,
			)
			entry.Status = contest.StatusFailed
			failed++

			failureID, idErr := s.idGen.NewID()
			if idErr != nil {
				return paid, failed, fmt.Errorf("generate failure id: %w", idErr)
			}
			if recordErr := s.settlementRepo.RecordFailure(ctx, settlement.FailureLog{
				ID:        failureID,
				ContestID: item.ID,
				EntryID:   entry.ID,
				UserID:    entry.UserID,
				Amount:    entry.WonAmount(),
				Rank:      entry.Rank,
				Reason:    creditErr.Error(),
				CreatedAt: now,
			}); recordErr != nil {
				return paid, failed, fmt.Errorf("record payout failure entry=%s: %w", entry.ID, recordErr)
			}
		}

		if err := s.contestRepo.UpdateEntrySettlement(ctx, entry); err != nil {
			return paid, failed, fmt.Errorf("persist settled entry=%s: %w", entry.ID, err)
		}
	}

	return paid, failed, nil
}
