package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/match"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/logging"
)

// StatsProvider pulls scorecard rows from the upstream data feed.
type StatsProvider interface {
	FetchMatchStats(ctx context.Context, matchID string) ([]stats.PlayerMatchStat, error)
}

// IngestionService accepts scorecard snapshots, either pushed over the
// internal API or pulled from the feed, and persists them for settlement.
type IngestionService struct {
	statsRepo stats.Repository
	matchRepo match.Repository
	provider  StatsProvider
	logger    *logging.Logger
	now       func() time.Time
}

func NewIngestionService(
	statsRepo stats.Repository,
	matchRepo match.Repository,
	provider StatsProvider,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		statsRepo: statsRepo,
		matchRepo: matchRepo,
		provider:  provider,
		logger:    logger,
		now:       time.Now,
	}
}

// IngestPlayerStats validates and upserts a stat snapshot for one match.
// Re-sent snapshots overwrite earlier ones; stats of an archived match are
// frozen and rejected.
func (s *IngestionService) IngestPlayerStats(ctx context.Context, matchID string, rows []stats.PlayerMatchStat) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestPlayerStats")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return 0, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: stat rows are required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("get match for ingestion: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if item.ArchivedAt != nil {
		return 0, fmt.Errorf("%w: match=%s is archived, stats are frozen", ErrInvalidInput, matchID)
	}

	now := s.now().UTC()
	cleaned := make([]stats.PlayerMatchStat, 0, len(rows))
	for _, row := range rows {
		row.MatchID = matchID
		row.PlayerID = strings.TrimSpace(row.PlayerID)
		if row.PlayerID == "" {
			return 0, fmt.Errorf("%w: player id is required on every stat row", ErrInvalidInput)
		}
		if err := validateStatRow(row); err != nil {
			return 0, fmt.Errorf("%w: player=%s: %v", ErrInvalidInput, row.PlayerID, err)
		}
		row.UpdatedAt = now
		cleaned = append(cleaned, row)
	}

	if err := s.statsRepo.UpsertBatch(ctx, matchID, cleaned); err != nil {
		return 0, fmt.Errorf("upsert player match stats: %w", err)
	}

	return len(cleaned), nil
}

// SyncFromFeed pulls the latest scorecard for a match from the upstream
// provider and ingests it.
func (s *IngestionService) SyncFromFeed(ctx context.Context, matchID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.SyncFromFeed")
	defer span.End()

	if s.provider == nil {
		return 0, fmt.Errorf("%w: stats feed is not configured", ErrDependencyUnavailable)
	}

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return 0, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	rows, err := s.provider.FetchMatchStats(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("%w: fetch match stats from feed: %v", ErrDependencyUnavailable, err)
	}
	if len(rows) == 0 {
		s.logger.DebugContext(ctx, "feed returned no stat rows", "match_id", matchID)
		return 0, nil
	}

	return s.IngestPlayerStats(ctx, matchID, rows)
}

// UpdateMatchStatus moves a match through its lifecycle. Settlement only
// runs once the match reaches completed.
func (s *IngestionService) UpdateMatchStatus(ctx context.Context, matchID string, rawStatus string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.UpdateMatchStatus")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	status, ok := match.ParseStatus(rawStatus)
	if !ok {
		return fmt.Errorf("%w: unsupported match status %q", ErrInvalidInput, rawStatus)
	}

	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match for status update: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	if err := s.matchRepo.UpdateStatus(ctx, matchID, status); err != nil {
		return fmt.Errorf("update match status: %w", err)
	}
	return nil
}

func validateStatRow(row stats.PlayerMatchStat) error {
	if row.Runs < 0 || row.BallsFaced < 0 || row.Fours < 0 || row.Sixes < 0 {
		return fmt.Errorf("batting figures cannot be negative")
	}
	if row.Wickets < 0 || row.BowledLBW < 0 || row.Overs < 0 || row.Maidens < 0 || row.RunsConceded < 0 {
		return fmt.Errorf("bowling figures cannot be negative")
	}
	if row.Catches < 0 || row.Stumpings < 0 || row.RunOutsDirect < 0 || row.RunOutsAssist < 0 {
		return fmt.Errorf("fielding figures cannot be negative")
	}
	if balls := int(row.Overs*10) % 10; balls > 5 {
		return fmt.Errorf("overs fraction %0.1f is not valid cricket notation", row.Overs)
	}
	if row.BowledLBW > row.Wickets {
		return fmt.Errorf("bowled/lbw dismissals exceed wickets")
	}
	return nil
}
