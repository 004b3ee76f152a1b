package stats

import "context"

// Repository describes match statistics persistence needs from use cases.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]PlayerMatchStat, error)
	UpsertBatch(ctx context.Context, matchID string, rows []PlayerMatchStat) error
}
