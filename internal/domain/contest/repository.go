package contest

import "context"

// Repository describes contest and entry persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, contestID string) (Contest, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]Contest, error)
	MarkSettled(ctx context.Context, contestID string) error

	ListEntriesByContest(ctx context.Context, contestID string) ([]Entry, error)
	// ListWinningEntries returns entries with an assigned positive win amount
	// across all contests settled within the trailing window, newest first.
	ListWinningEntries(ctx context.Context, windowDays int) ([]Entry, error)
	UpdateEntryPoints(ctx context.Context, entryID string, points float64) error
	UpdateEntrySettlement(ctx context.Context, entry Entry) error
}
