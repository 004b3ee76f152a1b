package settlement

import (
	"context"
	"time"
)

// Repository persists settlement failure logs and the sweeper lease.
type Repository interface {
	RecordFailure(ctx context.Context, failure FailureLog) error
	ListUnprocessedFailures(ctx context.Context, limit int) ([]FailureLog, error)
	MarkFailureProcessed(ctx context.Context, failureID, processedBy string) error

	// AcquireLease takes the sweeper lease when it is free or expired. It
	// returns false when another owner still holds it.
	AcquireLease(ctx context.Context, owner string, ttl time.Duration) (bool, error)
	ReleaseLease(ctx context.Context, owner string) error
}
