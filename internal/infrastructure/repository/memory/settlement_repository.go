package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/settlement"
)

type SettlementRepository struct {
	mu       sync.Mutex
	failures []settlement.FailureLog
	lease    settlement.SweeperLease
	now      func() time.Time
}

func NewSettlementRepository() *SettlementRepository {
	return &SettlementRepository{now: time.Now}
}

func (r *SettlementRepository) RecordFailure(_ context.Context, failure settlement.FailureLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.failures {
		if existing.ID == failure.ID {
			return nil
		}
	}
	failure.CreatedAt = r.now().UTC()
	r.failures = append(r.failures, failure)
	return nil
}

func (r *SettlementRepository) ListUnprocessedFailures(_ context.Context, limit int) ([]settlement.FailureLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]settlement.FailureLog, 0, limit)
	for _, failure := range r.failures {
		if failure.Processed {
			continue
		}
		out = append(out, failure)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *SettlementRepository) MarkFailureProcessed(_ context.Context, failureID, processedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, failure := range r.failures {
		if failure.ID != failureID || failure.Processed {
			continue
		}
		failure.Processed = true
		failure.ProcessedAt = r.now().UTC()
		failure.ProcessedBy = processedBy
		r.failures[i] = failure
	}
	return nil
}

func (r *SettlementRepository) AcquireLease(_ context.Context, owner string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	if r.lease.Owner != "" && r.lease.Owner != owner && r.lease.HeldAt(now) {
		return false, nil
	}
	r.lease = settlement.SweeperLease{Owner: owner, ExpiresAt: now.Add(ttl)}
	return true, nil
}

func (r *SettlementRepository) ReleaseLease(_ context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lease.Owner == owner {
		r.lease.ExpiresAt = time.Time{}
	}
	return nil
}
