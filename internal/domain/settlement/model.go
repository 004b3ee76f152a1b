package settlement

import "time"

// FailureLog records a payout that could not be credited during settlement.
// The reconciliation sweeper retries unprocessed rows and stamps them once
// the credit lands or is confirmed already present.
type FailureLog struct {
	ID          string
	ContestID   string
	EntryID     string
	UserID      string
	Amount      int64
	Rank        int
	Reason      string
	Processed   bool
	ProcessedAt time.Time
	ProcessedBy string
	CreatedAt   time.Time
}

// SweeperLease is the persisted single-runner guard for the reconciliation
// sweeper. A run holds the lease until ExpiresAt; a crashed runner's lease
// simply times out.
type SweeperLease struct {
	Owner     string
	ExpiresAt time.Time
}

func (l SweeperLease) HeldAt(now time.Time) bool {
	return now.Before(l.ExpiresAt)
}
