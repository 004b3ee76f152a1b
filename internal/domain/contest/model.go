package contest

import (
	"fmt"
	"time"
)

// EntryStatus is the settlement state machine for one contest entry.
// An entry is only terminal in StatusPaid; StatusFailed carries a recoverable
// failure record for the reconciliation sweeper.
type EntryStatus string

const (
	StatusPending       EntryStatus = "pending"
	StatusRanked        EntryStatus = "ranked"
	StatusPrizeAssigned EntryStatus = "prize_assigned"
	StatusPaid          EntryStatus = "paid"
	StatusFailed        EntryStatus = "failed"
)

// Contest is a prize pool tied to one match.
type Contest struct {
	ID          string
	MatchID     string
	Name        string
	EntryFee    int64
	TotalPrize  int64
	FirstPrize  int64
	WinnerCount int
	MaxEntries  int
	SettledAt   *time.Time
	CreatedAt   time.Time
}

func (c Contest) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("contest id is required")
	}
	if c.MatchID == "" {
		return fmt.Errorf("contest match id is required")
	}
	if c.TotalPrize <= 0 {
		return fmt.Errorf("contest total prize must be greater than zero")
	}
	if c.WinnerCount <= 0 {
		return fmt.Errorf("contest winner count must be greater than zero")
	}

	return nil
}

// Entry links one fantasy team to one contest.
//
// WinAmount is nil until settlement assigns a prize: a zero value is a real
// non-winning outcome and only appears after settlement ran, never before.
type Entry struct {
	ID        string
	ContestID string
	TeamID    string
	UserID    string
	Points    float64
	Rank      int
	WinAmount *int64
	Status    EntryStatus
	CreatedAt time.Time
}

func (e Entry) IsSettled() bool {
	return e.Status == StatusPaid || (e.Status == StatusPrizeAssigned && e.WinAmount != nil && *e.WinAmount == 0)
}

// WonAmount reports the assigned prize, zero when unassigned or non-winning.
func (e Entry) WonAmount() int64 {
	if e.WinAmount == nil {
		return 0
	}
	return *e.WinAmount
}
