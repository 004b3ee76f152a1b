package wallet

import (
	"errors"
	"time"
)

// ErrDuplicateTransaction is returned when a credit with the same dedupe
// identity (type, contest, entry) already exists. Callers treat it as proof
// the payout already happened, not as a failure.
var ErrDuplicateTransaction = errors.New("duplicate wallet transaction")

type TransactionType string

const (
	TransactionContestWin  TransactionType = "contest_win"
	TransactionContestJoin TransactionType = "contest_join"
	TransactionDeposit     TransactionType = "deposit"
	TransactionWithdrawal  TransactionType = "withdrawal"
	TransactionBonus       TransactionType = "bonus"
	TransactionRefund      TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionReversed  TransactionStatus = "reversed"
)

// LedgerTransaction is an append-only wallet movement. Amount is signed in
// minor units: credits positive, debits negative. ContestID and EntryID are
// set only for contest-scoped types and back the payout dedupe constraint.
type LedgerTransaction struct {
	ID          string
	UserID      string
	Type        TransactionType
	Status      TransactionStatus
	Amount      int64
	ContestID   string
	EntryID     string
	Description string
	CreatedAt   time.Time
}

// IsContestWin reports whether the transaction is a settlement payout for
// the given entry.
func (t LedgerTransaction) IsContestWin(contestID, entryID string) bool {
	return t.Type == TransactionContestWin && t.ContestID == contestID && t.EntryID == entryID
}

// Balance is the current wallet position for a user, derived from the
// ledger and cached as a running total.
type Balance struct {
	UserID    string
	Amount    int64
	UpdatedAt time.Time
}
