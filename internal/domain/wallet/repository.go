package wallet

import "context"

// Repository persists the wallet ledger and running balances.
type Repository interface {
	// CreditContestWin appends a contest_win ledger row and bumps the user
	// balance in one atomic step. A second call with the same contest and
	// entry returns ErrDuplicateTransaction without changing anything.
	CreditContestWin(ctx context.Context, tx LedgerTransaction) error

	// GetContestWinByEntry fetches the payout row for an entry if it exists.
	GetContestWinByEntry(ctx context.Context, contestID, entryID string) (LedgerTransaction, bool, error)

	GetBalance(ctx context.Context, userID string) (Balance, bool, error)
	ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]LedgerTransaction, error)
}
