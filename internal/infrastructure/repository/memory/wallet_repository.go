package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
)

type WalletRepository struct {
	mu           sync.RWMutex
	transactions []wallet.LedgerTransaction
	winsByEntry  map[string]wallet.LedgerTransaction
	balances     map[string]wallet.Balance
	now          func() time.Time
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		winsByEntry: make(map[string]wallet.LedgerTransaction),
		balances:    make(map[string]wallet.Balance),
		now:         time.Now,
	}
}

func (r *WalletRepository) CreditContestWin(_ context.Context, item wallet.LedgerTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := winKey(item.ContestID, item.EntryID)
	if _, exists := r.winsByEntry[key]; exists {
		return wallet.ErrDuplicateTransaction
	}

	r.winsByEntry[key] = item
	r.transactions = append(r.transactions, item)

	balance := r.balances[item.UserID]
	balance.UserID = item.UserID
	balance.Amount += item.Amount
	balance.UpdatedAt = r.now().UTC()
	r.balances[item.UserID] = balance
	return nil
}

func (r *WalletRepository) GetContestWinByEntry(_ context.Context, contestID, entryID string) (wallet.LedgerTransaction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.winsByEntry[winKey(contestID, entryID)]
	return item, ok, nil
}

func (r *WalletRepository) GetBalance(_ context.Context, userID string) (wallet.Balance, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	balance, ok := r.balances[userID]
	return balance, ok, nil
}

func (r *WalletRepository) ListTransactionsByUser(_ context.Context, userID string, limit int) ([]wallet.LedgerTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]wallet.LedgerTransaction, 0, limit)
	for i := len(r.transactions) - 1; i >= 0 && len(out) < limit; i-- {
		if r.transactions[i].UserID == userID {
			out = append(out, r.transactions[i])
		}
	}
	return out, nil
}

func winKey(contestID, entryID string) string {
	return contestID + "|" + entryID
}
