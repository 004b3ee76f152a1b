package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
)

func TestWalletService_GetBalance(t *testing.T) {
	t.Parallel()

	repo := &stubWalletRepository{
		byKey:       map[string]wallet.LedgerTransaction{},
		creditCalls: map[string]int{},
	}
	repo.seed(wallet.LedgerTransaction{
		ID:        "wtx-1",
		UserID:    "user-1",
		Type:      wallet.TransactionContestWin,
		Status:    wallet.TransactionCompleted,
		Amount:    500000,
		ContestID: "c1",
		EntryID:   "e1",
	})

	service := NewWalletService(repo)

	balance, err := service.GetBalance(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, int64(500000), balance.Amount)

	// Unknown user gets an empty wallet, not a not-found error.
	balance, err = service.GetBalance(context.Background(), "user-ghost")
	require.NoError(t, err)
	require.Equal(t, "user-ghost", balance.UserID)
	require.Zero(t, balance.Amount)

	_, err = service.GetBalance(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestWalletService_ListTransactions(t *testing.T) {
	t.Parallel()

	repo := &stubWalletRepository{
		byKey:       map[string]wallet.LedgerTransaction{},
		creditCalls: map[string]int{},
	}
	for _, tx := range []wallet.LedgerTransaction{
		{ID: "wtx-1", UserID: "user-1", Type: wallet.TransactionContestWin, Amount: 100, ContestID: "c1", EntryID: "e1"},
		{ID: "wtx-2", UserID: "user-1", Type: wallet.TransactionContestWin, Amount: 200, ContestID: "c2", EntryID: "e2"},
		{ID: "wtx-3", UserID: "user-2", Type: wallet.TransactionContestWin, Amount: 300, ContestID: "c1", EntryID: "e3"},
	} {
		repo.seed(tx)
	}

	service := NewWalletService(repo)

	items, err := service.ListTransactions(context.Background(), "user-1", 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Out-of-range limits fall back to the default page size.
	items, err = service.ListTransactions(context.Background(), "user-1", -5)
	require.NoError(t, err)
	require.Len(t, items, 2)

	_, err = service.ListTransactions(context.Background(), "", 10)
	require.ErrorIs(t, err, ErrInvalidInput)
}
