package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
)

const defaultTransactionPageSize = 50

// WalletService is the read side of the wallet ledger. Writes happen only
// inside settlement and reconciliation.
type WalletService struct {
	walletRepo wallet.Repository
}

func NewWalletService(walletRepo wallet.Repository) *WalletService {
	return &WalletService{walletRepo: walletRepo}
}

func (s *WalletService) GetBalance(ctx context.Context, userID string) (wallet.Balance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WalletService.GetBalance")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return wallet.Balance{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	balance, exists, err := s.walletRepo.GetBalance(ctx, userID)
	if err != nil {
		return wallet.Balance{}, fmt.Errorf("get wallet balance: %w", err)
	}
	if !exists {
		// A user with no ledger history has an empty wallet, not a missing one.
		return wallet.Balance{UserID: userID}, nil
	}
	return balance, nil
}

func (s *WalletService) ListTransactions(ctx context.Context, userID string, limit int) ([]wallet.LedgerTransaction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WalletService.ListTransactions")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if limit <= 0 || limit > 200 {
		limit = defaultTransactionPageSize
	}

	items, err := s.walletRepo.ListTransactionsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	return items, nil
}
