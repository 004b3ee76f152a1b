package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
	qb "github.com/sunnygoyal1983/play11-w-sub002/internal/platform/querybuilder"
)

type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// CreditContestWin writes the ledger row and bumps the balance in one tx.
// The partial unique index on (type, contest_public_id, entry_public_id)
// turns a replayed payout into ErrDuplicateTransaction before any balance
// change lands.
func (r *WalletRepository) CreditContestWin(ctx context.Context, item wallet.LedgerTransaction) error {
	dbtx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin credit contest win tx: %w", err)
	}
	defer func() {
		_ = dbtx.Rollback()
	}()

	insertModel := walletTransactionInsertModel{
		PublicID:    item.ID,
		UserID:      item.UserID,
		Type:        string(item.Type),
		Status:      string(item.Status),
		Amount:      item.Amount,
		ContestID:   nullableString(item.ContestID),
		EntryID:     nullableString(item.EntryID),
		Description: item.Description,
	}
	query, args, err := qb.InsertModel("wallet_transactions", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert wallet transaction query: %w", err)
	}
	if _, err := dbtx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert wallet transaction %s/%s: %w", item.ContestID, item.EntryID, wallet.ErrDuplicateTransaction)
		}
		return fmt.Errorf("insert wallet transaction: %w", err)
	}

	balanceQuery, balanceArgs, err := qb.InsertInto("wallet_balances").
		Columns("user_id", "amount", "updated_at").
		Values(item.UserID, item.Amount, time.Now().UTC()).
		Suffix(`ON CONFLICT (user_id)
DO UPDATE SET
    amount = wallet_balances.amount + EXCLUDED.amount,
    updated_at = NOW()`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert wallet balance query: %w", err)
	}
	if _, err := dbtx.ExecContext(ctx, balanceQuery, balanceArgs...); err != nil {
		return fmt.Errorf("upsert wallet balance: %w", err)
	}

	if err := dbtx.Commit(); err != nil {
		return fmt.Errorf("commit credit contest win tx: %w", err)
	}
	return nil
}

func (r *WalletRepository) GetContestWinByEntry(ctx context.Context, contestID, entryID string) (wallet.LedgerTransaction, bool, error) {
	query, args, err := qb.Select("*").
		From("wallet_transactions").
		Where(
			qb.Eq("type", string(wallet.TransactionContestWin)),
			qb.Eq("contest_public_id", contestID),
			qb.Eq("entry_public_id", entryID),
		).
		ToSQL()
	if err != nil {
		return wallet.LedgerTransaction{}, false, fmt.Errorf("build get contest win query: %w", err)
	}

	var row walletTransactionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return wallet.LedgerTransaction{}, false, nil
		}
		return wallet.LedgerTransaction{}, false, fmt.Errorf("get contest win: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *WalletRepository) GetBalance(ctx context.Context, userID string) (wallet.Balance, bool, error) {
	query, args, err := qb.Select("*").
		From("wallet_balances").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return wallet.Balance{}, false, fmt.Errorf("build get wallet balance query: %w", err)
	}

	var row walletBalanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return wallet.Balance{}, false, nil
		}
		return wallet.Balance{}, false, fmt.Errorf("get wallet balance: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *WalletRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]wallet.LedgerTransaction, error) {
	query, args, err := qb.Select("*").
		From("wallet_transactions").
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list wallet transactions query: %w", err)
	}

	var rows []walletTransactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}

	out := make([]wallet.LedgerTransaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
