package postgres

import (
	"database/sql"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
)

type walletTransactionTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	UserID      string         `db:"user_id"`
	Type        string         `db:"type"`
	Status      string         `db:"status"`
	Amount      int64          `db:"amount"`
	ContestID   sql.NullString `db:"contest_public_id"`
	EntryID     sql.NullString `db:"entry_public_id"`
	Description string         `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (m walletTransactionTableModel) toDomain() wallet.LedgerTransaction {
	return wallet.LedgerTransaction{
		ID:          m.PublicID,
		UserID:      m.UserID,
		Type:        wallet.TransactionType(m.Type),
		Status:      wallet.TransactionStatus(m.Status),
		Amount:      m.Amount,
		ContestID:   m.ContestID.String,
		EntryID:     m.EntryID.String,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

type walletTransactionInsertModel struct {
	PublicID    string  `db:"public_id"`
	UserID      string  `db:"user_id"`
	Type        string  `db:"type"`
	Status      string  `db:"status"`
	Amount      int64   `db:"amount"`
	ContestID   *string `db:"contest_public_id"`
	EntryID     *string `db:"entry_public_id"`
	Description string  `db:"description"`
}

type walletBalanceTableModel struct {
	UserID    string    `db:"user_id"`
	Amount    int64     `db:"amount"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m walletBalanceTableModel) toDomain() wallet.Balance {
	return wallet.Balance{
		UserID:    m.UserID,
		Amount:    m.Amount,
		UpdatedAt: m.UpdatedAt,
	}
}

func nullableString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
