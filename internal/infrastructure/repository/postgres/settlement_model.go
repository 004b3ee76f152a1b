package postgres

import (
	"database/sql"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/settlement"
)

type settlementFailureTableModel struct {
	ID          int64         `db:"id"`
	PublicID    string        `db:"public_id"`
	ContestID   string        `db:"contest_public_id"`
	EntryID     string        `db:"entry_public_id"`
	UserID      string        `db:"user_id"`
	Amount      int64         `db:"amount"`
	Rank        int           `db:"rank"`
	Reason      string        `db:"reason"`
	Processed   bool          `db:"processed"`
	ProcessedAt sql.NullInt64 `db:"processed_at"`
	ProcessedBy string        `db:"processed_by"`
	CreatedAt   time.Time     `db:"created_at"`
}

func (m settlementFailureTableModel) toDomain() settlement.FailureLog {
	out := settlement.FailureLog{
		ID:          m.PublicID,
		ContestID:   m.ContestID,
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Rank:        m.Rank,
		Reason:      m.Reason,
		Processed:   m.Processed,
		ProcessedBy: m.ProcessedBy,
		CreatedAt:   m.CreatedAt,
	}
	if at := nullUnixToTimePtr(m.ProcessedAt); at != nil {
		out.ProcessedAt = *at
	}
	return out
}

type settlementFailureInsertModel struct {
	PublicID  string `db:"public_id"`
	ContestID string `db:"contest_public_id"`
	EntryID   string `db:"entry_public_id"`
	UserID    string `db:"user_id"`
	Amount    int64  `db:"amount"`
	Rank      int    `db:"rank"`
	Reason    string `db:"reason"`
}

type sweeperLeaseInsertModel struct {
	Name      string `db:"name"`
	Owner     string `db:"owner"`
	ExpiresAt int64  `db:"expires_at"`
}
