package postgres

import (
	"database/sql"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/contest"
)

type contestTableModel struct {
	ID          int64         `db:"id"`
	PublicID    string        `db:"public_id"`
	MatchID     string        `db:"match_public_id"`
	Name        string        `db:"name"`
	EntryFee    int64         `db:"entry_fee"`
	TotalPrize  int64         `db:"total_prize"`
	FirstPrize  int64         `db:"first_prize"`
	WinnerCount int           `db:"winner_count"`
	MaxEntries  int           `db:"max_entries"`
	SettledAt   sql.NullInt64 `db:"settled_at"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	DeletedAt   *time.Time    `db:"deleted_at"`
}

func (m contestTableModel) toDomain() contest.Contest {
	return contest.Contest{
		ID:          m.PublicID,
		MatchID:     m.MatchID,
		Name:        m.Name,
		EntryFee:    m.EntryFee,
		TotalPrize:  m.TotalPrize,
		FirstPrize:  m.FirstPrize,
		WinnerCount: m.WinnerCount,
		MaxEntries:  m.MaxEntries,
		SettledAt:   nullUnixToTimePtr(m.SettledAt),
		CreatedAt:   m.CreatedAt,
	}
}

type contestEntryTableModel struct {
	ID        int64         `db:"id"`
	PublicID  string        `db:"public_id"`
	ContestID string        `db:"contest_public_id"`
	TeamID    string        `db:"team_public_id"`
	UserID    string        `db:"user_id"`
	Points    float64       `db:"points"`
	Rank      int           `db:"rank"`
	WinAmount sql.NullInt64 `db:"win_amount"`
	Status    string        `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
	DeletedAt *time.Time    `db:"deleted_at"`
}

func (m contestEntryTableModel) toDomain() contest.Entry {
	return contest.Entry{
		ID:        m.PublicID,
		ContestID: m.ContestID,
		TeamID:    m.TeamID,
		UserID:    m.UserID,
		Points:    m.Points,
		Rank:      m.Rank,
		WinAmount: nullInt64ToPtr(m.WinAmount),
		Status:    contest.EntryStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

