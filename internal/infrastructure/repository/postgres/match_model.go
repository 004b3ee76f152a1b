package postgres

import (
	"database/sql"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/match"
)

type matchTableModel struct {
	ID         int64         `db:"id"`
	PublicID   string        `db:"public_id"`
	Title      string        `db:"title"`
	Status     string        `db:"status"`
	StartsAt   int64         `db:"starts_at"`
	ArchivedAt sql.NullInt64 `db:"archived_at"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
	DeletedAt  *time.Time    `db:"deleted_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.PublicID,
		Title:      m.Title,
		Status:     match.NormalizeStatus(m.Status),
		StartsAt:   unixToTime(m.StartsAt),
		ArchivedAt: nullUnixToTimePtr(m.ArchivedAt),
	}
}
