package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/team"
)

type fantasyTeamTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	UserID        string         `db:"user_id"`
	MatchID       string         `db:"match_public_id"`
	Name          string         `db:"name"`
	PlayerIDs     pq.StringArray `db:"player_public_ids"`
	CaptainID     string         `db:"captain_public_id"`
	ViceCaptainID string         `db:"vice_captain_public_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}

func (m fantasyTeamTableModel) toDomain() team.FantasyTeam {
	return team.FantasyTeam{
		ID:            m.PublicID,
		UserID:        m.UserID,
		MatchID:       m.MatchID,
		Name:          m.Name,
		PlayerIDs:     append([]string(nil), m.PlayerIDs...),
		CaptainID:     m.CaptainID,
		ViceCaptainID: m.ViceCaptainID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type fantasyTeamInsertModel struct {
	PublicID      string         `db:"public_id"`
	UserID        string         `db:"user_id"`
	MatchID       string         `db:"match_public_id"`
	Name          string         `db:"name"`
	PlayerIDs     pq.StringArray `db:"player_public_ids"`
	CaptainID     string         `db:"captain_public_id"`
	ViceCaptainID string         `db:"vice_captain_public_id"`
}
