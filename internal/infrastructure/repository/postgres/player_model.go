package postgres

import (
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
)

type playerTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	MatchID   string     `db:"match_public_id"`
	SquadID   string     `db:"squad_public_id"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	Credits   int64      `db:"credits"`
	ImageURL  string     `db:"image_url"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:       m.PublicID,
		MatchID:  m.MatchID,
		SquadID:  m.SquadID,
		Name:     m.Name,
		Role:     player.Role(m.Role),
		Credits:  m.Credits,
		ImageURL: m.ImageURL,
	}
}
