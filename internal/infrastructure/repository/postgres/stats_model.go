package postgres

import (
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
)

type playerMatchStatTableModel struct {
	ID            int64      `db:"id"`
	MatchID       string     `db:"match_public_id"`
	PlayerID      string     `db:"player_public_id"`
	Runs          int        `db:"runs"`
	BallsFaced    int        `db:"balls_faced"`
	Fours         int        `db:"fours"`
	Sixes         int        `db:"sixes"`
	Dismissed     bool       `db:"dismissed"`
	Wickets       int        `db:"wickets"`
	BowledLBW     int        `db:"bowled_lbw"`
	Overs         float64    `db:"overs"`
	Maidens       int        `db:"maidens"`
	RunsConceded  int        `db:"runs_conceded"`
	Catches       int        `db:"catches"`
	Stumpings     int        `db:"stumpings"`
	RunOutsDirect int        `db:"run_outs_direct"`
	RunOutsAssist int        `db:"run_outs_assist"`
	UpdatedAt     int64      `db:"stat_updated_at"`
	CreatedAt     time.Time  `db:"created_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

func (m playerMatchStatTableModel) toDomain() stats.PlayerMatchStat {
	return stats.PlayerMatchStat{
		MatchID:       m.MatchID,
		PlayerID:      m.PlayerID,
		Runs:          m.Runs,
		BallsFaced:    m.BallsFaced,
		Fours:         m.Fours,
		Sixes:         m.Sixes,
		Dismissed:     m.Dismissed,
		Wickets:       m.Wickets,
		BowledLBW:     m.BowledLBW,
		Overs:         m.Overs,
		Maidens:       m.Maidens,
		RunsConceded:  m.RunsConceded,
		Catches:       m.Catches,
		Stumpings:     m.Stumpings,
		RunOutsDirect: m.RunOutsDirect,
		RunOutsAssist: m.RunOutsAssist,
		UpdatedAt:     unixToTime(m.UpdatedAt),
	}
}

type playerMatchStatInsertModel struct {
	MatchID       string  `db:"match_public_id"`
	PlayerID      string  `db:"player_public_id"`
	Runs          int     `db:"runs"`
	BallsFaced    int     `db:"balls_faced"`
	Fours         int     `db:"fours"`
	Sixes         int     `db:"sixes"`
	Dismissed     bool    `db:"dismissed"`
	Wickets       int     `db:"wickets"`
	BowledLBW     int     `db:"bowled_lbw"`
	Overs         float64 `db:"overs"`
	Maidens       int     `db:"maidens"`
	RunsConceded  int     `db:"runs_conceded"`
	Catches       int     `db:"catches"`
	Stumpings     int     `db:"stumpings"`
	RunOutsDirect int     `db:"run_outs_direct"`
	RunOutsAssist int     `db:"run_outs_assist"`
	UpdatedAt     int64   `db:"stat_updated_at"`
}
