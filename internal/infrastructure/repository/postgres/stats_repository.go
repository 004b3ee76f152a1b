package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
	qb "github.com/sunnygoyal1983/play11-w-sub002/internal/platform/querybuilder"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) ListByMatch(ctx context.Context, matchID string) ([]stats.PlayerMatchStat, error) {
	query, args, err := qb.Select("*").
		From("player_match_stats").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player stats query: %w", err)
	}

	var rows []playerMatchStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player stats by match: %w", err)
	}

	out := make([]stats.PlayerMatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StatsRepository) UpsertBatch(ctx context.Context, matchID string, rows []stats.PlayerMatchStat) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert player stats tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range rows {
		insertModel := playerMatchStatInsertModel{
			MatchID:       matchID,
			PlayerID:      row.PlayerID,
			Runs:          row.Runs,
			BallsFaced:    row.BallsFaced,
			Fours:         row.Fours,
			Sixes:         row.Sixes,
			Dismissed:     row.Dismissed,
			Wickets:       row.Wickets,
			BowledLBW:     row.BowledLBW,
			Overs:         row.Overs,
			Maidens:       row.Maidens,
			RunsConceded:  row.RunsConceded,
			Catches:       row.Catches,
			Stumpings:     row.Stumpings,
			RunOutsDirect: row.RunOutsDirect,
			RunOutsAssist: row.RunOutsAssist,
			UpdatedAt:     timeToUnix(row.UpdatedAt),
		}
		query, args, err := qb.InsertModel("player_match_stats", insertModel, `ON CONFLICT (match_public_id, player_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    runs = EXCLUDED.runs,
    balls_faced = EXCLUDED.balls_faced,
    fours = EXCLUDED.fours,
    sixes = EXCLUDED.sixes,
    dismissed = EXCLUDED.dismissed,
    wickets = EXCLUDED.wickets,
    bowled_lbw = EXCLUDED.bowled_lbw,
    overs = EXCLUDED.overs,
    maidens = EXCLUDED.maidens,
    runs_conceded = EXCLUDED.runs_conceded,
    catches = EXCLUDED.catches,
    stumpings = EXCLUDED.stumpings,
    run_outs_direct = EXCLUDED.run_outs_direct,
    run_outs_assist = EXCLUDED.run_outs_assist,
    stat_updated_at = EXCLUDED.stat_updated_at`)
		if err != nil {
			return fmt.Errorf("build upsert player stat %s query: %w", row.PlayerID, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player stat %s: %w", row.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert player stats tx: %w", err)
	}
	return nil
}
