package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/team"
	qb "github.com/sunnygoyal1983/play11-w-sub002/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.FantasyTeam, bool, error) {
	query, args, err := qb.Select("*").
		From("fantasy_teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return team.FantasyTeam{}, false, fmt.Errorf("build get fantasy team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.FantasyTeam{}, false, nil
		}
		return team.FantasyTeam{}, false, fmt.Errorf("get fantasy team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []string) ([]team.FantasyTeam, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(teamIDs))
	for _, id := range teamIDs {
		ids = append(ids, id)
	}
	query, args, err := qb.Select("*").
		From("fantasy_teams").
		Where(
			qb.In("public_id", ids),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get fantasy teams query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get fantasy teams: %w", err)
	}

	out := make([]team.FantasyTeam, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.FantasyTeam) error {
	insertModel := fantasyTeamInsertModel{
		PublicID:      item.ID,
		UserID:        item.UserID,
		MatchID:       item.MatchID,
		Name:          item.Name,
		PlayerIDs:     pq.StringArray(item.PlayerIDs),
		CaptainID:     item.CaptainID,
		ViceCaptainID: item.ViceCaptainID,
	}
	query, args, err := qb.InsertModel("fantasy_teams", insertModel, `ON CONFLICT (public_id)
DO UPDATE SET
    name = EXCLUDED.name,
    player_public_ids = EXCLUDED.player_public_ids,
    captain_public_id = EXCLUDED.captain_public_id,
    vice_captain_public_id = EXCLUDED.vice_captain_public_id,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert fantasy team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert fantasy team: %w", err)
	}
	return nil
}
