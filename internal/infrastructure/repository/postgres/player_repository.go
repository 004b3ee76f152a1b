package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
	qb "github.com/sunnygoyal1983/play11-w-sub002/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByMatch(ctx context.Context, matchID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").
		From("players").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by match: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id)
	}
	query, args, err := qb.Select("*").
		From("players").
		Where(
			qb.In("public_id", ids),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
