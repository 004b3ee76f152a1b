package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/match"
	qb "github.com/sunnygoyal1983/play11-w-sub002/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").
		From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, matchID string, status match.Status) error {
	query, args, err := qb.Update("matches").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match status query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match status: %w", err)
	}
	return nil
}
