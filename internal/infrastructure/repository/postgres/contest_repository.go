package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/contest"
	qb "github.com/sunnygoyal1983/play11-w-sub002/internal/platform/querybuilder"
)

type ContestRepository struct {
	db *sqlx.DB
}

func NewContestRepository(db *sqlx.DB) *ContestRepository {
	return &ContestRepository{db: db}
}

func (r *ContestRepository) GetByID(ctx context.Context, contestID string) (contest.Contest, bool, error) {
	query, args, err := qb.Select("*").
		From("contests").
		Where(
			qb.Eq("public_id", contestID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return contest.Contest{}, false, fmt.Errorf("build get contest query: %w", err)
	}

	var row contestTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contest.Contest{}, false, nil
		}
		return contest.Contest{}, false, fmt.Errorf("get contest: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ContestRepository) ListByMatch(ctx context.Context, matchID string) ([]contest.Contest, error) {
	query, args, err := qb.Select("*").
		From("contests").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("total_prize DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list contests query: %w", err)
	}

	var rows []contestTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list contests by match: %w", err)
	}

	out := make([]contest.Contest, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ContestRepository) MarkSettled(ctx context.Context, contestID string) error {
	now := time.Now().UTC()
	query, args, err := qb.Update("contests").
		Set("settled_at", now.Unix()).
		Set("updated_at", now).
		Where(
			qb.Eq("public_id", contestID),
			qb.IsNull("settled_at"),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark contest settled query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark contest settled: %w", err)
	}
	return nil
}

func (r *ContestRepository) ListEntriesByContest(ctx context.Context, contestID string) ([]contest.Entry, error) {
	query, args, err := qb.Select("*").
		From("contest_entries").
		Where(
			qb.Eq("contest_public_id", contestID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list contest entries query: %w", err)
	}

	var rows []contestEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list contest entries: %w", err)
	}

	out := make([]contest.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ContestRepository) ListWinningEntries(ctx context.Context, windowDays int) ([]contest.Entry, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays).Unix()
	query, args, err := qb.Select("contest_entries.*").
		From("contest_entries").
		Where(
			qb.Expr("contest_entries.win_amount > 0"),
			qb.Expr("contest_entries.contest_public_id IN (SELECT public_id FROM contests WHERE settled_at >= ? AND deleted_at IS NULL)", cutoff),
			qb.IsNull("contest_entries.deleted_at"),
		).
		OrderBy("contest_entries.updated_at DESC", "contest_entries.public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list winning entries query: %w", err)
	}

	var rows []contestEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list winning entries: %w", err)
	}

	out := make([]contest.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ContestRepository) UpdateEntryPoints(ctx context.Context, entryID string, points float64) error {
	query, args, err := qb.Update("contest_entries").
		Set("points", points).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("public_id", entryID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update entry points query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update entry points: %w", err)
	}
	return nil
}

func (r *ContestRepository) UpdateEntrySettlement(ctx context.Context, entry contest.Entry) error {
	query, args, err := qb.Update("contest_entries").
		Set("rank", entry.Rank).
		Set("win_amount", entry.WinAmount).
		Set("status", string(entry.Status)).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("public_id", entry.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update entry settlement query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update entry settlement: %w", err)
	}
	return nil
}
