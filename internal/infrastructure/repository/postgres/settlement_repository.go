package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/settlement"
	qb "github.com/sunnygoyal1983/play11-w-sub002/internal/platform/querybuilder"
)

// sweeperLeaseName is the singleton row key for the reconciliation lease.
const sweeperLeaseName = "reconciliation-sweeper"

type SettlementRepository struct {
	db *sqlx.DB
}

func NewSettlementRepository(db *sqlx.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

func (r *SettlementRepository) RecordFailure(ctx context.Context, failure settlement.FailureLog) error {
	insertModel := settlementFailureInsertModel{
		PublicID:  failure.ID,
		ContestID: failure.ContestID,
		EntryID:   failure.EntryID,
		UserID:    failure.UserID,
		Amount:    failure.Amount,
		Rank:      failure.Rank,
		Reason:    failure.Reason,
	}
	query, args, err := qb.InsertModel("settlement_failures", insertModel, "ON CONFLICT (public_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build record settlement failure query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("record settlement failure: %w", err)
	}
	return nil
}

func (r *SettlementRepository) ListUnprocessedFailures(ctx context.Context, limit int) ([]settlement.FailureLog, error) {
	query, args, err := qb.Select("*").
		From("settlement_failures").
		Where(qb.Eq("processed", false)).
		OrderBy("created_at", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list settlement failures query: %w", err)
	}

	var rows []settlementFailureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list settlement failures: %w", err)
	}

	out := make([]settlement.FailureLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SettlementRepository) MarkFailureProcessed(ctx context.Context, failureID, processedBy string) error {
	query, args, err := qb.Update("settlement_failures").
		Set("processed", true).
		Set("processed_at", time.Now().UTC().Unix()).
		Set("processed_by", processedBy).
		Where(
			qb.Eq("public_id", failureID),
			qb.Eq("processed", false),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark settlement failure processed query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark settlement failure processed: %w", err)
	}
	return nil
}

// AcquireLease first tries to take over the singleton row when it is free,
// expired, or already ours, then falls back to inserting the row on first
// ever run. Both statements are conditional so two concurrent sweepers can
// never both win.
func (r *SettlementRepository) AcquireLease(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(ttl).Unix()

	query, args, err := qb.Update("sweeper_leases").
		Set("owner", owner).
		Set("expires_at", expiresAt).
		Where(
			qb.Eq("name", sweeperLeaseName),
			qb.Expr("(expires_at < ? OR owner = ?)", now.Unix(), owner),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build acquire sweeper lease query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("acquire sweeper lease: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return false, fmt.Errorf("acquire sweeper lease rows affected: %w", err)
	} else if n > 0 {
		return true, nil
	}

	insertModel := sweeperLeaseInsertModel{
		Name:      sweeperLeaseName,
		Owner:     owner,
		ExpiresAt: expiresAt,
	}
	insertQuery, insertArgs, err := qb.InsertModel("sweeper_leases", insertModel, "ON CONFLICT (name) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert sweeper lease query: %w", err)
	}
	insertRes, err := r.db.ExecContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return false, fmt.Errorf("insert sweeper lease: %w", err)
	}
	inserted, err := insertRes.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert sweeper lease rows affected: %w", err)
	}
	return inserted > 0, nil
}

func (r *SettlementRepository) ReleaseLease(ctx context.Context, owner string) error {
	query, args, err := qb.Update("sweeper_leases").
		Set("expires_at", int64(0)).
		Where(
			qb.Eq("name", sweeperLeaseName),
			qb.Eq("owner", owner),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build release sweeper lease query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("release sweeper lease: %w", err)
	}
	return nil
}
