package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo fixtures into an empty database so a fresh
// local stack has something to settle.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count matches for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (public_id, title, status, starts_at)
VALUES (:public_id, :title, :status, :starts_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": m.ID,
			"title":     m.Title,
			"status":    string(m.Status),
			"starts_at": m.StartsAt.Unix(),
		})
		if err != nil {
			return fmt.Errorf("bind seed match %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, match_public_id, squad_public_id, name, role, credits, image_url)
VALUES (:public_id, :match_public_id, :squad_public_id, :name, :role, :credits, :image_url)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":       p.ID,
			"match_public_id": p.MatchID,
			"squad_public_id": p.SquadID,
			"name":            p.Name,
			"role":            string(p.Role),
			"credits":         p.Credits,
			"image_url":       p.ImageURL,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO fantasy_teams (public_id, user_id, match_public_id, name, player_public_ids, captain_public_id, vice_captain_public_id)
VALUES (:public_id, :user_id, :match_public_id, :name, :player_public_ids, :captain_public_id, :vice_captain_public_id)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":              t.ID,
			"user_id":                t.UserID,
			"match_public_id":        t.MatchID,
			"name":                   t.Name,
			"player_public_ids":      pq.StringArray(t.PlayerIDs),
			"captain_public_id":      t.CaptainID,
			"vice_captain_public_id": t.ViceCaptainID,
		})
		if err != nil {
			return fmt.Errorf("bind seed fantasy team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed fantasy team %s: %w", t.ID, err)
		}
	}

	for _, c := range memory.SeedContests() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO contests (public_id, match_public_id, name, entry_fee, total_prize, first_prize, winner_count, max_entries)
VALUES (:public_id, :match_public_id, :name, :entry_fee, :total_prize, :first_prize, :winner_count, :max_entries)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":       c.ID,
			"match_public_id": c.MatchID,
			"name":            c.Name,
			"entry_fee":       c.EntryFee,
			"total_prize":     c.TotalPrize,
			"first_prize":     c.FirstPrize,
			"winner_count":    c.WinnerCount,
			"max_entries":     c.MaxEntries,
		})
		if err != nil {
			return fmt.Errorf("bind seed contest %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed contest %s: %w", c.ID, err)
		}
	}

	for _, e := range memory.SeedEntries() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO contest_entries (public_id, contest_public_id, team_public_id, user_id, status)
VALUES (:public_id, :contest_public_id, :team_public_id, :user_id, :status)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":         e.ID,
			"contest_public_id": e.ContestID,
			"team_public_id":    e.TeamID,
			"user_id":           e.UserID,
			"status":            string(e.Status),
		})
		if err != nil {
			return fmt.Errorf("bind seed contest entry %s query: %w", e.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed contest entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
