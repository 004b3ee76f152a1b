package team

import "context"

// Repository describes fantasy team persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, teamID string) (FantasyTeam, bool, error)
	GetByIDs(ctx context.Context, teamIDs []string) ([]FantasyTeam, error)
	Upsert(ctx context.Context, team FantasyTeam) error
}
