package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Player, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
}
