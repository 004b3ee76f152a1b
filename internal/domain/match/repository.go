package match

import "context"

// Repository describes match lifecycle persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	UpdateStatus(ctx context.Context, matchID string, status Status) error
}
