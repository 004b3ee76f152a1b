package memory

import (
	"context"
	"sync"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = item
	}
	return &MatchRepository{matches: byID}
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) UpdateStatus(_ context.Context, matchID string, status match.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[matchID]
	if !ok {
		return nil
	}
	item.Status = status
	r.matches[matchID] = item
	return nil
}
