package memory

import (
	"context"
	"sync"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
)

type PlayerRepository struct {
	mu             sync.RWMutex
	playersByMatch map[string][]player.Player
	playersByID    map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byMatch := make(map[string][]player.Player)
	byID := make(map[string]player.Player, len(players))
	for _, item := range players {
		byMatch[item.MatchID] = append(byMatch[item.MatchID], item)
		byID[item.ID] = item
	}
	return &PlayerRepository{playersByMatch: byMatch, playersByID: byID}
}

func (r *PlayerRepository) ListByMatch(_ context.Context, matchID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.playersByMatch[matchID]
	out := make([]player.Player, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := r.playersByID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
