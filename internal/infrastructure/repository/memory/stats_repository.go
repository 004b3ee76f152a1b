package memory

import (
	"context"
	"sync"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
)

type StatsRepository struct {
	mu           sync.RWMutex
	statsByMatch map[string]map[string]stats.PlayerMatchStat
}

func NewStatsRepository(rows []stats.PlayerMatchStat) *StatsRepository {
	byMatch := make(map[string]map[string]stats.PlayerMatchStat)
	for _, row := range rows {
		if byMatch[row.MatchID] == nil {
			byMatch[row.MatchID] = make(map[string]stats.PlayerMatchStat)
		}
		byMatch[row.MatchID][row.PlayerID] = row
	}
	return &StatsRepository{statsByMatch: byMatch}
}

func (r *StatsRepository) ListByMatch(_ context.Context, matchID string) ([]stats.PlayerMatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.statsByMatch[matchID]
	out := make([]stats.PlayerMatchStat, 0, len(items))
	for _, row := range items {
		out = append(out, row)
	}
	return out, nil
}

func (r *StatsRepository) UpsertBatch(_ context.Context, matchID string, rows []stats.PlayerMatchStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.statsByMatch[matchID] == nil {
		r.statsByMatch[matchID] = make(map[string]stats.PlayerMatchStat, len(rows))
	}
	for _, row := range rows {
		row.MatchID = matchID
		r.statsByMatch[matchID][row.PlayerID] = row
	}
	return nil
}
