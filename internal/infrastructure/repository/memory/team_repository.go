package memory

import (
	"context"
	"sync"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.FantasyTeam
}

func NewTeamRepository(teams []team.FantasyTeam) *TeamRepository {
	byID := make(map[string]team.FantasyTeam, len(teams))
	for _, item := range teams {
		byID[item.ID] = cloneTeam(item)
	}
	return &TeamRepository{teams: byID}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.FantasyTeam, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	if !ok {
		return team.FantasyTeam{}, false, nil
	}
	return cloneTeam(item), true, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, teamIDs []string) ([]team.FantasyTeam, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.FantasyTeam, 0, len(teamIDs))
	for _, id := range teamIDs {
		if item, ok := r.teams[id]; ok {
			out = append(out, cloneTeam(item))
		}
	}
	return out, nil
}

func (r *TeamRepository) Upsert(_ context.Context, item team.FantasyTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[item.ID] = cloneTeam(item)
	return nil
}

func cloneTeam(item team.FantasyTeam) team.FantasyTeam {
	item.PlayerIDs = append([]string(nil), item.PlayerIDs...)
	return item
}
