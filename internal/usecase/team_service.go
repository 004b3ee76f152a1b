package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/match"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/team"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/platform/id"
)

// TeamService manages fantasy team rosters up to the match deadline.
type TeamService struct {
	teamRepo   team.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	idGen      id.Generator
	now        func() time.Time
}

func NewTeamService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	idGen id.Generator,
) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// SaveTeam creates or replaces a user's roster for a match. Rosters freeze
// at match start; every picked player must belong to the match squads.
func (s *TeamService) SaveTeam(ctx context.Context, item team.FantasyTeam) (team.FantasyTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SaveTeam")
	defer span.End()

	item.UserID = strings.TrimSpace(item.UserID)
	item.MatchID = strings.TrimSpace(item.MatchID)
	item.Name = strings.TrimSpace(item.Name)

	matchItem, exists, err := s.matchRepo.GetByID(ctx, item.MatchID)
	if err != nil {
		return team.FantasyTeam{}, fmt.Errorf("get match for team save: %w", err)
	}
	if !exists {
		return team.FantasyTeam{}, fmt.Errorf("%w: match=%s", ErrNotFound, item.MatchID)
	}

	now := s.now().UTC()
	if matchItem.Status != match.StatusUpcoming || !now.Before(matchItem.StartsAt) {
		return team.FantasyTeam{}, fmt.Errorf("%w: match=%s has started, roster is frozen", ErrInvalidInput, item.MatchID)
	}

	if item.ID == "" {
		newID, err := s.idGen.NewID()
		if err != nil {
			return team.FantasyTeam{}, fmt.Errorf("generate team id: %w", err)
		}
		item.ID = newID
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		return team.FantasyTeam{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.validateRosterMembership(ctx, item); err != nil {
		return team.FantasyTeam{}, err
	}

	if err := s.teamRepo.Upsert(ctx, item); err != nil {
		return team.FantasyTeam{}, fmt.Errorf("upsert fantasy team: %w", err)
	}
	return item, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.FantasyTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.FantasyTeam{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.FantasyTeam{}, fmt.Errorf("get fantasy team: %w", err)
	}
	if !exists {
		return team.FantasyTeam{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) validateRosterMembership(ctx context.Context, item team.FantasyTeam) error {
	squad, err := s.playerRepo.ListByMatch(ctx, item.MatchID)
	if err != nil {
		return fmt.Errorf("list match players for team save: %w", err)
	}

	known := make(map[string]struct{}, len(squad))
	for _, row := range squad {
		known[row.ID] = struct{}{}
	}
	for _, playerID := range item.PlayerIDs {
		if _, ok := known[playerID]; !ok {
			return fmt.Errorf("%w: player=%s is not in match=%s squads", ErrInvalidInput, playerID, item.MatchID)
		}
	}
	return nil
}
