package team

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTeamSize      = errors.New("invalid team size")
	ErrDuplicatePlayer      = errors.New("duplicate player in team")
	ErrCaptainNotInTeam     = errors.New("captain is not a team member")
	ErrViceCaptainNotInTeam = errors.New("vice captain is not a team member")
	ErrCaptainIsViceCaptain = errors.New("captain and vice captain must differ")
)

// TeamSize is the fixed roster size for a fantasy cricket team.
const TeamSize = 11

// FantasyTeam is a user's picked roster for one match. It becomes immutable
// once the match start deadline passes.
type FantasyTeam struct {
	ID            string
	UserID        string
	MatchID       string
	Name          string
	PlayerIDs     []string
	CaptainID     string
	ViceCaptainID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t FantasyTeam) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if t.MatchID == "" {
		return fmt.Errorf("match id is required")
	}
	if len(t.PlayerIDs) != TeamSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidTeamSize, TeamSize, len(t.PlayerIDs))
	}

	members := make(map[string]struct{}, len(t.PlayerIDs))
	for _, playerID := range t.PlayerIDs {
		if playerID == "" {
			return fmt.Errorf("player id is required")
		}
		if _, exists := members[playerID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, playerID)
		}
		members[playerID] = struct{}{}
	}

	if _, ok := members[t.CaptainID]; !ok {
		return fmt.Errorf("%w: %s", ErrCaptainNotInTeam, t.CaptainID)
	}
	if _, ok := members[t.ViceCaptainID]; !ok {
		return fmt.Errorf("%w: %s", ErrViceCaptainNotInTeam, t.ViceCaptainID)
	}
	if t.CaptainID == t.ViceCaptainID {
		return fmt.Errorf("%w: %s", ErrCaptainIsViceCaptain, t.CaptainID)
	}

	return nil
}

// Captaincy reports the multiplier tier a player holds in this team.
func (t FantasyTeam) IsCaptain(playerID string) bool {
	return playerID != "" && playerID == t.CaptainID
}

func (t FantasyTeam) IsViceCaptain(playerID string) bool {
	return playerID != "" && playerID == t.ViceCaptainID
}
