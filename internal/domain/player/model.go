package player

import "fmt"

// Role represents cricket playing role categories used in point rules.
// It is a closed enumeration: point-rule branches switch on it exhaustively,
// so raw strings must go through ParseRole instead of direct casts.
type Role string

const (
	RoleBatsman      Role = "BAT"
	RoleBowler       Role = "BOWL"
	RoleAllRounder   Role = "AR"
	RoleWicketKeeper Role = "WK"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

func ParseRole(raw string) (Role, bool) {
	role := Role(raw)
	_, ok := AllRoles[role]
	return role, ok
}

// Player is a real-world cricketer selectable into fantasy teams.
type Player struct {
	ID       string
	MatchID  string
	SquadID  string
	Name     string
	Role     Role
	Credits  int64
	ImageURL string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}

	return nil
}
