package team

import (
	"errors"
	"fmt"
	"testing"
)

func validTeam() FantasyTeam {
	playerIDs := make([]string, 0, TeamSize)
	for i := 1; i <= TeamSize; i++ {
		playerIDs = append(playerIDs, fmt.Sprintf("p%d", i))
	}

	return FantasyTeam{
		ID:            "team-1",
		UserID:        "user-1",
		MatchID:       "match-1",
		Name:          "The Yorkers",
		PlayerIDs:     playerIDs,
		CaptainID:     "p1",
		ViceCaptainID: "p2",
	}
}

func TestFantasyTeamValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*FantasyTeam)
		targetErr error
	}{
		{
			name:      "valid team",
			mutate:    func(_ *FantasyTeam) {},
			targetErr: nil,
		},
		{
			name: "too few players",
			mutate: func(ft *FantasyTeam) {
				ft.PlayerIDs = ft.PlayerIDs[:10]
			},
			targetErr: ErrInvalidTeamSize,
		},
		{
			name: "duplicate player",
			mutate: func(ft *FantasyTeam) {
				ft.PlayerIDs[10] = "p1"
			},
			targetErr: ErrDuplicatePlayer,
		},
		{
			name: "captain outside roster",
			mutate: func(ft *FantasyTeam) {
				ft.CaptainID = "p99"
			},
			targetErr: ErrCaptainNotInTeam,
		},
		{
			name: "vice captain outside roster",
			mutate: func(ft *FantasyTeam) {
				ft.ViceCaptainID = "p99"
			},
			targetErr: ErrViceCaptainNotInTeam,
		},
		{
			name: "captain doubles as vice captain",
			mutate: func(ft *FantasyTeam) {
				ft.ViceCaptainID = ft.CaptainID
			},
			targetErr: ErrCaptainIsViceCaptain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := validTeam()
			ft.PlayerIDs = append([]string(nil), ft.PlayerIDs...)
			tt.mutate(&ft)

			err := ft.Validate()
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected %v, got %v", tt.targetErr, err)
			}
		})
	}
}
