package points

import (
	"testing"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
)

func TestCompute_Batting(t *testing.T) {
	tests := []struct {
		name string
		stat stats.PlayerMatchStat
		role player.Role
		want float64
	}{
		{
			name: "runs plus boundary bonuses",
			stat: stats.PlayerMatchStat{Runs: 30, BallsFaced: 10, Fours: 4, Sixes: 1},
			role: player.RoleBatsman,
			want: 30 + 4 + 2,
		},
		{
			name: "half century bonus",
			stat: stats.PlayerMatchStat{Runs: 50, BallsFaced: 19},
			role: player.RoleBatsman,
			want: 50 + 4,
		},
		{
			name: "century bonus only, not stacked with half century",
			stat: stats.PlayerMatchStat{Runs: 100, BallsFaced: 19},
			role: player.RoleBatsman,
			want: 100 + 8,
		},
		{
			name: "duck penalty for batsman",
			stat: stats.PlayerMatchStat{Runs: 0, BallsFaced: 3, Dismissed: true},
			role: player.RoleBatsman,
			want: -2,
		},
		{
			name: "duck penalty for wicket keeper",
			stat: stats.PlayerMatchStat{Runs: 0, BallsFaced: 1, Dismissed: true},
			role: player.RoleWicketKeeper,
			want: -2,
		},
		{
			name: "bowler exempt from duck penalty",
			stat: stats.PlayerMatchStat{Runs: 0, BallsFaced: 3, Dismissed: true},
			role: player.RoleBowler,
			want: 0,
		},
		{
			name: "no duck penalty without facing a ball",
			stat: stats.PlayerMatchStat{Runs: 0, BallsFaced: 0, Dismissed: true},
			role: player.RoleBatsman,
			want: 0,
		},
		{
			name: "not out on zero is not a duck",
			stat: stats.PlayerMatchStat{Runs: 0, BallsFaced: 4, Dismissed: false},
			role: player.RoleBatsman,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.stat, tt.role, CaptaincyNone)
			if got != tt.want {
				t.Fatalf("unexpected points: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestCompute_StrikeRateBands(t *testing.T) {
	tests := []struct {
		name     string
		runs     int
		balls    int
		modifier float64
	}{
		{name: "below threshold never modifies", runs: 5, balls: 19, modifier: 0},
		{name: "above 120", runs: 25, balls: 20, modifier: 2},
		{name: "exactly 120", runs: 24, balls: 20, modifier: 1},
		{name: "exactly 100", runs: 20, balls: 20, modifier: 1},
		{name: "between 80 and 100 is neutral", runs: 18, balls: 20, modifier: 0},
		{name: "between 70 and 80", runs: 15, balls: 20, modifier: -1},
		{name: "between 60 and 70", runs: 13, balls: 20, modifier: -2},
		{name: "below 60 is neutral", runs: 10, balls: 20, modifier: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat := stats.PlayerMatchStat{Runs: tt.runs, BallsFaced: tt.balls}
			base := float64(tt.runs)
			got := Compute(stat, player.RoleBatsman, CaptaincyNone)
			if got != base+tt.modifier {
				t.Fatalf("unexpected points: got=%v want=%v", got, base+tt.modifier)
			}
		})
	}
}

func TestCompute_Bowling(t *testing.T) {
	tests := []struct {
		name string
		stat stats.PlayerMatchStat
		want float64
	}{
		{
			name: "wickets with bowled bonus and maiden",
			stat: stats.PlayerMatchStat{Wickets: 2, BowledLBW: 1, Maidens: 1},
			want: 2*25 + 8 + 12,
		},
		{
			name: "three wicket milestone",
			stat: stats.PlayerMatchStat{Wickets: 3},
			want: 3*25 + 4,
		},
		{
			name: "four wicket milestone replaces three",
			stat: stats.PlayerMatchStat{Wickets: 4},
			want: 4*25 + 8,
		},
		{
			name: "five wicket milestone replaces lower tiers",
			stat: stats.PlayerMatchStat{Wickets: 6},
			want: 6*25 + 16,
		},
		{
			name: "economy below threshold overs never modifies",
			stat: stats.PlayerMatchStat{Overs: 1.5, RunsConceded: 2},
			want: 0,
		},
		{
			name: "economy under five",
			stat: stats.PlayerMatchStat{Overs: 2, RunsConceded: 8},
			want: 6,
		},
		{
			name: "economy five to six",
			stat: stats.PlayerMatchStat{Overs: 2, RunsConceded: 10},
			want: 4,
		},
		{
			name: "economy six to seven",
			stat: stats.PlayerMatchStat{Overs: 2, RunsConceded: 13},
			want: 2,
		},
		{
			name: "economy seven to nine is neutral",
			stat: stats.PlayerMatchStat{Overs: 2, RunsConceded: 16},
			want: 0,
		},
		{
			name: "economy nine to ten",
			stat: stats.PlayerMatchStat{Overs: 2, RunsConceded: 18},
			want: -2,
		},
		{
			name: "economy ten to eleven",
			stat: stats.PlayerMatchStat{Overs: 2, RunsConceded: 20},
			want: -4,
		},
		{
			// Bands are half-open on both sides, so the top penalty
			// starts at exactly 11.
			name: "economy exactly eleven",
			stat: stats.PlayerMatchStat{Overs: 2, RunsConceded: 22},
			want: -6,
		},
		{
			name: "economy above eleven",
			stat: stats.PlayerMatchStat{Overs: 2, RunsConceded: 24},
			want: -6,
		},
		{
			name: "partial overs counted in balls",
			stat: stats.PlayerMatchStat{Overs: 2.3, RunsConceded: 10},
			want: 4, // 15 balls, economy 4.0
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.stat, player.RoleBowler, CaptaincyNone)
			if got != tt.want {
				t.Fatalf("unexpected points: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestCompute_Fielding(t *testing.T) {
	stat := stats.PlayerMatchStat{Catches: 2, Stumpings: 1, RunOutsDirect: 1, RunOutsAssist: 2}
	want := 2*8.0 + 12 + 12 + 2*6

	if got := Compute(stat, player.RoleWicketKeeper, CaptaincyNone); got != want {
		t.Fatalf("unexpected fielding points: got=%v want=%v", got, want)
	}
}

func TestCompute_CaptaincyMultiplierAppliesToSum(t *testing.T) {
	stat := stats.PlayerMatchStat{
		Runs:       40,
		BallsFaced: 18,
		Fours:      2,
		Wickets:    1,
		Catches:    1,
	}
	base := 40.0 + 2 + 25 + 8

	if got := Compute(stat, player.RoleAllRounder, CaptaincyNone); got != base {
		t.Fatalf("unexpected base points: got=%v want=%v", got, base)
	}
	if got := Compute(stat, player.RoleAllRounder, CaptaincyCaptain); got != base*2 {
		t.Fatalf("unexpected captain points: got=%v want=%v", got, base*2)
	}
	if got := Compute(stat, player.RoleAllRounder, CaptaincyVice); got != base*1.5 {
		t.Fatalf("unexpected vice captain points: got=%v want=%v", got, base*1.5)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	stat := stats.PlayerMatchStat{
		Runs:         73,
		BallsFaced:   41,
		Fours:        8,
		Sixes:        2,
		Wickets:      2,
		BowledLBW:    1,
		Overs:        3.2,
		RunsConceded: 19,
		Catches:      1,
	}

	first := Compute(stat, player.RoleAllRounder, CaptaincyCaptain)
	for i := 0; i < 100; i++ {
		if got := Compute(stat, player.RoleAllRounder, CaptaincyCaptain); got != first {
			t.Fatalf("points not deterministic: got=%v want=%v on run %d", got, first, i)
		}
	}
}
