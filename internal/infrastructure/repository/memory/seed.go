package memory

import (
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/contest"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/match"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/player"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/team"
)

const (
	MatchIDIndVsAus = "ind-vs-aus-2026-03-01"
	MatchIDIndVsEng = "ind-vs-eng-2026-03-08"
)

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:       MatchIDIndVsAus,
			Title:    "India vs Australia, 1st T20I",
			Status:   match.StatusCompleted,
			StartsAt: time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:       MatchIDIndVsEng,
			Title:    "India vs England, 2nd T20I",
			Status:   match.StatusUpcoming,
			StartsAt: time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC),
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ind-wk-01", MatchID: MatchIDIndVsAus, SquadID: "ind", Name: "Ishan Mahato", Role: player.RoleWicketKeeper, Credits: 95},
		{ID: "ind-bat-01", MatchID: MatchIDIndVsAus, SquadID: "ind", Name: "Rahul Sharda", Role: player.RoleBatsman, Credits: 105},
		{ID: "ind-bat-02", MatchID: MatchIDIndVsAus, SquadID: "ind", Name: "Varun Khatri", Role: player.RoleBatsman, Credits: 100},
		{ID: "ind-bat-03", MatchID: MatchIDIndVsAus, SquadID: "ind", Name: "Devansh Pillai", Role: player.RoleBatsman, Credits: 92},
		{ID: "ind-ar-01", MatchID: MatchIDIndVsAus, SquadID: "ind", Name: "Arjun Patel", Role: player.RoleAllRounder, Credits: 98},
		{ID: "ind-ar-02", MatchID: MatchIDIndVsAus, SquadID: "ind", Name: "Nilesh Bora", Role: player.RoleAllRounder, Credits: 90},
		{ID: "ind-bowl-01", MatchID: MatchIDIndVsAus, SquadID: "ind", Name: "Sandeep Raut", Role: player.RoleBowler, Credits: 96},
		{ID: "ind-bowl-02", MatchID: MatchIDIndVsAus, SquadID: "ind", Name: "Kunal Verma", Role: player.RoleBowler, Credits: 88},
		{ID: "aus-wk-01", MatchID: MatchIDIndVsAus, SquadID: "aus", Name: "Tom Healy", Role: player.RoleWicketKeeper, Credits: 93},
		{ID: "aus-bat-01", MatchID: MatchIDIndVsAus, SquadID: "aus", Name: "Jake Morton", Role: player.RoleBatsman, Credits: 102},
		{ID: "aus-bat-02", MatchID: MatchIDIndVsAus, SquadID: "aus", Name: "Lachlan Reed", Role: player.RoleBatsman, Credits: 94},
		{ID: "aus-ar-01", MatchID: MatchIDIndVsAus, SquadID: "aus", Name: "Cooper Nash", Role: player.RoleAllRounder, Credits: 97},
		{ID: "aus-bowl-01", MatchID: MatchIDIndVsAus, SquadID: "aus", Name: "Riley Thompson", Role: player.RoleBowler, Credits: 95},
		{ID: "aus-bowl-02", MatchID: MatchIDIndVsAus, SquadID: "aus", Name: "Mitchell Doyle", Role: player.RoleBowler, Credits: 87},
	}
}

func SeedTeams() []team.FantasyTeam {
	createdAt := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
	return []team.FantasyTeam{
		{
			ID:      "team-demo-01",
			UserID:  "user-demo-01",
			MatchID: MatchIDIndVsAus,
			Name:    "Boundary Hunters",
			PlayerIDs: []string{
				"ind-wk-01", "ind-bat-01", "ind-bat-02", "ind-bat-03",
				"ind-ar-01", "ind-ar-02", "ind-bowl-01", "ind-bowl-02",
				"aus-bat-01", "aus-ar-01", "aus-bowl-01",
			},
			CaptainID:     "ind-bat-01",
			ViceCaptainID: "ind-ar-01",
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		},
		{
			ID:      "team-demo-02",
			UserID:  "user-demo-02",
			MatchID: MatchIDIndVsAus,
			Name:    "Yorker Kings",
			PlayerIDs: []string{
				"aus-wk-01", "aus-bat-01", "aus-bat-02", "ind-bat-01",
				"ind-bat-02", "aus-ar-01", "ind-ar-01", "aus-bowl-01",
				"aus-bowl-02", "ind-bowl-01", "ind-bowl-02",
			},
			CaptainID:     "aus-bat-01",
			ViceCaptainID: "aus-bowl-01",
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		},
	}
}

func SeedContests() []contest.Contest {
	return []contest.Contest{
		{
			ID:          "contest-demo-01",
			MatchID:     MatchIDIndVsAus,
			Name:        "Grand Prize Pool",
			EntryFee:    4900,
			TotalPrize:  1000000,
			FirstPrize:  500000,
			WinnerCount: 2,
			MaxEntries:  100,
			CreatedAt:   time.Date(2026, 2, 27, 8, 0, 0, 0, time.UTC),
		},
	}
}

func SeedEntries() []contest.Entry {
	createdAt := time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC)
	return []contest.Entry{
		{
			ID:        "entry-demo-01",
			ContestID: "contest-demo-01",
			TeamID:    "team-demo-01",
			UserID:    "user-demo-01",
			Status:    contest.StatusPending,
			CreatedAt: createdAt,
		},
		{
			ID:        "entry-demo-02",
			ContestID: "contest-demo-01",
			TeamID:    "team-demo-02",
			UserID:    "user-demo-02",
			Status:    contest.StatusPending,
			CreatedAt: createdAt,
		},
	}
}
