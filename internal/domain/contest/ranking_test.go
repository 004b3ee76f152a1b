package contest

import (
	"testing"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/prize"
)

func TestRankEntries(t *testing.T) {
	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		entries   []Entry
		wantOrder []string
	}{
		{
			name: "distinct points rank by points descending",
			entries: []Entry{
				{ID: "e-low", Points: 40, CreatedAt: base},
				{ID: "e-high", Points: 180, CreatedAt: base.Add(time.Hour)},
				{ID: "e-mid", Points: 95, CreatedAt: base.Add(2 * time.Hour)},
			},
			wantOrder: []string{"e-high", "e-mid", "e-low"},
		},
		{
			name: "equal points break on earlier join",
			entries: []Entry{
				{ID: "e-late", Points: 120, CreatedAt: base.Add(time.Minute)},
				{ID: "e-early", Points: 120, CreatedAt: base},
			},
			wantOrder: []string{"e-early", "e-late"},
		},
		{
			name: "equal points and join time break on entry id",
			entries: []Entry{
				{ID: "e-b", Points: 120, CreatedAt: base},
				{ID: "e-a", Points: 120, CreatedAt: base},
			},
			wantOrder: []string{"e-a", "e-b"},
		},
		{
			name: "tied group sits between distinct scores",
			entries: []Entry{
				{ID: "e-tied-2", Points: 100, CreatedAt: base.Add(time.Minute)},
				{ID: "e-top", Points: 150, CreatedAt: base.Add(time.Hour)},
				{ID: "e-tied-1", Points: 100, CreatedAt: base},
				{ID: "e-last", Points: 10, CreatedAt: base},
			},
			wantOrder: []string{"e-top", "e-tied-1", "e-tied-2", "e-last"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := RankEntries(tc.entries)

			if len(ranked) != len(tc.wantOrder) {
				t.Fatalf("ranked %d entries, want %d", len(ranked), len(tc.wantOrder))
			}
			for idx, wantID := range tc.wantOrder {
				entry := ranked[idx]
				if entry.ID != wantID {
					t.Errorf("position %d = %s, want %s", idx, entry.ID, wantID)
				}
				// Ranks are dense 1..N, equal points never share one.
				if entry.Rank != idx+1 {
					t.Errorf("entry %s rank = %d, want %d", entry.ID, entry.Rank, idx+1)
				}
				if entry.Status != StatusRanked {
					t.Errorf("entry %s status = %s, want %s", entry.ID, entry.Status, StatusRanked)
				}
			}
		})
	}
}

func TestRankEntriesDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "e-1", Points: 50, Status: StatusPending, CreatedAt: base},
		{ID: "e-2", Points: 90, Status: StatusPending, CreatedAt: base},
	}

	RankEntries(entries)

	for _, entry := range entries {
		if entry.Rank != 0 || entry.Status != StatusPending {
			t.Fatalf("input entry mutated: %+v", entry)
		}
	}
}

func TestAssignPrizes(t *testing.T) {
	tiers := []prize.BreakupEntry{
		{FromRank: 1, ToRank: 1, Amount: 5000},
		{FromRank: 2, ToRank: 3, Amount: 1000},
	}

	ranked := []Entry{
		{ID: "e-1", Rank: 1},
		{ID: "e-2", Rank: 2},
		{ID: "e-3", Rank: 3},
		{ID: "e-4", Rank: 4},
	}

	assigned := AssignPrizes(ranked, tiers, 3)

	want := map[string]int64{"e-1": 5000, "e-2": 1000, "e-3": 1000, "e-4": 0}
	for _, entry := range assigned {
		if entry.WinAmount == nil {
			t.Fatalf("entry %s win amount left unset", entry.ID)
		}
		if *entry.WinAmount != want[entry.ID] {
			t.Errorf("entry %s win amount = %d, want %d", entry.ID, *entry.WinAmount, want[entry.ID])
		}
		if entry.Status != StatusPrizeAssigned {
			t.Errorf("entry %s status = %s, want %s", entry.ID, entry.Status, StatusPrizeAssigned)
		}
	}
}
