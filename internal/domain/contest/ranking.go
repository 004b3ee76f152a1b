package contest

import (
	"sort"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/prize"
)

// RankEntries orders entries by points descending and assigns ranks 1..N.
// Ties are broken by earliest join (CreatedAt, then entry id), so the order
// is a strict total order: equal points never share a rank.
func RankEntries(entries []Entry) []Entry {
	ranked := append([]Entry(nil), entries...)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
		return ranked[i].ID < ranked[j].ID
	})

	for idx := range ranked {
		ranked[idx].Rank = idx + 1
		ranked[idx].Status = StatusRanked
	}

	return ranked
}

// AssignPrizes maps each ranked entry to its tier amount. Ranks beyond the
// winner count, or ranks no tier covers, get an explicit zero win amount,
// distinct from the nil "not yet settled" state.
func AssignPrizes(ranked []Entry, tiers []prize.BreakupEntry, winnerCount int) []Entry {
	out := append([]Entry(nil), ranked...)

	for idx := range out {
		amount := int64(0)
		if out[idx].Rank <= winnerCount {
			amount = prize.AmountForRank(tiers, out[idx].Rank)
		}
		assigned := amount
		out[idx].WinAmount = &assigned
		out[idx].Status = StatusPrizeAssigned
	}

	return out
}
