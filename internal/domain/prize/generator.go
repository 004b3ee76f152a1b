package prize

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidWinnerCount = errors.New("winner count must be greater than zero")
	ErrInvalidTotalPrize  = errors.New("total prize must be greater than zero")
	ErrInvalidFirstPrize  = errors.New("first prize must be greater than zero")
	ErrFirstPrizeTooLarge = errors.New("first prize cannot exceed total prize")
	ErrInvalidEntryFee    = errors.New("entry fee cannot be negative")
)

const (
	// Individual prize rows stop after this many ranks inside a band; the
	// rest of the band is grouped into ranges to keep the table small.
	bandHeadSize = 9

	// First grouped range size; each following group doubles, the last is
	// clamped to whatever ranks remain.
	firstGroupSize = 10

	// Mid-size contests: share of the remainder that ranks 2-10 take, the
	// rest is split evenly over ranks 11+.
	midHeadPercent = 70

	// Large contests: fixed remainder shares for the rank bands 2-10 and
	// 11-100. Ranks past 100 take whatever is left (40%).
	largeBandOnePercent = 25
	largeBandTwoPercent = 35
)

// GenerateTiers produces a deterministic prize table for a contest.
//
// Rank 1 always receives exactly firstPrize. The remainder is split by winner
// count policy:
//   - 1 winner: the single row is firstPrize.
//   - 2 winners: rank 2 takes the whole remainder.
//   - 3 winners: rank 2 gets 60% of the remainder, rank 3 the rest.
//   - 4-99 winners: ranks 2-10 take 70% of the remainder with linearly
//     decreasing weights; ranks 11+ split the remaining 30% evenly as one
//     range row. Ten or fewer winners have no tail, so ranks 2..winnerCount
//     share the whole remainder.
//   - 100+ winners: ranks 2-10 take 25% of the remainder, ranks 11-100 take
//     35%, and ranks past 100 take the last 40%. Inside a wide band the top
//     9 ranks get individual rows and the rest is grouped into doubling rank
//     ranges whose per-rank prize halves per group.
//
// Division drift is folded back into each band's first row, so amounts sum
// to totalPrize exactly for every multi-winner contest.
func GenerateTiers(totalPrize int64, winnerCount int, firstPrize, entryFee int64) ([]BreakupEntry, error) {
	switch {
	case winnerCount <= 0:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWinnerCount, winnerCount)
	case totalPrize <= 0:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTotalPrize, totalPrize)
	case firstPrize <= 0:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFirstPrize, firstPrize)
	case firstPrize > totalPrize:
		return nil, fmt.Errorf("%w: first=%d total=%d", ErrFirstPrizeTooLarge, firstPrize, totalPrize)
	case entryFee < 0:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEntryFee, entryFee)
	}

	tiers := []BreakupEntry{{FromRank: 1, ToRank: 1, Amount: firstPrize}}
	remainder := totalPrize - firstPrize

	switch {
	case winnerCount == 1:
		// Single winner takes the guaranteed first prize as-is.
	case winnerCount == 2:
		tiers = append(tiers, BreakupEntry{FromRank: 2, ToRank: 2, Amount: remainder})
	case winnerCount == 3:
		second := remainder * 60 / 100
		tiers = append(tiers,
			BreakupEntry{FromRank: 2, ToRank: 2, Amount: second},
			BreakupEntry{FromRank: 3, ToRank: 3, Amount: remainder - second},
		)
	case winnerCount < 100:
		tiers = append(tiers, distributeMid(remainder, winnerCount)...)
	default:
		tiers = append(tiers, distributeLarge(remainder, winnerCount)...)
	}

	applyDisplayPercents(tiers, totalPrize)
	return tiers, nil
}

// distributeMid splits pool for contests of 4 to 99 winners. Ranks 2-10 take
// midHeadPercent with linearly decreasing weights, ranks 11+ split the rest
// evenly as one range row. Tail division drift moves into the head pool so
// the even tail stays even and the pool pays out exactly. Ten or fewer
// winners have no tail and the head band takes the whole pool.
func distributeMid(pool int64, winnerCount int) []BreakupEntry {
	if winnerCount <= bandHeadSize+1 {
		return distributeBand(pool, 2, winnerCount)
	}

	headPool := pool * midHeadPercent / 100
	tailPool := pool - headPool
	tailCount := int64(winnerCount - bandHeadSize - 1)
	perRank := tailPool / tailCount
	headPool += tailPool - perRank*tailCount

	rows := distributeBand(headPool, 2, bandHeadSize+1)
	return append(rows, BreakupEntry{FromRank: bandHeadSize + 2, ToRank: winnerCount, Amount: perRank})
}

// distributeLarge splits pool for contests of 100 winners or more across the
// fixed bands 2-10, 11-100 and 101+. Exactly 100 winners leaves the last
// band empty, so its share rolls into the middle band. Each band is spread
// by distributeBand.
func distributeLarge(pool int64, winnerCount int) []BreakupEntry {
	bandOne := pool * largeBandOnePercent / 100
	bandTwo := pool * largeBandTwoPercent / 100
	bandThree := pool - bandOne - bandTwo

	if winnerCount == 100 {
		bandTwo += bandThree
	}

	rows := distributeBand(bandOne, 2, bandHeadSize+1)
	rows = append(rows, distributeBand(bandTwo, bandHeadSize+2, 100)...)
	if winnerCount > 100 {
		rows = append(rows, distributeBand(bandThree, 101, winnerCount)...)
	}
	return rows
}

// distributeBand spreads pool over the inclusive rank range. Ranges of at
// most bandHeadSize ranks get individual rows weighted linearly downward;
// wider ranges keep bandHeadSize individual rows and group the rest into
// doubling ranges whose per-rank prize halves per group. Any flooring drift
// is added to the range's first row so the pool is paid out exactly.
func distributeBand(pool int64, fromRank, toRank int) []BreakupEntry {
	count := toRank - fromRank + 1
	if count <= 0 {
		return nil
	}
	if pool <= 0 {
		// Nothing left past the first prize; cover the ranks anyway so the
		// table still partitions the winner range.
		return []BreakupEntry{{FromRank: fromRank, ToRank: toRank, Amount: 0}}
	}

	if count <= bandHeadSize {
		weightSum := int64(count) * int64(count+1) / 2
		rows := make([]BreakupEntry, 0, count)
		var assigned int64
		for i := 0; i < count; i++ {
			amount := pool * int64(count-i) / weightSum
			assigned += amount
			rows = append(rows, BreakupEntry{FromRank: fromRank + i, ToRank: fromRank + i, Amount: amount})
		}
		rows[0].Amount += pool - assigned
		return rows
	}

	groups := groupSizes(count - bandHeadSize)

	// Per-rank weight halves with each later group; head ranks decrease
	// linearly from roughly double the first group's weight down to it.
	groupWeight := make([]int64, len(groups))
	weight := int64(1)
	for j := len(groups) - 1; j >= 0; j-- {
		groupWeight[j] = weight
		weight *= 2
	}

	headBase := groupWeight[0]
	step := (headBase + bandHeadSize - 1) / bandHeadSize
	if step < 1 {
		step = 1
	}

	var totalWeight int64
	headWeight := make([]int64, bandHeadSize)
	for i := 0; i < bandHeadSize; i++ {
		headWeight[i] = headBase + int64(bandHeadSize-i)*step
		totalWeight += headWeight[i]
	}
	for j, size := range groups {
		totalWeight += groupWeight[j] * int64(size)
	}

	rows := make([]BreakupEntry, 0, bandHeadSize+len(groups))
	var assigned int64
	for i := 0; i < bandHeadSize; i++ {
		amount := pool * headWeight[i] / totalWeight
		assigned += amount
		rows = append(rows, BreakupEntry{FromRank: fromRank + i, ToRank: fromRank + i, Amount: amount})
	}

	next := fromRank + bandHeadSize
	for j, size := range groups {
		amount := pool * groupWeight[j] / totalWeight
		assigned += amount * int64(size)
		rows = append(rows, BreakupEntry{FromRank: next, ToRank: next + size - 1, Amount: amount})
		next += size
	}

	rows[0].Amount += pool - assigned
	return rows
}

// groupSizes builds grouped range sizes for ranks past the band head: the
// first group holds firstGroupSize ranks, each later group doubles, and the
// final group is clamped to the leftover (possibly smaller than its
// predecessor).
func groupSizes(remaining int) []int {
	sizes := make([]int, 0, 8)
	size := firstGroupSize
	for remaining > 0 {
		if size > remaining {
			size = remaining
		}
		sizes = append(sizes, size)
		remaining -= size
		size *= 2
	}
	return sizes
}

// applyDisplayPercents computes each row's display share of the pool and
// pushes any rounding residual onto rank 1's percent only. Amounts are left
// untouched: this reconciles the rendered column, not the money.
func applyDisplayPercents(tiers []BreakupEntry, totalPrize int64) {
	var sum float64
	for idx := range tiers {
		percent := roundPercent(float64(tiers[idx].Total()) / float64(totalPrize) * 100)
		tiers[idx].Percent = percent
		sum += percent
	}

	if residual := 100 - sum; residual != 0 && len(tiers) > 0 {
		tiers[0].Percent = roundPercent(tiers[0].Percent + residual)
	}
}

func roundPercent(value float64) float64 {
	return math.Round(value*100) / 100
}
