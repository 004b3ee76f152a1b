package prize

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTiersIntegrity marks a generated or stored breakup that does not cover
// the winner range or does not add up to the pool. Settlement treats it as a
// warning, not a stop: uncovered ranks simply win zero.
var ErrTiersIntegrity = errors.New("prize breakup integrity violation")

// BreakupEntry is one row of a contest prize table: either a single rank
// (FromRank == ToRank) or an inclusive rank range. Amount is the prize for
// each rank in the row; Percent is the display share of the whole row.
type BreakupEntry struct {
	FromRank int
	ToRank   int
	Amount   int64
	Percent  float64
}

func (b BreakupEntry) Ranks() int {
	return b.ToRank - b.FromRank + 1
}

func (b BreakupEntry) Contains(rank int) bool {
	return rank >= b.FromRank && rank <= b.ToRank
}

func (b BreakupEntry) Total() int64 {
	return b.Amount * int64(b.Ranks())
}

// AmountForRank resolves the prize for a rank, zero when no row covers it.
func AmountForRank(tiers []BreakupEntry, rank int) int64 {
	for _, tier := range tiers {
		if tier.Contains(rank) {
			return tier.Amount
		}
	}
	return 0
}

// SumAmounts totals the money a breakup distributes across all ranks.
func SumAmounts(tiers []BreakupEntry) int64 {
	var sum int64
	for _, tier := range tiers {
		sum += tier.Total()
	}
	return sum
}

// ValidateTiers checks the structural invariants of a breakup: rows partition
// [1, winnerCount] with no gaps or overlaps, rank 1 exists, and amounts sum
// to totalPrize within a drift tolerance of one unit per row.
func ValidateTiers(tiers []BreakupEntry, totalPrize int64, winnerCount int) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: no rows", ErrTiersIntegrity)
	}

	sorted := append([]BreakupEntry(nil), tiers...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FromRank < sorted[j].FromRank
	})

	if sorted[0].FromRank != 1 {
		return fmt.Errorf("%w: first row starts at rank %d", ErrTiersIntegrity, sorted[0].FromRank)
	}

	expected := 1
	for _, row := range sorted {
		if row.FromRank > row.ToRank {
			return fmt.Errorf("%w: inverted range %d-%d", ErrTiersIntegrity, row.FromRank, row.ToRank)
		}
		if row.FromRank != expected {
			return fmt.Errorf("%w: rank %d expected, row covers %d-%d", ErrTiersIntegrity, expected, row.FromRank, row.ToRank)
		}
		expected = row.ToRank + 1
	}
	if expected != winnerCount+1 {
		return fmt.Errorf("%w: rows cover ranks 1-%d, winner count is %d", ErrTiersIntegrity, expected-1, winnerCount)
	}

	sum := SumAmounts(sorted)
	tolerance := int64(len(sorted))
	if diff := sum - totalPrize; diff > tolerance || diff < -tolerance {
		return fmt.Errorf("%w: amounts sum to %d, total prize is %d", ErrTiersIntegrity, sum, totalPrize)
	}

	return nil
}
