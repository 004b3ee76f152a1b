package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/prize"
)

func TestPrizeService_PreviewPrizeTiers(t *testing.T) {
	t.Parallel()

	service := NewPrizeService()

	tiers, err := service.PreviewPrizeTiers(context.Background(), PrizePreviewInput{
		TotalPrize:  1000000,
		WinnerCount: 10,
		FirstPrize:  300000,
		EntryFee:    4900,
	})
	if err != nil {
		t.Fatalf("PreviewPrizeTiers error: %v", err)
	}
	if len(tiers) == 0 {
		t.Fatalf("expected at least one tier")
	}
	if tiers[0].FromRank != 1 || tiers[0].ToRank != 1 {
		t.Fatalf("first tier must cover rank 1 only: %+v", tiers[0])
	}
	if tiers[0].Amount != 300000 {
		t.Fatalf("first tier amount = %d, want 300000", tiers[0].Amount)
	}

	total := int64(0)
	for _, tier := range tiers {
		total += tier.Amount * int64(tier.Ranks())
	}
	if total != 1000000 {
		t.Fatalf("tier amounts sum to %d, want 1000000", total)
	}
}

func TestPrizeService_PreviewPrizeTiers_InvalidInput(t *testing.T) {
	t.Parallel()

	service := NewPrizeService()

	_, err := service.PreviewPrizeTiers(context.Background(), PrizePreviewInput{
		TotalPrize:  100,
		WinnerCount: 0,
		FirstPrize:  50,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, prize.ErrInvalidWinnerCount) {
		t.Fatalf("expected wrapped prize.ErrInvalidWinnerCount, got %v", err)
	}
}
