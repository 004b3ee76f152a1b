package usecase

import (
	"context"
	"fmt"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/prize"
)

// PrizeService exposes the tier policy for contest creation previews.
type PrizeService struct{}

func NewPrizeService() *PrizeService {
	return &PrizeService{}
}

type PrizePreviewInput struct {
	TotalPrize  int64
	WinnerCount int
	FirstPrize  int64
	EntryFee    int64
}

// PreviewPrizeTiers generates the breakup a contest with these parameters
// would settle with. The output is exactly what settlement will use later;
// there is no separate stored copy to drift from.
func (s *PrizeService) PreviewPrizeTiers(ctx context.Context, input PrizePreviewInput) ([]prize.BreakupEntry, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PrizeService.PreviewPrizeTiers")
	defer span.End()

	tiers, err := prize.GenerateTiers(input.TotalPrize, input.WinnerCount, input.FirstPrize, input.EntryFee)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return tiers, nil
}
