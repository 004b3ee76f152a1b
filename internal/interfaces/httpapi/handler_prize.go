package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/prize"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/usecase"
)

type prizeTierDTO struct {
	FromRank int     `json:"fromRank"`
	ToRank   int     `json:"toRank"`
	Amount   int64   `json:"amount"`
	Percent  float64 `json:"percent"`
}

type prizePreviewDTO struct {
	TotalPrize  int64          `json:"totalPrize"`
	WinnerCount int            `json:"winnerCount"`
	Tiers       []prizeTierDTO `json:"tiers"`
}

func (h *Handler) PreviewPrizeTiers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewPrizeTiers")
	defer span.End()

	totalPrize, err := queryInt64(r, "total_prize")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	winnerCount, err := queryInt64(r, "winner_count")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	firstPrize, err := queryInt64(r, "first_prize")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entryFee, err := queryInt64(r, "entry_fee")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tiers, err := h.prizeService.PreviewPrizeTiers(ctx, usecase.PrizePreviewInput{
		TotalPrize:  totalPrize,
		WinnerCount: int(winnerCount),
		FirstPrize:  firstPrize,
		EntryFee:    entryFee,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "preview prize tiers failed",
			"total_prize", totalPrize,
			"winner_count", winnerCount,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prizePreviewDTO{
		TotalPrize:  totalPrize,
		WinnerCount: int(winnerCount),
		Tiers:       prizeTiersToDTO(tiers),
	})
}

func prizeTiersToDTO(tiers []prize.BreakupEntry) []prizeTierDTO {
	out := make([]prizeTierDTO, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, prizeTierDTO{
			FromRank: tier.FromRank,
			ToRank:   tier.ToRank,
			Amount:   tier.Amount,
			Percent:  tier.Percent,
		})
	}
	return out
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidQueryParamError(name, raw)
	}
	return parsed, nil
}
