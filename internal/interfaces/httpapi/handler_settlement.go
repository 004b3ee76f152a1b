package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/usecase"
)

func (h *Handler) SettleContest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SettleContest")
	defer span.End()

	contestID := r.PathValue("contestID")
	result, err := h.settlementService.SettleContest(ctx, contestID)
	if err != nil {
		h.logger.WarnContext(ctx, "settle contest failed", "contest_id", contestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunReconcileJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReconcileJob")
	defer span.End()

	windowDays := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("window_days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, invalidQueryParamError("window_days", raw))
			return
		}
		windowDays = parsed
	}

	result, err := h.reconcileService.Reconcile(ctx, windowDays)
	if err != nil {
		h.logger.ErrorContext(ctx, "reconciliation sweep failed", "window_days", windowDays, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func invalidQueryParamError(name, value string) error {
	return fmt.Errorf("%w: query parameter %s=%q is invalid", usecase.ErrInvalidInput, name, value)
}
