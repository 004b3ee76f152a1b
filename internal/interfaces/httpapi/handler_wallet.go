package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/wallet"
)

type walletBalanceDTO struct {
	UserID    string `json:"userId"`
	Amount    int64  `json:"amount"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type walletTransactionDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	ContestID   string `json:"contestId,omitempty"`
	EntryID     string `json:"entryId,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func (h *Handler) GetWalletBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWalletBalance")
	defer span.End()

	userID := r.PathValue("userID")
	balance, err := h.walletService.GetBalance(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get wallet balance failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := walletBalanceDTO{UserID: balance.UserID, Amount: balance.Amount}
	if !balance.UpdatedAt.IsZero() {
		dto.UpdatedAt = balance.UpdatedAt.UTC().Format(time.RFC3339)
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) ListWalletTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWalletTransactions")
	defer span.End()

	userID := r.PathValue("userID")
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, invalidQueryParamError("limit", raw))
			return
		}
		limit = parsed
	}

	transactions, err := h.walletService.ListTransactions(ctx, userID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list wallet transactions failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]walletTransactionDTO, 0, len(transactions))
	for _, item := range transactions {
		items = append(items, transactionToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func transactionToDTO(item wallet.LedgerTransaction) walletTransactionDTO {
	return walletTransactionDTO{
		ID:          item.ID,
		Type:        string(item.Type),
		Status:      string(item.Status),
		Amount:      item.Amount,
		ContestID:   item.ContestID,
		EntryID:     item.EntryID,
		Description: item.Description,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
	}
}
