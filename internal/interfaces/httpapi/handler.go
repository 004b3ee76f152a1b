package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/sunnygoyal1983/play11-w-sub002/internal/usecase"
)

type Handler struct {
	settlementService *usecase.SettlementService
	reconcileService  *usecase.ReconcileService
	prizeService      *usecase.PrizeService
	ingestionService  *usecase.IngestionService
	walletService     *usecase.WalletService
	teamService       *usecase.TeamService
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	settlementService *usecase.SettlementService,
	reconcileService *usecase.ReconcileService,
	prizeService *usecase.PrizeService,
	ingestionService *usecase.IngestionService,
	walletService *usecase.WalletService,
	teamService *usecase.TeamService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		settlementService: settlementService,
		reconcileService:  reconcileService,
		prizeService:      prizeService,
		ingestionService:  ingestionService,
		walletService:     walletService,
		teamService:       teamService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
