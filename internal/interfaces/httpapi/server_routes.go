package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/prizes/preview", handler.PreviewPrizeTiers)
	mux.HandleFunc("POST /v1/teams", handler.SaveTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/users/{userID}/wallet", handler.GetWalletBalance)
	mux.HandleFunc("GET /v1/users/{userID}/wallet/transactions", handler.ListWalletTransactions)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/contests/{contestID}/settle", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SettleContest)))
	mux.Handle("POST /v1/internal/jobs/reconcile", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReconcileJob)))
	mux.Handle("POST /v1/internal/ingestion/player-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestPlayerStats)))
	mux.Handle("POST /v1/internal/ingestion/matches/{matchID}/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SyncMatchStats)))
	mux.Handle("PUT /v1/internal/matches/{matchID}/status", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UpdateMatchStatus)))
}
