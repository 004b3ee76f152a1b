package httpapi

import (
	"net/http"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/stats"
)

type ingestStatRowDTO struct {
	PlayerID      string  `json:"playerId" validate:"required"`
	Runs          int     `json:"runs"`
	BallsFaced    int     `json:"ballsFaced"`
	Fours         int     `json:"fours"`
	Sixes         int     `json:"sixes"`
	Dismissed     bool    `json:"dismissed"`
	Wickets       int     `json:"wickets"`
	BowledLBW     int     `json:"bowledLbw"`
	Overs         float64 `json:"overs"`
	Maidens       int     `json:"maidens"`
	RunsConceded  int     `json:"runsConceded"`
	Catches       int     `json:"catches"`
	Stumpings     int     `json:"stumpings"`
	RunOutsDirect int     `json:"runOutsDirect"`
	RunOutsAssist int     `json:"runOutsAssist"`
}

type ingestPlayerStatsRequest struct {
	MatchID string             `json:"matchId" validate:"required"`
	Rows    []ingestStatRowDTO `json:"rows" validate:"required,min=1,dive"`
}

type ingestPlayerStatsResponse struct {
	MatchID      string `json:"matchId"`
	IngestedRows int    `json:"ingestedRows"`
}

func (h *Handler) IngestPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestPlayerStats")
	defer span.End()

	var payload ingestPlayerStatsRequest
	if err := h.decodeBody(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := make([]stats.PlayerMatchStat, 0, len(payload.Rows))
	for _, row := range payload.Rows {
		rows = append(rows, stats.PlayerMatchStat{
			MatchID:       payload.MatchID,
			PlayerID:      row.PlayerID,
			Runs:          row.Runs,
			BallsFaced:    row.BallsFaced,
			Fours:         row.Fours,
			Sixes:         row.Sixes,
			Dismissed:     row.Dismissed,
			Wickets:       row.Wickets,
			BowledLBW:     row.BowledLBW,
			Overs:         row.Overs,
			Maidens:       row.Maidens,
			RunsConceded:  row.RunsConceded,
			Catches:       row.Catches,
			Stumpings:     row.Stumpings,
			RunOutsDirect: row.RunOutsDirect,
			RunOutsAssist: row.RunOutsAssist,
			UpdatedAt:     time.Now().UTC(),
		})
	}

	ingested, err := h.ingestionService.IngestPlayerStats(ctx, payload.MatchID, rows)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest player stats failed", "match_id", payload.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestPlayerStatsResponse{
		MatchID:      payload.MatchID,
		IngestedRows: ingested,
	})
}

func (h *Handler) SyncMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncMatchStats")
	defer span.End()

	matchID := r.PathValue("matchID")
	ingested, err := h.ingestionService.SyncFromFeed(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "sync match stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestPlayerStatsResponse{
		MatchID:      matchID,
		IngestedRows: ingested,
	})
}

type updateMatchStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStatus")
	defer span.End()

	matchID := r.PathValue("matchID")
	var payload updateMatchStatusRequest
	if err := h.decodeBody(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.ingestionService.UpdateMatchStatus(ctx, matchID, payload.Status); err != nil {
		h.logger.WarnContext(ctx, "update match status failed", "match_id", matchID, "status", payload.Status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"matchId": matchID,
		"status":  payload.Status,
	})
}
