package httpapi

import (
	"net/http"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/team"
)

type fantasyTeamDTO struct {
	ID            string   `json:"id"`
	UserID        string   `json:"userId"`
	MatchID       string   `json:"matchId"`
	Name          string   `json:"name"`
	PlayerIDs     []string `json:"playerIds"`
	CaptainID     string   `json:"captainId"`
	ViceCaptainID string   `json:"viceCaptainId"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

type saveTeamRequest struct {
	ID            string   `json:"id"`
	UserID        string   `json:"userId" validate:"required"`
	MatchID       string   `json:"matchId" validate:"required"`
	Name          string   `json:"name"`
	PlayerIDs     []string `json:"playerIds" validate:"required,len=11"`
	CaptainID     string   `json:"captainId" validate:"required"`
	ViceCaptainID string   `json:"viceCaptainId" validate:"required"`
}

func (h *Handler) SaveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTeam")
	defer span.End()

	var payload saveTeamRequest
	if err := h.decodeBody(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.teamService.SaveTeam(ctx, team.FantasyTeam{
		ID:            payload.ID,
		UserID:        payload.UserID,
		MatchID:       payload.MatchID,
		Name:          payload.Name,
		PlayerIDs:     payload.PlayerIDs,
		CaptainID:     payload.CaptainID,
		ViceCaptainID: payload.ViceCaptainID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save fantasy team failed", "user_id", payload.UserID, "match_id", payload.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(saved))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fantasy team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func teamToDTO(item team.FantasyTeam) fantasyTeamDTO {
	return fantasyTeamDTO{
		ID:            item.ID,
		UserID:        item.UserID,
		MatchID:       item.MatchID,
		Name:          item.Name,
		PlayerIDs:     item.PlayerIDs,
		CaptainID:     item.CaptainID,
		ViceCaptainID: item.ViceCaptainID,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
