package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	"github.com/priyanshusaraf/fantasy-arena/internal/usecase"
)

type teamSelectionRequest struct {
	PlayerID      string `json:"playerId" validate:"required"`
	IsCaptain     bool   `json:"isCaptain"`
	IsViceCaptain bool   `json:"isViceCaptain"`
}

type createTeamRequest struct {
	Name       string                 `json:"name" validate:"required,min=1,max=64"`
	Selections []teamSelectionRequest `json:"selections" validate:"required,min=1,dive"`
}

type editTeamRequest struct {
	Name       string                 `json:"name" validate:"omitempty,min=1,max=64"`
	Selections []teamSelectionRequest `json:"selections" validate:"required,min=1,dive"`
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createTeamRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.rosterService.CreateTeam(ctx, usecase.UpsertTeamInput{
		UserID:     principal.UserID,
		ContestID:  r.PathValue("contestID"),
		Name:       req.Name,
		Selections: selectionsFromRequest(req.Selections),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(team))
}

func (h *Handler) EditTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EditTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req editTeamRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.rosterService.EditTeam(ctx, usecase.UpsertTeamInput{
		UserID:     principal.UserID,
		ContestID:  r.PathValue("contestID"),
		TeamID:     r.PathValue("teamID"),
		Name:       req.Name,
		Selections: selectionsFromRequest(req.Selections),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "edit team failed", "user_id", principal.UserID, "team_id", r.PathValue("teamID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(team))
}

func (h *Handler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	team, err := h.rosterService.GetUserTeam(ctx, principal.UserID, r.PathValue("contestID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(team))
}

func selectionsFromRequest(reqs []teamSelectionRequest) []roster.Selection {
	selections := make([]roster.Selection, 0, len(reqs))
	for _, sel := range reqs {
		selections = append(selections, roster.Selection{
			PlayerID:      sel.PlayerID,
			IsCaptain:     sel.IsCaptain,
			IsViceCaptain: sel.IsViceCaptain,
		})
	}
	return selections
}
