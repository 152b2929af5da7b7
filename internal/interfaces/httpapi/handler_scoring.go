package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/match"
	"github.com/priyanshusaraf/fantasy-arena/internal/usecase"
)

// ApplyMatchEvent ingests one scoring event from the live feed. The feed
// retries on ambiguous failures, so duplicate event keys are expected and
// reported rather than rejected.
func (h *Handler) ApplyMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyMatchEvent")
	defer span.End()

	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var ev match.Event
	if err := decoder.Decode(&ev); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.scoringService.ApplyMatchEvent(ctx, ev)
	if err != nil {
		h.logger.WarnContext(ctx, "apply match event failed", "event_key", ev.EventKey, "match_id", ev.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"eventKey":     result.EventKey,
		"appliedTeams": result.AppliedTeams,
		"skippedTeams": result.SkippedTeams,
	})
}

func (h *Handler) SettleContest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SettleContest")
	defer span.End()

	contestID := r.PathValue("contestID")
	result, err := h.settlementService.Settle(ctx, contestID)
	if err != nil {
		h.logger.WarnContext(ctx, "settle contest failed", "contest_id", contestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]prizeRowDTO, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, prizeRowDTO{
			Rank:    row.Rank,
			TeamID:  row.TeamID,
			UserID:  row.UserID,
			Percent: row.Percent,
			Amount:  row.Amount,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"contestId":      result.ContestID,
		"entries":        result.Entries,
		"paidRanks":      result.PaidRanks,
		"rows":           rows,
		"alreadySettled": result.AlreadySettled,
		"settledAtUtc":   result.SettledAt,
	})
}

func (h *Handler) ResettleContest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResettleContest")
	defer span.End()

	contestID := r.PathValue("contestID")
	result, err := h.settlementService.Resettle(ctx, contestID)
	if err != nil {
		h.logger.WarnContext(ctx, "resettle contest failed", "contest_id", contestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"contestId":    result.ContestID,
		"teamsUpdated": result.TeamsUpdated,
		"failedTeams":  result.FailedTeams,
		"workerCount":  result.WorkerCount,
	})
}
