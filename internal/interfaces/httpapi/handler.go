package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/leaderboard"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	"github.com/priyanshusaraf/fantasy-arena/internal/usecase"
)

type Handler struct {
	contestService     *usecase.ContestService
	rosterService      *usecase.RosterService
	scoringService     *usecase.ScoringService
	leaderboardService *usecase.LeaderboardService
	settlementService  *usecase.SettlementService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	contestService *usecase.ContestService,
	rosterService *usecase.RosterService,
	scoringService *usecase.ScoringService,
	leaderboardService *usecase.LeaderboardService,
	settlementService *usecase.SettlementService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		contestService:     contestService,
		rosterService:      rosterService,
		scoringService:     scoringService,
		leaderboardService: leaderboardService,
		settlementService:  settlementService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type contestDTO struct {
	ID           string  `json:"id"`
	TournamentID string  `json:"tournamentId"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	EntryFee     int64   `json:"entryFee"`
	PrizePool    int64   `json:"prizePool"`
	MaxEntries   int     `json:"maxEntries"`
	EntryCount   int     `json:"entryCount"`
	StartsAt     string  `json:"startsAt"`
	EndsAt       string  `json:"endsAt"`
	SettledAt    *string `json:"settledAt,omitempty"`
}

type teamDTO struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	ContestID   string        `json:"contestId"`
	Name        string        `json:"name"`
	Slots       []teamSlotDTO `json:"slots"`
	TotalPoints float64       `json:"totalPoints"`
	SpentBudget int64         `json:"spentBudget"`
	EditCount   int           `json:"editCount"`
	CreatedAt   string        `json:"createdAtUtc"`
	UpdatedAt   string        `json:"updatedAtUtc"`
}

type teamSlotDTO struct {
	PlayerID      string `json:"playerId"`
	Price         int64  `json:"price"`
	IsCaptain     bool   `json:"isCaptain"`
	IsViceCaptain bool   `json:"isViceCaptain"`
}

type leaderboardPageDTO struct {
	ContestID string                `json:"contestId"`
	Entries   []leaderboardEntryDTO `json:"entries"`
	Total     int                   `json:"total"`
	Page      int                   `json:"page"`
	Limit     int                   `json:"limit"`
}

type leaderboardEntryDTO struct {
	Rank     int     `json:"rank"`
	TeamID   string  `json:"teamId"`
	TeamName string  `json:"teamName"`
	UserID   string  `json:"userId"`
	Points   float64 `json:"points"`
}

type prizeTierDTO struct {
	Rank    int     `json:"rank"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

type prizeRowDTO struct {
	Rank    int     `json:"rank"`
	TeamID  string  `json:"teamId"`
	UserID  string  `json:"userId"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

type contestPrizesDTO struct {
	ContestID string         `json:"contestId"`
	PrizePool int64          `json:"prizePool"`
	Settled   bool           `json:"settled"`
	Tiers     []prizeTierDTO `json:"tiers"`
	Winners   []prizeRowDTO  `json:"winners,omitempty"`
}

type ownershipDTO struct {
	ContestID        string  `json:"contestId"`
	PlayerID         string  `json:"playerId"`
	TeamCount        int     `json:"teamCount"`
	CaptainCount     int     `json:"captainCount"`
	ViceCaptainCount int     `json:"viceCaptainCount"`
	TotalTeams       int     `json:"totalTeams"`
	Percent          float64 `json:"percent"`
}

func contestToDTO(v contest.Contest) contestDTO {
	dto := contestDTO{
		ID:           v.ID,
		TournamentID: v.TournamentID,
		Name:         v.Name,
		Status:       string(v.Status),
		EntryFee:     v.EntryFee,
		PrizePool:    v.PrizePool,
		MaxEntries:   v.MaxEntries,
		EntryCount:   v.EntryCount,
		StartsAt:     v.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:       v.EndsAt.UTC().Format(time.RFC3339),
	}
	if v.SettledAt != nil {
		settled := v.SettledAt.UTC().Format(time.RFC3339)
		dto.SettledAt = &settled
	}
	return dto
}

func teamToDTO(v roster.Team) teamDTO {
	slots := make([]teamSlotDTO, 0, len(v.Slots))
	for _, slot := range v.Slots {
		slots = append(slots, teamSlotDTO{
			PlayerID:      slot.PlayerID,
			Price:         slot.Price,
			IsCaptain:     slot.IsCaptain,
			IsViceCaptain: slot.IsViceCaptain,
		})
	}

	return teamDTO{
		ID:          v.ID,
		UserID:      v.UserID,
		ContestID:   v.ContestID,
		Name:        v.Name,
		Slots:       slots,
		TotalPoints: v.TotalPoints,
		SpentBudget: v.SpentBudget,
		EditCount:   v.EditCount,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func leaderboardPageToDTO(page leaderboard.Page) leaderboardPageDTO {
	entries := make([]leaderboardEntryDTO, 0, len(page.Entries))
	for _, entry := range page.Entries {
		entries = append(entries, leaderboardEntryDTO{
			Rank:     entry.Rank,
			TeamID:   entry.TeamID,
			TeamName: entry.TeamName,
			UserID:   entry.UserID,
			Points:   entry.Points,
		})
	}

	return leaderboardPageDTO{
		ContestID: page.ContestID,
		Entries:   entries,
		Total:     page.Total,
		Page:      page.Page,
		Limit:     page.Limit,
	}
}

func prizesToDTO(v usecase.ContestPrizes) contestPrizesDTO {
	tiers := make([]prizeTierDTO, 0, len(v.Tiers))
	for _, tier := range v.Tiers {
		tiers = append(tiers, prizeTierDTO{
			Rank:    tier.Rank,
			Percent: tier.Percent,
			Amount:  tier.Amount,
		})
	}

	winners := make([]prizeRowDTO, 0, len(v.Winners))
	for _, row := range v.Winners {
		winners = append(winners, prizeRowDTO{
			Rank:    row.Rank,
			TeamID:  row.TeamID,
			UserID:  row.UserID,
			Percent: row.Percent,
			Amount:  row.Amount,
		})
	}

	return contestPrizesDTO{
		ContestID: v.ContestID,
		PrizePool: v.PrizePool,
		Settled:   v.Settled,
		Tiers:     tiers,
		Winners:   winners,
	}
}

func ownershipToDTO(v usecase.PlayerOwnership) ownershipDTO {
	return ownershipDTO{
		ContestID:        v.ContestID,
		PlayerID:         v.PlayerID,
		TeamCount:        v.TeamCount,
		CaptainCount:     v.CaptainCount,
		ViceCaptainCount: v.ViceCaptainCount,
		TotalTeams:       v.TotalTeams,
		Percent:          v.Percent,
	}
}
