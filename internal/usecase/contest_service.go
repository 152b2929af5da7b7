package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/prize"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
)

// PlayerOwnership is a derived statistic: how much of a contest's field holds
// a given player, computed from real rosters.
type PlayerOwnership struct {
	ContestID        string
	PlayerID         string
	TeamCount        int
	CaptainCount     int
	ViceCaptainCount int
	TotalTeams       int
	Percent          float64
}

// ContestPrizes carries the payout view of a contest: the tier table always,
// plus the settled winner rows once settlement has run.
type ContestPrizes struct {
	ContestID string
	PrizePool int64
	Settled   bool
	Tiers     []prize.Tier
	Winners   []contest.PrizeRow
}

type ContestService struct {
	contestRepo contest.Repository
	teamRepo    roster.Repository
	logger      *slog.Logger
}

func NewContestService(contestRepo contest.Repository, teamRepo roster.Repository, logger *slog.Logger) *ContestService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ContestService{
		contestRepo: contestRepo,
		teamRepo:    teamRepo,
		logger:      logger,
	}
}

func (s *ContestService) GetContest(ctx context.Context, contestID string) (contest.Contest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.GetContest")
	defer span.End()

	contestID = strings.TrimSpace(contestID)
	if contestID == "" {
		return contest.Contest{}, fmt.Errorf("%w: contest id is required", ErrInvalidInput)
	}

	c, exists, err := s.contestRepo.GetByID(ctx, contestID)
	if err != nil {
		return contest.Contest{}, fmt.Errorf("get contest: %w", err)
	}
	if !exists {
		return contest.Contest{}, fmt.Errorf("%w: contest %s", ErrNotFound, contestID)
	}
	return c, nil
}

func (s *ContestService) ListContests(ctx context.Context) ([]contest.Contest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.ListContests")
	defer span.End()

	contests, err := s.contestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}
	return contests, nil
}

func (s *ContestService) PrizeBreakdown(ctx context.Context, contestID string) (ContestPrizes, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.PrizeBreakdown")
	defer span.End()

	c, err := s.GetContest(ctx, contestID)
	if err != nil {
		return ContestPrizes{}, err
	}

	prizes := ContestPrizes{
		ContestID: c.ID,
		PrizePool: c.PrizePool,
		Settled:   c.Status == contest.StatusCompleted,
		Tiers:     prize.Breakdown(float64(c.PrizePool), c.EntryCount),
	}

	if prizes.Settled {
		winners, err := s.contestRepo.ListPrizes(ctx, c.ID)
		if err != nil {
			return ContestPrizes{}, fmt.Errorf("list contest prizes: %w", err)
		}
		prizes.Winners = winners
	}

	return prizes, nil
}

func (s *ContestService) PlayerOwnership(ctx context.Context, contestID, playerID string) (PlayerOwnership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.PlayerOwnership")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerOwnership{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	c, err := s.GetContest(ctx, contestID)
	if err != nil {
		return PlayerOwnership{}, err
	}

	teams, err := s.teamRepo.ListByContest(ctx, c.ID)
	if err != nil {
		return PlayerOwnership{}, fmt.Errorf("list teams by contest: %w", err)
	}

	ownership := PlayerOwnership{
		ContestID:  c.ID,
		PlayerID:   playerID,
		TotalTeams: len(teams),
	}
	for _, team := range teams {
		for _, slot := range team.Slots {
			if slot.PlayerID != playerID {
				continue
			}
			ownership.TeamCount++
			if slot.IsCaptain {
				ownership.CaptainCount++
			}
			if slot.IsViceCaptain {
				ownership.ViceCaptainCount++
			}
			break
		}
	}
	if ownership.TotalTeams > 0 {
		ownership.Percent = float64(ownership.TeamCount) / float64(ownership.TotalTeams) * 100
	}

	return ownership, nil
}
