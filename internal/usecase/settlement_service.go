package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/bonus"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/leaderboard"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/match"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/performance"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/points"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/prize"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
)

const defaultResettleWorkers = 8

type SettlementResult struct {
	ContestID      string
	Entries        int
	PaidRanks      int
	Rows           []contest.PrizeRow
	AlreadySettled bool
	SettledAt      time.Time
}

type ResettleResult struct {
	ContestID    string
	TeamsUpdated int
	FailedTeams  int
	WorkerCount  int
}

type SettlementService struct {
	contestRepo  contest.Repository
	teamRepo     roster.Repository
	matchRepo    match.Repository
	leaderboards *LeaderboardService
	cfg          points.Config
	bonusRules   bonus.Rules
	logger       *slog.Logger
	now          func() time.Time
	maxWorkers   int
}

func NewSettlementService(
	contestRepo contest.Repository,
	teamRepo roster.Repository,
	matchRepo match.Repository,
	leaderboards *LeaderboardService,
	cfg points.Config,
	bonusRules bonus.Rules,
	logger *slog.Logger,
) *SettlementService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SettlementService{
		contestRepo:  contestRepo,
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		leaderboards: leaderboards,
		cfg:          cfg,
		bonusRules:   bonusRules,
		logger:       logger,
		now:          time.Now,
		maxWorkers:   defaultResettleWorkers,
	}
}

// SetMaxWorkers caps the recompute pool used by Resettle.
func (s *SettlementService) SetMaxWorkers(n int) {
	if n >= 1 {
		s.maxWorkers = n
	}
}

// Settle pins the final ranking of a contest, writes the prize rows for the
// paid ranks and marks the contest completed. Settling an already completed
// contest returns the stored rows unchanged.
func (s *SettlementService) Settle(ctx context.Context, contestID string) (SettlementResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.Settle")
	defer span.End()

	c, exists, err := s.contestRepo.GetByID(ctx, contestID)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("get contest: %w", err)
	}
	if !exists {
		return SettlementResult{}, fmt.Errorf("%w: contest %s", ErrNotFound, contestID)
	}
	if c.Status == contest.StatusCancelled {
		return SettlementResult{}, fmt.Errorf("%w: contest %s is cancelled", ErrInvalidInput, c.ID)
	}
	if c.Status == contest.StatusCompleted {
		rows, err := s.contestRepo.ListPrizes(ctx, c.ID)
		if err != nil {
			return SettlementResult{}, fmt.Errorf("list contest prizes: %w", err)
		}
		result := SettlementResult{
			ContestID:      c.ID,
			Rows:           rows,
			PaidRanks:      len(rows),
			AlreadySettled: true,
		}
		if c.SettledAt != nil {
			result.SettledAt = *c.SettledAt
		}
		return result, nil
	}

	entries, err := s.leaderboards.Rank(ctx, c.ID)
	if err != nil {
		return SettlementResult{}, err
	}

	rows := assignPrizes(c, prize.Breakdown(float64(c.PrizePool), len(entries)), entries)
	if err := s.contestRepo.SavePrizes(ctx, c.ID, rows); err != nil {
		return SettlementResult{}, fmt.Errorf("save contest prizes: %w", err)
	}

	settledAt := s.now().UTC()
	if err := s.contestRepo.UpdateStatus(ctx, c.ID, contest.StatusCompleted, &settledAt); err != nil {
		return SettlementResult{}, fmt.Errorf("mark contest completed: %w", err)
	}
	s.leaderboards.InvalidateSnapshot(ctx, c.ID)

	s.logger.InfoContext(ctx, "contest settled",
		"contest_id", c.ID,
		"entries", len(entries),
		"paid_ranks", len(rows),
	)

	return SettlementResult{
		ContestID: c.ID,
		Entries:   len(entries),
		PaidRanks: len(rows),
		Rows:      rows,
		SettledAt: settledAt,
	}, nil
}

// Resettle recomputes every team total in a contest from the stored match
// performances and replaces the live accumulators. It repairs drift after a
// feed correction; if the contest was already settled the prize rows are
// rewritten from the corrected ranking.
func (s *SettlementService) Resettle(ctx context.Context, contestID string) (ResettleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettlementService.Resettle")
	defer span.End()

	c, exists, err := s.contestRepo.GetByID(ctx, contestID)
	if err != nil {
		return ResettleResult{}, fmt.Errorf("get contest: %w", err)
	}
	if !exists {
		return ResettleResult{}, fmt.Errorf("%w: contest %s", ErrNotFound, contestID)
	}

	perfs, err := s.matchRepo.ListPerformancesByTournament(ctx, c.TournamentID)
	if err != nil {
		return ResettleResult{}, fmt.Errorf("list performances by tournament: %w", err)
	}
	playerTotals := s.playerTotals(perfs)

	teams, err := s.teamRepo.ListByContest(ctx, c.ID)
	if err != nil {
		return ResettleResult{}, fmt.Errorf("list teams by contest: %w", err)
	}

	workerCount := s.maxWorkers
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(teams) && len(teams) > 0 {
		workerCount = len(teams)
	}

	result := ResettleResult{ContestID: c.ID, WorkerCount: workerCount}
	if len(teams) == 0 {
		return result, nil
	}

	var updatedCount atomic.Int32
	var failedCount atomic.Int32

	taskPool, err := ants.NewPool(workerCount)
	if err != nil {
		return ResettleResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer taskPool.Release()

	var workers sync.WaitGroup
	for _, team := range teams {
		team := team
		workers.Add(1)
		if err := taskPool.Submit(func() {
			defer workers.Done()

			var total float64
			for _, slot := range team.Slots {
				total += playerTotals[slot.PlayerID] * roster.SlotMultiplier(slot)
			}

			if err := s.teamRepo.ReplaceTotal(ctx, team.ID, total); err != nil {
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "replace team total failed",
					"contest_id", c.ID,
					"team_id", team.ID,
					"error", err,
				)
				return
			}
			updatedCount.Add(1)
		}); err != nil {
			workers.Done()
			return ResettleResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.TeamsUpdated = int(updatedCount.Load())
	result.FailedTeams = int(failedCount.Load())

	s.leaderboards.InvalidateSnapshot(ctx, c.ID)

	if result.FailedTeams > 0 {
		return result, fmt.Errorf("resettle contest %s: %d of %d team updates failed", c.ID, result.FailedTeams, len(teams))
	}

	if c.Status == contest.StatusCompleted {
		entries, err := s.leaderboards.Rank(ctx, c.ID)
		if err != nil {
			return result, err
		}
		rows := assignPrizes(c, prize.Breakdown(float64(c.PrizePool), len(entries)), entries)
		if err := s.contestRepo.SavePrizes(ctx, c.ID, rows); err != nil {
			return result, fmt.Errorf("save contest prizes: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "contest resettled",
		"contest_id", c.ID,
		"teams_updated", result.TeamsUpdated,
		"worker_count", workerCount,
	)

	return result, nil
}

// playerTotals rebuilds each player's tournament total from stored match
// performances. Completed matches contribute their clamped score plus analyst
// bonuses, scaled by the knockout multiplier. Matches still in play carry no
// outcome yet, so only their weighted running stats count, exactly as the
// live path applied them.
func (s *SettlementService) playerTotals(perfs []performance.MatchPerformance) map[string]float64 {
	totals := make(map[string]float64)
	for _, perf := range perfs {
		if !perf.MatchCompleted {
			totals[perf.PlayerID] += performance.StatScore(perf, s.cfg) * bonus.RoundMultiplier(perf.Round)
			continue
		}

		base := performance.ScoreMatch(perf, s.cfg)
		award := s.bonusRules.Evaluate(bonus.Result{
			Round:         perf.Round,
			PlayerScore:   perf.PlayerScore,
			OpponentScore: perf.OpponentScore,
		})
		totals[perf.PlayerID] += bonus.Adjust(base, award)
	}
	return totals
}

func assignPrizes(c contest.Contest, tiers []prize.Tier, entries []leaderboard.Entry) []contest.PrizeRow {
	rows := make([]contest.PrizeRow, 0, len(tiers))
	for _, tier := range tiers {
		if tier.Rank > len(entries) {
			continue
		}
		entry := entries[tier.Rank-1]
		rows = append(rows, contest.PrizeRow{
			ContestID: c.ID,
			TeamID:    entry.TeamID,
			UserID:    entry.UserID,
			Rank:      tier.Rank,
			Percent:   tier.Percent,
			Amount:    tier.Amount,
		})
	}
	return rows
}
