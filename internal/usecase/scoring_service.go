package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/bonus"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/match"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/performance"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/points"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
)

const defaultScoringParallelism = 8

// EventApplication summarizes one feed event's effect on team totals.
// SkippedTeams counts idempotency short-circuits, which are successes.
type EventApplication struct {
	EventKey     string
	AppliedTeams int
	SkippedTeams int
}

type ScoringService struct {
	contestRepo contest.Repository
	teamRepo    roster.Repository
	matchRepo   match.Repository
	cfg         points.Config
	bonusRules  bonus.Rules
	logger      *slog.Logger
	now         func() time.Time
	parallelism int
}

func NewScoringService(
	contestRepo contest.Repository,
	teamRepo roster.Repository,
	matchRepo match.Repository,
	cfg points.Config,
	bonusRules bonus.Rules,
	logger *slog.Logger,
) *ScoringService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ScoringService{
		contestRepo: contestRepo,
		teamRepo:    teamRepo,
		matchRepo:   matchRepo,
		cfg:         cfg,
		bonusRules:  bonusRules,
		logger:      logger,
		now:         time.Now,
		parallelism: defaultScoringParallelism,
	}
}

// SetParallelism caps how many teams one event is scored against concurrently.
func (s *ScoringService) SetParallelism(n int) {
	if n >= 1 {
		s.parallelism = n
	}
}

// ApplyMatchEvent folds one feed event into team totals. Stat lines are
// deltas since the previous event for the same match; the completion event
// carries the match outcome, earns analyst bonuses and reconciles the team
// contribution against the clamped final match score. Each event key is
// applied at most once, to the performance store and to every team, so
// redelivery is harmless.
func (s *ScoringService) ApplyMatchEvent(ctx context.Context, ev match.Event) (EventApplication, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ApplyMatchEvent")
	defer span.End()

	if err := ev.Validate(); err != nil {
		return EventApplication{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m, err := s.recordMatch(ctx, ev)
	if err != nil {
		return EventApplication{}, err
	}
	perfs, err := s.matchRepo.AccumulateStats(ctx, m, ev.EventKey, ev.Players)
	if err != nil {
		return EventApplication{}, fmt.Errorf("accumulate match stats: %w", err)
	}

	deltas := s.playerDeltas(ev, perfs)

	contests, err := s.contestRepo.ListByTournament(ctx, ev.TournamentID)
	if err != nil {
		return EventApplication{}, fmt.Errorf("list contests by tournament: %w", err)
	}

	result := EventApplication{EventKey: ev.EventKey}
	var applied, skipped atomic.Int64

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(s.parallelism)
	for _, c := range contests {
		if c.Status == contest.StatusCompleted || c.Status == contest.StatusCancelled {
			continue
		}

		teams, err := s.teamRepo.ListByContest(ctx, c.ID)
		if err != nil {
			return EventApplication{}, fmt.Errorf("list teams for contest %s: %w", c.ID, err)
		}

		for _, team := range teams {
			delta := teamDelta(team, deltas)
			if delta == 0 {
				continue
			}

			team := team
			p.Go(func(ctx context.Context) error {
				ok, err := s.teamRepo.ApplyScoreDelta(ctx, team.ID, ev.EventKey, delta)
				if err != nil {
					return fmt.Errorf("apply score delta to team %s: %w", team.ID, err)
				}
				if !ok {
					skipped.Add(1)
					s.logger.InfoContext(ctx, "duplicate scoring event ignored",
						"event_key", ev.EventKey,
						"team_id", team.ID,
					)
					return nil
				}
				applied.Add(1)
				return nil
			})
		}
	}
	if err := p.Wait(); err != nil {
		return EventApplication{}, err
	}

	result.AppliedTeams = int(applied.Load())
	result.SkippedTeams = int(skipped.Load())

	s.logger.InfoContext(ctx, "match event applied",
		"event_key", ev.EventKey,
		"match_id", ev.MatchID,
		"event_type", string(ev.Type),
		"teams_applied", result.AppliedTeams,
		"teams_skipped", result.SkippedTeams,
	)

	return result, nil
}

func (s *ScoringService) recordMatch(ctx context.Context, ev match.Event) (match.Match, error) {
	now := s.now().UTC()

	m, exists, err := s.matchRepo.GetByID(ctx, ev.MatchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		m = match.Match{
			ID:           ev.MatchID,
			TournamentID: ev.TournamentID,
			Round:        ev.Round,
			Status:       match.StatusLive,
			StartsAt:     ev.OccurredAt,
			CreatedAt:    now,
		}
	}
	if ev.Round != "" {
		m.Round = ev.Round
	}
	if ev.Type == match.EventTypeMatchCompleted {
		m.Status = match.StatusCompleted
		completedAt := ev.OccurredAt
		if completedAt.IsZero() {
			completedAt = now
		}
		m.CompletedAt = &completedAt
	}
	m.UpdatedAt = now

	if err := s.matchRepo.Upsert(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("upsert match: %w", err)
	}
	return m, nil
}

// playerDeltas turns an event's stat lines into per-player fantasy point
// deltas. Partial updates contribute their weighted stats scaled by the
// knockout multiplier. The completion event settles the match instead: it
// computes the clamped final match score plus bonuses and emits the
// difference to what the partial deltas already applied, so the match's
// cumulative contribution always lands on the clamped total.
func (s *ScoringService) playerDeltas(ev match.Event, perfs []performance.MatchPerformance) map[string]float64 {
	multiplier := bonus.RoundMultiplier(ev.Round)

	byPlayer := make(map[string]performance.MatchPerformance, len(perfs))
	for _, perf := range perfs {
		byPlayer[perf.PlayerID] = perf
	}

	deltas := make(map[string]float64, len(ev.Players))
	for _, line := range ev.Players {
		if ev.Type != match.EventTypeMatchCompleted {
			deltas[line.PlayerID] = s.lineStatScore(line) * multiplier
			continue
		}

		perf := byPlayer[line.PlayerID]
		award := s.bonusRules.Evaluate(bonus.Result{
			Round:         ev.Round,
			PlayerScore:   line.PlayerScore,
			OpponentScore: line.OpponentScore,
		})
		final := bonus.Adjust(performance.ScoreMatch(perf, s.cfg), award)
		alreadyApplied := (performance.StatScore(perf, s.cfg) - s.lineStatScore(line)) * multiplier
		deltas[line.PlayerID] = final - alreadyApplied
	}
	return deltas
}

// lineStatScore weighs one event line's delta stats, outcome excluded.
func (s *ScoringService) lineStatScore(line match.PlayerLine) float64 {
	return float64(line.SetsWon)*s.cfg.SetWin +
		float64(line.PointsScored)*s.cfg.PointWon +
		float64(line.PointsConceded)*s.cfg.PointLost +
		float64(line.Winners)*s.cfg.WinnerShot +
		float64(line.Aces)*s.cfg.Ace +
		float64(line.Errors)*s.cfg.Error +
		float64(line.Faults)*s.cfg.Fault +
		float64(line.RalliesWon)*s.cfg.RallyWon
}

func teamDelta(team roster.Team, deltas map[string]float64) float64 {
	var total float64
	for _, slot := range team.Slots {
		playerDelta, ok := deltas[slot.PlayerID]
		if !ok {
			continue
		}
		total += playerDelta * roster.SlotMultiplier(slot)
	}
	return total
}
