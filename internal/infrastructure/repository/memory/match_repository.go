package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/match"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/performance"
)

type MatchRepository struct {
	mu            sync.RWMutex
	matches       map[string]match.Match
	performances  map[string]performance.MatchPerformance
	appliedEvents map[string]struct{}
}

func NewMatchRepository(seed ...match.Match) *MatchRepository {
	repo := &MatchRepository{
		matches:       make(map[string]match.Match),
		performances:  make(map[string]performance.MatchPerformance),
		appliedEvents: make(map[string]struct{}),
	}
	for _, m := range seed {
		repo.matches[m.ID] = m
	}
	return repo
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return m, true, nil
}

func (r *MatchRepository) Upsert(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[m.ID] = m
	return nil
}

func (r *MatchRepository) AccumulateStats(_ context.Context, m match.Match, eventKey string, lines []match.PlayerLine) ([]performance.MatchPerformance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledgerKey := eventLedgerKey(m.ID, eventKey)
	if _, seen := r.appliedEvents[ledgerKey]; !seen {
		r.appliedEvents[ledgerKey] = struct{}{}

		for _, line := range lines {
			key := performanceKey(m.ID, line.PlayerID)
			perf, ok := r.performances[key]
			if !ok {
				perf = performance.MatchPerformance{MatchID: m.ID, PlayerID: line.PlayerID}
			}

			perf.Round = m.Round
			perf.Winners += line.Winners
			perf.Aces += line.Aces
			perf.Errors += line.Errors
			perf.Faults += line.Faults
			perf.RalliesWon += line.RalliesWon
			perf.PointsScored += line.PointsScored
			perf.PointsConceded += line.PointsConceded
			for i := 0; i < line.SetsWon; i++ {
				perf.IsSetWinner = append(perf.IsSetWinner, true)
			}
			if m.Status == match.StatusCompleted {
				perf.IsMatchWinner = line.IsMatchWinner
				perf.PlayerScore = line.PlayerScore
				perf.OpponentScore = line.OpponentScore
				perf.MatchCompleted = true
			}
			perf.RecordedAt = m.UpdatedAt

			r.performances[key] = perf
		}
	}

	perfs := make([]performance.MatchPerformance, 0, len(lines))
	for _, line := range lines {
		perf, ok := r.performances[performanceKey(m.ID, line.PlayerID)]
		if !ok {
			perf = performance.MatchPerformance{MatchID: m.ID, PlayerID: line.PlayerID}
		}
		copied := perf
		copied.IsSetWinner = append([]bool(nil), perf.IsSetWinner...)
		perfs = append(perfs, copied)
	}
	return perfs, nil
}

func (r *MatchRepository) ListPerformancesByTournament(_ context.Context, tournamentID string) ([]performance.MatchPerformance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	perfs := make([]performance.MatchPerformance, 0)
	for _, perf := range r.performances {
		m, ok := r.matches[perf.MatchID]
		if !ok || m.TournamentID != tournamentID {
			continue
		}
		copied := perf
		copied.IsSetWinner = append([]bool(nil), perf.IsSetWinner...)
		perfs = append(perfs, copied)
	}
	sort.Slice(perfs, func(i, j int) bool {
		if perfs[i].MatchID != perfs[j].MatchID {
			return perfs[i].MatchID < perfs[j].MatchID
		}
		return perfs[i].PlayerID < perfs[j].PlayerID
	})
	return perfs, nil
}

func performanceKey(matchID, playerID string) string {
	return matchID + "::" + playerID
}

func eventLedgerKey(matchID, eventKey string) string {
	return matchID + "::" + eventKey
}
