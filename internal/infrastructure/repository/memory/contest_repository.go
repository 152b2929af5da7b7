package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
)

type ContestRepository struct {
	mu     sync.RWMutex
	items  map[string]contest.Contest
	prizes map[string][]contest.PrizeRow
}

func NewContestRepository(seed ...contest.Contest) *ContestRepository {
	repo := &ContestRepository{
		items:  make(map[string]contest.Contest),
		prizes: make(map[string][]contest.PrizeRow),
	}
	for _, c := range seed {
		repo.items[c.ID] = c
	}
	return repo
}

func (r *ContestRepository) GetByID(_ context.Context, contestID string) (contest.Contest, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[contestID]
	if !ok {
		return contest.Contest{}, false, nil
	}
	return c, true, nil
}

func (r *ContestRepository) List(_ context.Context) ([]contest.Contest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contests := make([]contest.Contest, 0, len(r.items))
	for _, c := range r.items {
		contests = append(contests, c)
	}
	sort.Slice(contests, func(i, j int) bool { return contests[i].ID < contests[j].ID })
	return contests, nil
}

func (r *ContestRepository) ListByTournament(_ context.Context, tournamentID string) ([]contest.Contest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contests := make([]contest.Contest, 0)
	for _, c := range r.items {
		if c.TournamentID == tournamentID {
			contests = append(contests, c)
		}
	}
	sort.Slice(contests, func(i, j int) bool { return contests[i].ID < contests[j].ID })
	return contests, nil
}

func (r *ContestRepository) IncrementEntryCount(_ context.Context, contestID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[contestID]
	if !ok {
		return nil
	}
	c.EntryCount++
	r.items[contestID] = c
	return nil
}

func (r *ContestRepository) UpdateStatus(_ context.Context, contestID string, status contest.Status, settledAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[contestID]
	if !ok {
		return nil
	}
	c.Status = status
	c.SettledAt = settledAt
	r.items[contestID] = c
	return nil
}

func (r *ContestRepository) SavePrizes(_ context.Context, contestID string, rows []contest.PrizeRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prizes[contestID] = append([]contest.PrizeRow(nil), rows...)
	return nil
}

func (r *ContestRepository) ListPrizes(_ context.Context, contestID string) ([]contest.PrizeRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]contest.PrizeRow(nil), r.prizes[contestID]...), nil
}
