package cache

import (
	"context"
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	basecache "github.com/priyanshusaraf/fantasy-arena/internal/platform/cache"
)

// ContestRepository is a read-through cache in front of a contest store.
// Contest rows change rarely next to how often leaderboard and roster
// requests read them, so list and lookup results are served from the cache
// until a write invalidates them or the TTL lapses.
type ContestRepository struct {
	next  contest.Repository
	cache *basecache.Store
}

func NewContestRepository(next contest.Repository, cache *basecache.Store) *ContestRepository {
	return &ContestRepository{next: next, cache: cache}
}

func (r *ContestRepository) GetByID(ctx context.Context, contestID string) (contest.Contest, bool, error) {
	type result struct {
		item   contest.Contest
		exists bool
	}

	v, err := r.cache.GetOrLoad(ctx, "contest:id:"+contestID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, contestID)
		if err != nil {
			return nil, err
		}
		return result{item: item, exists: exists}, nil
	})
	if err != nil {
		return contest.Contest{}, false, err
	}

	res, _ := v.(result)
	return res.item, res.exists, nil
}

func (r *ContestRepository) List(ctx context.Context) ([]contest.Contest, error) {
	v, err := r.cache.GetOrLoad(ctx, "contest:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]contest.Contest(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]contest.Contest)
	return append([]contest.Contest(nil), items...), nil
}

func (r *ContestRepository) ListByTournament(ctx context.Context, tournamentID string) ([]contest.Contest, error) {
	v, err := r.cache.GetOrLoad(ctx, "contest:tournament:"+tournamentID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]contest.Contest(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]contest.Contest)
	return append([]contest.Contest(nil), items...), nil
}

func (r *ContestRepository) IncrementEntryCount(ctx context.Context, contestID string) error {
	if err := r.next.IncrementEntryCount(ctx, contestID); err != nil {
		return err
	}
	r.invalidateContest(ctx, contestID)
	return nil
}

func (r *ContestRepository) UpdateStatus(ctx context.Context, contestID string, status contest.Status, settledAt *time.Time) error {
	if err := r.next.UpdateStatus(ctx, contestID, status, settledAt); err != nil {
		return err
	}
	r.invalidateContest(ctx, contestID)
	return nil
}

func (r *ContestRepository) SavePrizes(ctx context.Context, contestID string, rows []contest.PrizeRow) error {
	if err := r.next.SavePrizes(ctx, contestID, rows); err != nil {
		return err
	}
	r.cache.Delete(ctx, "contest:prizes:"+contestID)
	return nil
}

func (r *ContestRepository) ListPrizes(ctx context.Context, contestID string) ([]contest.PrizeRow, error) {
	v, err := r.cache.GetOrLoad(ctx, "contest:prizes:"+contestID, func(ctx context.Context) (any, error) {
		rows, err := r.next.ListPrizes(ctx, contestID)
		if err != nil {
			return nil, err
		}
		return append([]contest.PrizeRow(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]contest.PrizeRow)
	return append([]contest.PrizeRow(nil), rows...), nil
}

// invalidateContest drops every cached view the contest can appear in. The
// tournament listings are cleared by prefix since the tournament id is not
// known here.
func (r *ContestRepository) invalidateContest(ctx context.Context, contestID string) {
	r.cache.Delete(ctx, "contest:id:"+contestID)
	r.cache.Delete(ctx, "contest:list")
	r.cache.DeletePrefix(ctx, "contest:tournament:")
}
