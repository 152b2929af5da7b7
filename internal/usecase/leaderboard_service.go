package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/leaderboard"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	"github.com/priyanshusaraf/fantasy-arena/internal/platform/cache"
)

const (
	defaultLeaderboardLimit = 25
	maxLeaderboardLimit     = 100
)

type LeaderboardService struct {
	contestRepo contest.Repository
	teamRepo    roster.Repository
	snapshots   *cache.Store
	logger      *slog.Logger
}

func NewLeaderboardService(
	contestRepo contest.Repository,
	teamRepo roster.Repository,
	snapshots *cache.Store,
	logger *slog.Logger,
) *LeaderboardService {
	if logger == nil {
		logger = slog.Default()
	}

	return &LeaderboardService{
		contestRepo: contestRepo,
		teamRepo:    teamRepo,
		snapshots:   snapshots,
		logger:      logger,
	}
}

// GetLeaderboard returns one page of the contest ranking. Pages are sliced
// from a cached snapshot so pagination never drifts between requests while
// points keep flowing in; the snapshot expires on the cache TTL.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, contestID string, page, limit int) (leaderboard.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboard")
	defer span.End()

	contestID = strings.TrimSpace(contestID)
	if contestID == "" {
		return leaderboard.Page{}, fmt.Errorf("%w: contest id is required", ErrInvalidInput)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := s.snapshot(ctx, contestID)
	if err != nil {
		return leaderboard.Page{}, err
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}

	return leaderboard.Page{
		ContestID: contestID,
		Entries:   entries[start:end],
		Total:     len(entries),
		Page:      page,
		Limit:     limit,
	}, nil
}

// Rank computes a fresh full ranking for the contest, bypassing the snapshot
// cache. Settlement uses it to pin final positions.
func (s *LeaderboardService) Rank(ctx context.Context, contestID string) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Rank")
	defer span.End()

	_, exists, err := s.contestRepo.GetByID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("get contest: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: contest %s", ErrNotFound, contestID)
	}

	teams, err := s.teamRepo.ListByContest(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("list teams by contest: %w", err)
	}

	return rankTeams(teams), nil
}

// InvalidateSnapshot drops the cached ranking so the next read recomputes it.
func (s *LeaderboardService) InvalidateSnapshot(ctx context.Context, contestID string) {
	if s.snapshots == nil {
		return
	}
	s.snapshots.Delete(ctx, snapshotKey(contestID))
}

func (s *LeaderboardService) snapshot(ctx context.Context, contestID string) ([]leaderboard.Entry, error) {
	if s.snapshots == nil {
		return s.Rank(ctx, contestID)
	}

	value, err := s.snapshots.GetOrLoad(ctx, snapshotKey(contestID), func(ctx context.Context) (any, error) {
		return s.Rank(ctx, contestID)
	})
	if err != nil {
		return nil, err
	}

	entries, ok := value.([]leaderboard.Entry)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot type %T for contest %s", value, contestID)
	}
	return entries, nil
}

// rankTeams orders teams by points descending with a deterministic tie-break
// on creation time then id. Equal points never share a rank number; prize
// assignment needs a total order.
func rankTeams(teams []roster.Team) []leaderboard.Entry {
	sorted := make([]roster.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	entries := make([]leaderboard.Entry, 0, len(sorted))
	for i, team := range sorted {
		entries = append(entries, leaderboard.Entry{
			Rank:      i + 1,
			TeamID:    team.ID,
			TeamName:  team.Name,
			UserID:    team.UserID,
			Points:    team.TotalPoints,
			CreatedAt: team.CreatedAt,
		})
	}
	return entries
}

func snapshotKey(contestID string) string {
	return "leaderboard:" + contestID
}
