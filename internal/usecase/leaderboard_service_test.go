package usecase

import (
	"testing"
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	"github.com/priyanshusaraf/fantasy-arena/internal/infrastructure/repository/memory"
	"github.com/priyanshusaraf/fantasy-arena/internal/platform/cache"
)

func leaderboardTeams() []roster.Team {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []roster.Team{
		{ID: "team-1", UserID: "u1", ContestID: memory.ContestIDPickleSlamOpen, Name: "Alpha", TotalPoints: 120.5, CreatedAt: created},
		{ID: "team-2", UserID: "u2", ContestID: memory.ContestIDPickleSlamOpen, Name: "Bravo", TotalPoints: 98, CreatedAt: created.Add(time.Minute)},
		{ID: "team-3", UserID: "u3", ContestID: memory.ContestIDPickleSlamOpen, Name: "Charlie", TotalPoints: 98, CreatedAt: created.Add(2 * time.Minute)},
		{ID: "team-4", UserID: "u4", ContestID: memory.ContestIDPickleSlamOpen, Name: "Delta", TotalPoints: 98, CreatedAt: created.Add(2 * time.Minute)},
		{ID: "team-5", UserID: "u5", ContestID: memory.ContestIDPickleSlamOpen, Name: "Echo", TotalPoints: 150, CreatedAt: created.Add(3 * time.Minute)},
	}
}

func TestLeaderboardService_RankOrderAndTieBreak(t *testing.T) {
	contestRepo := memory.NewContestRepository(memory.SeedContests()...)
	teamRepo := memory.NewTeamRepository(leaderboardTeams()...)
	service := NewLeaderboardService(contestRepo, teamRepo, nil, discardLogger())

	entries, err := service.Rank(t.Context(), memory.ContestIDPickleSlamOpen)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}

	wantOrder := []string{"team-5", "team-1", "team-2", "team-3", "team-4"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, entry := range entries {
		if entry.TeamID != wantOrder[i] {
			t.Fatalf("entry %d = %s, want %s", i, entry.TeamID, wantOrder[i])
		}
		if entry.Rank != i+1 {
			t.Fatalf("entry %d rank = %d, want %d", i, entry.Rank, i+1)
		}
	}

	// team-3 and team-4 share points and creation time; id breaks the tie
	// so every team still gets a distinct rank.
	seen := make(map[int]bool)
	for _, entry := range entries {
		if seen[entry.Rank] {
			t.Fatalf("duplicate rank %d", entry.Rank)
		}
		seen[entry.Rank] = true
	}
}

func TestLeaderboardService_PaginationFromOneSnapshot(t *testing.T) {
	contestRepo := memory.NewContestRepository(memory.SeedContests()...)
	teamRepo := memory.NewTeamRepository(leaderboardTeams()...)
	snapshots := cache.NewStore(time.Minute)
	service := NewLeaderboardService(contestRepo, teamRepo, snapshots, discardLogger())

	first, err := service.GetLeaderboard(t.Context(), memory.ContestIDPickleSlamOpen, 1, 2)
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	if first.Total != 5 || len(first.Entries) != 2 {
		t.Fatalf("page 1 total=%d len=%d, want 5/2", first.Total, len(first.Entries))
	}

	// Points keep moving between page reads; pagination must not drift.
	if _, err := teamRepo.ApplyScoreDelta(t.Context(), "team-2", "evt-live", 500); err != nil {
		t.Fatalf("apply delta: %v", err)
	}

	second, err := service.GetLeaderboard(t.Context(), memory.ContestIDPickleSlamOpen, 2, 2)
	if err != nil {
		t.Fatalf("page 2 failed: %v", err)
	}
	if len(second.Entries) != 2 {
		t.Fatalf("page 2 len=%d, want 2", len(second.Entries))
	}
	if second.Entries[0].TeamID != "team-2" {
		t.Fatalf("page 2 first entry = %s, want team-2 from the original snapshot", second.Entries[0].TeamID)
	}

	third, err := service.GetLeaderboard(t.Context(), memory.ContestIDPickleSlamOpen, 3, 2)
	if err != nil {
		t.Fatalf("page 3 failed: %v", err)
	}
	if len(third.Entries) != 1 {
		t.Fatalf("page 3 len=%d, want 1", len(third.Entries))
	}

	beyond, err := service.GetLeaderboard(t.Context(), memory.ContestIDPickleSlamOpen, 9, 2)
	if err != nil {
		t.Fatalf("page beyond end failed: %v", err)
	}
	if len(beyond.Entries) != 0 {
		t.Fatalf("page beyond end len=%d, want 0", len(beyond.Entries))
	}

	// After invalidation the moved team surfaces at the top.
	service.InvalidateSnapshot(t.Context(), memory.ContestIDPickleSlamOpen)
	refreshed, err := service.GetLeaderboard(t.Context(), memory.ContestIDPickleSlamOpen, 1, 2)
	if err != nil {
		t.Fatalf("refreshed page failed: %v", err)
	}
	if refreshed.Entries[0].TeamID != "team-2" {
		t.Fatalf("refreshed leader = %s, want team-2", refreshed.Entries[0].TeamID)
	}
}
