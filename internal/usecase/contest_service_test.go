package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	"github.com/priyanshusaraf/fantasy-arena/internal/infrastructure/repository/memory"
)

func TestContestService_PlayerOwnership(t *testing.T) {
	contestRepo := memory.NewContestRepository(memory.SeedContests()...)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	teamRepo := memory.NewTeamRepository(
		roster.Team{
			ID: "team-1", UserID: "u1", ContestID: memory.ContestIDPickleSlamOpen,
			Slots:     []roster.Slot{{PlayerID: "pkl-p01", IsCaptain: true}, {PlayerID: "pkl-p02", IsViceCaptain: true}},
			CreatedAt: created,
		},
		roster.Team{
			ID: "team-2", UserID: "u2", ContestID: memory.ContestIDPickleSlamOpen,
			Slots:     []roster.Slot{{PlayerID: "pkl-p01", IsViceCaptain: true}, {PlayerID: "pkl-p03", IsCaptain: true}},
			CreatedAt: created,
		},
		roster.Team{
			ID: "team-3", UserID: "u3", ContestID: memory.ContestIDPickleSlamOpen,
			Slots:     []roster.Slot{{PlayerID: "pkl-p03", IsCaptain: true}, {PlayerID: "pkl-p04", IsViceCaptain: true}},
			CreatedAt: created,
		},
		roster.Team{
			ID: "team-other", UserID: "u4", ContestID: "another-contest",
			Slots:     []roster.Slot{{PlayerID: "pkl-p01", IsCaptain: true}},
			CreatedAt: created,
		},
	)
	service := NewContestService(contestRepo, teamRepo, discardLogger())

	ownership, err := service.PlayerOwnership(t.Context(), memory.ContestIDPickleSlamOpen, "pkl-p01")
	if err != nil {
		t.Fatalf("player ownership failed: %v", err)
	}
	if ownership.TeamCount != 2 || ownership.TotalTeams != 3 {
		t.Fatalf("ownership counts = %d/%d, want 2/3", ownership.TeamCount, ownership.TotalTeams)
	}
	if ownership.CaptainCount != 1 || ownership.ViceCaptainCount != 1 {
		t.Fatalf("role counts = captain %d / vice %d, want 1/1", ownership.CaptainCount, ownership.ViceCaptainCount)
	}
	if want := 200.0 / 3.0; !almostEqualPoints(ownership.Percent, want) {
		t.Fatalf("ownership percent = %v, want %v", ownership.Percent, want)
	}

	unowned, err := service.PlayerOwnership(t.Context(), memory.ContestIDPickleSlamOpen, "pkl-p12")
	if err != nil {
		t.Fatalf("unowned player failed: %v", err)
	}
	if unowned.TeamCount != 0 || unowned.Percent != 0 {
		t.Fatalf("unowned player = %+v, want zero ownership", unowned)
	}
}

func TestContestService_PrizeBreakdown(t *testing.T) {
	seeded := memory.SeedContests()
	seeded[0].EntryCount = 15
	contestRepo := memory.NewContestRepository(seeded...)
	teamRepo := memory.NewTeamRepository()
	service := NewContestService(contestRepo, teamRepo, discardLogger())

	prizes, err := service.PrizeBreakdown(t.Context(), memory.ContestIDPickleSlamOpen)
	if err != nil {
		t.Fatalf("prize breakdown failed: %v", err)
	}
	if prizes.Settled {
		t.Fatal("unsettled contest reported as settled")
	}
	if len(prizes.Tiers) != 3 {
		t.Fatalf("expected 3 tiers for 15 entries, got %d", len(prizes.Tiers))
	}
	if prizes.Tiers[0].Amount != 4000 {
		t.Fatalf("rank 1 amount = %v, want 4000", prizes.Tiers[0].Amount)
	}

	rows := []contest.PrizeRow{{ContestID: memory.ContestIDPickleSlamOpen, TeamID: "team-1", UserID: "u1", Rank: 1, Percent: 40, Amount: 4000}}
	if err := contestRepo.SavePrizes(t.Context(), memory.ContestIDPickleSlamOpen, rows); err != nil {
		t.Fatalf("save prizes: %v", err)
	}
	if err := contestRepo.UpdateStatus(t.Context(), memory.ContestIDPickleSlamOpen, contest.StatusCompleted, nil); err != nil {
		t.Fatalf("update status: %v", err)
	}

	settled, err := service.PrizeBreakdown(t.Context(), memory.ContestIDPickleSlamOpen)
	if err != nil {
		t.Fatalf("settled breakdown failed: %v", err)
	}
	if !settled.Settled || len(settled.Winners) != 1 {
		t.Fatalf("settled view = settled %v winners %d, want true/1", settled.Settled, len(settled.Winners))
	}
}

func TestContestService_GetContest_NotFound(t *testing.T) {
	service := NewContestService(memory.NewContestRepository(), memory.NewTeamRepository(), discardLogger())

	_, err := service.GetContest(t.Context(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
