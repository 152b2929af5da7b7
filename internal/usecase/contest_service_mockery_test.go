package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	contestmock "github.com/priyanshusaraf/fantasy-arena/internal/mocks/domain/contest"
	rostermock "github.com/priyanshusaraf/fantasy-arena/internal/mocks/domain/roster"
)

func TestContestService_PlayerOwnership_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	contestRepo := contestmock.NewRepository(t)
	teamRepo := rostermock.NewRepository(t)

	service := NewContestService(contestRepo, teamRepo, nil)
	contestID := "pkl-open-2026"
	playerID := "player-7"

	contestRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), contestID).
		Return(contest.Contest{ID: contestID, Status: contest.StatusInProgress}, true, nil).
		Once()
	teamRepo.
		On("ListByContest", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), contestID).
		Return([]roster.Team{
			{ID: "team-1", Slots: []roster.Slot{{PlayerID: playerID, IsCaptain: true}}},
			{ID: "team-2", Slots: []roster.Slot{{PlayerID: playerID}}},
			{ID: "team-3", Slots: []roster.Slot{{PlayerID: "player-9"}}},
			{ID: "team-4", Slots: []roster.Slot{{PlayerID: playerID, IsViceCaptain: true}}},
		}, nil).
		Once()

	got, err := service.PlayerOwnership(ctx, contestID, playerID)
	if err != nil {
		t.Fatalf("player ownership: %v", err)
	}
	if got.TeamCount != 3 {
		t.Fatalf("unexpected team count: got=%d want=3", got.TeamCount)
	}
	if got.CaptainCount != 1 || got.ViceCaptainCount != 1 {
		t.Fatalf("unexpected captaincy counts: captain=%d vice=%d", got.CaptainCount, got.ViceCaptainCount)
	}
	if got.Percent != 75 {
		t.Fatalf("unexpected ownership percent: got=%v want=75", got.Percent)
	}
}

func TestContestService_PlayerOwnership_ContestNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	contestRepo := contestmock.NewRepository(t)
	teamRepo := rostermock.NewRepository(t)

	service := NewContestService(contestRepo, teamRepo, nil)
	contestID := "missing-contest"

	contestRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), contestID).
		Return(contest.Contest{}, false, nil).
		Once()

	_, err := service.PlayerOwnership(ctx, contestID, "player-7")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
