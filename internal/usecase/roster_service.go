package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	idgen "github.com/priyanshusaraf/fantasy-arena/internal/platform/id"
)

// MatchFeed exposes the live tournament data the engine does not own: player
// prices derived from skill tiers and the current matchday label.
type MatchFeed interface {
	PlayerPrices(ctx context.Context, tournamentID string) (map[string]int64, error)
	CurrentMatchday(ctx context.Context, tournamentID string) (string, error)
}

// UpsertTeamInput is the incoming payload for create/edit team.
type UpsertTeamInput struct {
	UserID     string
	ContestID  string
	TeamID     string
	Name       string
	Selections []roster.Selection
}

type RosterService struct {
	contestRepo contest.Repository
	teamRepo    roster.Repository
	feed        MatchFeed
	idGen       idgen.Generator
	logger      *slog.Logger
	now         func() time.Time
}

func NewRosterService(
	contestRepo contest.Repository,
	teamRepo roster.Repository,
	feed MatchFeed,
	idGen idgen.Generator,
	logger *slog.Logger,
) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}

	return &RosterService{
		contestRepo: contestRepo,
		teamRepo:    teamRepo,
		feed:        feed,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *RosterService) CreateTeam(ctx context.Context, input UpsertTeamInput) (roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CreateTeam")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.ContestID = strings.TrimSpace(input.ContestID)
	input.Name = strings.TrimSpace(input.Name)

	if input.UserID == "" {
		return roster.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.ContestID == "" {
		return roster.Team{}, fmt.Errorf("%w: contest id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return roster.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	c, err := s.getContest(ctx, input.ContestID)
	if err != nil {
		return roster.Team{}, err
	}
	if !c.AcceptsEntries() {
		return roster.Team{}, fmt.Errorf("%w: contest %s is not accepting entries", ErrInvalidInput, c.ID)
	}

	_, exists, err := s.teamRepo.GetByUserAndContest(ctx, input.UserID, input.ContestID)
	if err != nil {
		return roster.Team{}, fmt.Errorf("get existing team: %w", err)
	}
	if exists {
		return roster.Team{}, fmt.Errorf("%w: user already entered contest %s", ErrInvalidInput, c.ID)
	}

	slots, err := s.buildSlots(ctx, c, input.Selections)
	if err != nil {
		return roster.Team{}, err
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return roster.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	team := roster.Team{
		ID:          teamID,
		UserID:      input.UserID,
		ContestID:   input.ContestID,
		Name:        input.Name,
		Slots:       slots,
		SpentBudget: spentBudget(slots),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.teamRepo.Upsert(ctx, team); err != nil {
		return roster.Team{}, fmt.Errorf("upsert team: %w", err)
	}
	if err := s.contestRepo.IncrementEntryCount(ctx, c.ID); err != nil {
		return roster.Team{}, fmt.Errorf("increment contest entry count: %w", err)
	}

	s.logger.InfoContext(ctx, "fantasy team created",
		"user_id", input.UserID,
		"contest_id", input.ContestID,
		"team_id", team.ID,
		"slot_count", len(team.Slots),
	)

	return team, nil
}

func (s *RosterService) EditTeam(ctx context.Context, input UpsertTeamInput) (roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.EditTeam")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.ContestID = strings.TrimSpace(input.ContestID)
	input.TeamID = strings.TrimSpace(input.TeamID)

	if input.UserID == "" {
		return roster.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.TeamID == "" {
		return roster.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	team, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return roster.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists || (input.ContestID != "" && team.ContestID != input.ContestID) {
		return roster.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, input.TeamID)
	}
	if team.UserID != input.UserID {
		return roster.Team{}, fmt.Errorf("%w: team %s belongs to another user", ErrForbidden, team.ID)
	}

	c, err := s.getContest(ctx, team.ContestID)
	if err != nil {
		return roster.Team{}, err
	}

	slots, err := s.buildSlots(ctx, c, input.Selections)
	if err != nil {
		return roster.Team{}, err
	}

	now := s.now().UTC()
	state, err := s.tournamentState(ctx, c, now)
	if err != nil {
		return roster.Team{}, err
	}

	changed := roster.ChangedPlayers(team.Slots, slots)
	if err := c.Rules.EditPolicy().Allow(team, changed, now, state); err != nil {
		return roster.Team{}, err
	}

	team.Slots = slots
	team.SpentBudget = spentBudget(slots)
	team.UpdatedAt = now
	if input.Name = strings.TrimSpace(input.Name); input.Name != "" {
		team.Name = input.Name
	}
	// Pre-start edits are free and do not consume the change allowance.
	if state.Started {
		team.EditCount++
		team.LastEditAt = now
		team.LastEditMatch = state.CurrentMatchday
	}

	if err := s.teamRepo.Upsert(ctx, team); err != nil {
		return roster.Team{}, fmt.Errorf("upsert team: %w", err)
	}

	s.logger.InfoContext(ctx, "fantasy team edited",
		"user_id", input.UserID,
		"contest_id", team.ContestID,
		"team_id", team.ID,
		"changed_players", changed,
	)

	return team, nil
}

func (s *RosterService) GetUserTeam(ctx context.Context, userID, contestID string) (roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetUserTeam")
	defer span.End()

	userID = strings.TrimSpace(userID)
	contestID = strings.TrimSpace(contestID)
	if userID == "" || contestID == "" {
		return roster.Team{}, fmt.Errorf("%w: user id and contest id are required", ErrInvalidInput)
	}

	team, exists, err := s.teamRepo.GetByUserAndContest(ctx, userID, contestID)
	if err != nil {
		return roster.Team{}, fmt.Errorf("get team by user and contest: %w", err)
	}
	if !exists {
		return roster.Team{}, fmt.Errorf("%w: no team for user in contest %s", ErrNotFound, contestID)
	}

	return team, nil
}

func (s *RosterService) getContest(ctx context.Context, contestID string) (contest.Contest, error) {
	c, exists, err := s.contestRepo.GetByID(ctx, contestID)
	if err != nil {
		return contest.Contest{}, fmt.Errorf("get contest: %w", err)
	}
	if !exists {
		return contest.Contest{}, fmt.Errorf("%w: contest %s", ErrNotFound, contestID)
	}
	return c, nil
}

func (s *RosterService) buildSlots(ctx context.Context, c contest.Contest, selections []roster.Selection) ([]roster.Slot, error) {
	prices, err := s.feed.PlayerPrices(ctx, c.TournamentID)
	if err != nil {
		return nil, fmt.Errorf("%w: load player prices: %v", ErrDependencyUnavailable, err)
	}

	slots, err := roster.Validate(selections, c.Rules.RosterRules(), prices)
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *RosterService) tournamentState(ctx context.Context, c contest.Contest, now time.Time) (roster.TournamentState, error) {
	state := roster.TournamentState{
		Started: c.Started(now) || c.Status == contest.StatusInProgress,
		Ended:   c.Ended(now) || c.Status == contest.StatusCompleted || c.Status == contest.StatusCancelled,
	}
	if !state.Started || state.Ended {
		return state, nil
	}

	if roster.ChangeFrequency(c.Rules.ChangeFrequency) == roster.FrequencyMatchday {
		matchday, err := s.feed.CurrentMatchday(ctx, c.TournamentID)
		if err != nil {
			return roster.TournamentState{}, fmt.Errorf("%w: load current matchday: %v", ErrDependencyUnavailable, err)
		}
		state.CurrentMatchday = matchday
	}
	return state, nil
}

func spentBudget(slots []roster.Slot) int64 {
	var total int64
	for _, slot := range slots {
		total += slot.Price
	}
	return total
}
