package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
)

type TeamRepository struct {
	mu            sync.Mutex
	items         map[string]roster.Team
	appliedEvents map[string]map[string]struct{}
}

func NewTeamRepository(seed ...roster.Team) *TeamRepository {
	repo := &TeamRepository{
		items:         make(map[string]roster.Team),
		appliedEvents: make(map[string]map[string]struct{}),
	}
	for _, team := range seed {
		repo.items[team.ID] = cloneTeam(team)
	}
	return repo
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (roster.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.items[teamID]
	if !ok {
		return roster.Team{}, false, nil
	}
	return cloneTeam(team), true, nil
}

func (r *TeamRepository) GetByUserAndContest(_ context.Context, userID, contestID string) (roster.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, team := range r.items {
		if team.UserID == userID && team.ContestID == contestID {
			return cloneTeam(team), true, nil
		}
	}
	return roster.Team{}, false, nil
}

func (r *TeamRepository) ListByContest(_ context.Context, contestID string) ([]roster.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teams := make([]roster.Team, 0)
	for _, team := range r.items {
		if team.ContestID == contestID {
			teams = append(teams, cloneTeam(team))
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (r *TeamRepository) Upsert(_ context.Context, team roster.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[team.ID]
	if ok {
		team.TotalPoints = existing.TotalPoints
	}
	r.items[team.ID] = cloneTeam(team)
	return nil
}

// ApplyScoreDelta adds delta to the team total unless the event key was
// already applied to this team. The applied-key check and the increment
// happen under one lock, matching the transactional ledger in postgres.
func (r *TeamRepository) ApplyScoreDelta(_ context.Context, teamID, eventKey string, delta float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.items[teamID]
	if !ok {
		return false, nil
	}

	applied, ok := r.appliedEvents[teamID]
	if !ok {
		applied = make(map[string]struct{})
		r.appliedEvents[teamID] = applied
	}
	if _, dup := applied[eventKey]; dup {
		return false, nil
	}
	applied[eventKey] = struct{}{}

	team.TotalPoints += delta
	r.items[teamID] = team
	return true, nil
}

func (r *TeamRepository) ReplaceTotal(_ context.Context, teamID string, total float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.items[teamID]
	if !ok {
		return nil
	}
	team.TotalPoints = total
	r.items[teamID] = team
	return nil
}

func cloneTeam(t roster.Team) roster.Team {
	copied := t
	copied.Slots = append([]roster.Slot(nil), t.Slots...)
	return copied
}
