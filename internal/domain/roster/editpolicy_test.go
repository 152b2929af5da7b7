package roster

import (
	"errors"
	"testing"
	"time"
)

func TestEditPolicyAllow(t *testing.T) {
	policy := EditPolicy{
		AllowChanges:       true,
		Frequency:          FrequencyDaily,
		MaxPlayersToChange: 2,
		WindowStart:        "09:00",
		WindowEnd:          "18:00",
	}

	inWindow := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	running := TournamentState{Started: true}

	tests := []struct {
		name      string
		policy    EditPolicy
		team      Team
		changed   int
		now       time.Time
		state     TournamentState
		targetErr error
	}{
		{
			name:   "first edit inside window",
			policy: policy, team: Team{}, changed: 2, now: inWindow, state: running,
		},
		{
			name:   "edits free before tournament start",
			policy: policy, team: Team{}, changed: 7,
			now: time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC), state: TournamentState{},
		},
		{
			name:   "tournament ended",
			policy: policy, team: Team{}, changed: 1, now: inWindow,
			state:     TournamentState{Started: true, Ended: true},
			targetErr: ErrEditWindowClosed,
		},
		{
			name:      "changes disallowed by contest",
			policy:    EditPolicy{AllowChanges: false},
			team:      Team{},
			changed:   1,
			now:       inWindow,
			state:     running,
			targetErr: ErrEditWindowClosed,
		},
		{
			name:   "outside daily window",
			policy: policy, team: Team{}, changed: 1,
			now:       time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC),
			state:     running,
			targetErr: ErrEditWindowClosed,
		},
		{
			name:   "too many players changed",
			policy: policy, team: Team{}, changed: 3, now: inWindow, state: running,
			targetErr: ErrTooManyPlayersChanged,
		},
		{
			name:   "second edit same day rejected",
			policy: policy,
			team:   Team{EditCount: 1, LastEditAt: inWindow.Add(-1 * time.Hour)},
			changed: 1, now: inWindow, state: running,
			targetErr: ErrEditFrequencyExceeded,
		},
		{
			name:   "edit next day allowed",
			policy: policy,
			team:   Team{EditCount: 1, LastEditAt: inWindow.Add(-26 * time.Hour)},
			changed: 1, now: inWindow, state: running,
		},
		{
			name: "once frequency rejects any second edit",
			policy: EditPolicy{
				AllowChanges: true,
				Frequency:    FrequencyOnce,
			},
			team:    Team{EditCount: 1, LastEditAt: inWindow.Add(-72 * time.Hour)},
			changed: 1, now: inWindow, state: running,
			targetErr: ErrEditFrequencyExceeded,
		},
		{
			name: "matchday frequency rejects edit in the same matchday",
			policy: EditPolicy{
				AllowChanges: true,
				Frequency:    FrequencyMatchday,
			},
			team:    Team{EditCount: 1, LastEditMatch: "md-3"},
			changed: 1, now: inWindow,
			state:     TournamentState{Started: true, CurrentMatchday: "md-3"},
			targetErr: ErrEditFrequencyExceeded,
		},
		{
			name: "matchday frequency allows edit in a new matchday",
			policy: EditPolicy{
				AllowChanges: true,
				Frequency:    FrequencyMatchday,
			},
			team:    Team{EditCount: 1, LastEditMatch: "md-3"},
			changed: 1, now: inWindow,
			state: TournamentState{Started: true, CurrentMatchday: "md-4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Allow(tt.team, tt.changed, tt.now, tt.state)
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected error %v, got %v", tt.targetErr, err)
			}
		})
	}
}

func TestEditPolicyWindowCrossingMidnight(t *testing.T) {
	policy := EditPolicy{
		AllowChanges: true,
		Frequency:    FrequencyDaily,
		WindowStart:  "22:00",
		WindowEnd:    "02:00",
	}
	state := TournamentState{Started: true}

	if err := policy.Allow(Team{}, 1, time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC), state); err != nil {
		t.Fatalf("expected edit at 23:30 allowed, got %v", err)
	}
	if err := policy.Allow(Team{}, 1, time.Date(2026, 3, 14, 1, 15, 0, 0, time.UTC), state); err != nil {
		t.Fatalf("expected edit at 01:15 allowed, got %v", err)
	}
	err := policy.Allow(Team{}, 1, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), state)
	if !errors.Is(err, ErrEditWindowClosed) {
		t.Fatalf("expected ErrEditWindowClosed at noon, got %v", err)
	}
}

func TestChangedPlayers(t *testing.T) {
	current := []Slot{{PlayerID: "p1"}, {PlayerID: "p2"}, {PlayerID: "p3"}}
	next := []Slot{{PlayerID: "p1", IsCaptain: true}, {PlayerID: "p4"}, {PlayerID: "p5"}}

	if got := ChangedPlayers(current, next); got != 2 {
		t.Fatalf("ChangedPlayers = %d, want 2", got)
	}
	if got := ChangedPlayers(current, current); got != 0 {
		t.Fatalf("ChangedPlayers identity = %d, want 0", got)
	}
}
