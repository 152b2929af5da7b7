package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusCompleted Status = "COMPLETED"
)

type EventType string

const (
	EventTypePartialUpdate  EventType = "PARTIAL_UPDATE"
	EventTypeMatchCompleted EventType = "MATCH_COMPLETED"
)

// Match is a single racquet-sport fixture inside a tournament.
type Match struct {
	ID           string
	TournamentID string
	Round        string
	Status       Status
	StartsAt     time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PlayerLine is one player's stat line as reported by the live feed.
type PlayerLine struct {
	PlayerID       string  `json:"playerId"`
	PointsScored   int     `json:"pointsScored"`
	PointsConceded int     `json:"pointsConceded"`
	SetsWon        int     `json:"setsWon"`
	Winners        int     `json:"winners"`
	Aces           int     `json:"aces"`
	Errors         int     `json:"errors"`
	Faults         int     `json:"faults"`
	RalliesWon     int     `json:"ralliesWon"`
	IsMatchWinner  bool    `json:"isMatchWinner"`
	PlayerScore    int     `json:"playerScore"`
	OpponentScore  int     `json:"opponentScore"`
	FantasyPoints  float64 `json:"-"`
}

// Event is a scoring event pushed by the live feed. EventKey uniquely
// identifies the event across retries; the engine folds each key into the
// performance store and into every team total at most once.
type Event struct {
	EventKey     string       `json:"eventKey"`
	Type         EventType    `json:"type"`
	MatchID      string       `json:"matchId"`
	TournamentID string       `json:"tournamentId"`
	Round        string       `json:"round"`
	OccurredAt   time.Time    `json:"occurredAt"`
	Players      []PlayerLine `json:"players"`
}

func (e Event) Validate() error {
	if e.EventKey == "" {
		return fmt.Errorf("event key is required")
	}
	if e.MatchID == "" {
		return fmt.Errorf("match id is required")
	}
	switch e.Type {
	case EventTypePartialUpdate, EventTypeMatchCompleted:
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if len(e.Players) == 0 {
		return fmt.Errorf("event must carry at least one player line")
	}
	for _, line := range e.Players {
		if line.PlayerID == "" {
			return fmt.Errorf("player id is required on every stat line")
		}
	}
	return nil
}
