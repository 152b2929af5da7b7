package performance

import "time"

// MatchPerformance captures one player's accumulated statistics for one
// match. Live feed events add stat deltas into it; the match-completion event
// freezes the outcome fields (IsMatchWinner, PlayerScore, OpponentScore) and
// flips MatchCompleted. Outcome fields are meaningless until then.
type MatchPerformance struct {
	MatchID        string
	PlayerID       string
	Round          string
	Winners        int
	Errors         int
	Aces           int
	Faults         int
	RalliesWon     int
	IsSetWinner    []bool
	PointsScored   int
	PointsConceded int
	IsMatchWinner  bool
	PlayerScore    int
	OpponentScore  int
	MatchCompleted bool
	RecordedAt     time.Time
}

// TournamentPerformance aggregates a player's matches across a tournament.
// FinalPosition is 1..N once the tournament has a recorded finish, 0 before.
type TournamentPerformance struct {
	PlayerID      string
	TournamentID  string
	Matches       []MatchPerformance
	FinalPosition int
}
