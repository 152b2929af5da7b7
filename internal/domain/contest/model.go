package contest

import "time"

type Status string

const (
	StatusUpcoming   Status = "UPCOMING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Contest is a paid fantasy competition attached to a single tournament.
type Contest struct {
	ID           string
	TournamentID string
	Name         string
	Status       Status
	EntryFee     int64
	PrizePool    int64
	MaxEntries   int
	EntryCount   int
	Rules        RuleSet
	StartsAt     time.Time
	EndsAt       time.Time
	SettledAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AcceptsEntries reports whether a new team can still join the contest.
func (c Contest) AcceptsEntries() bool {
	if c.Status != StatusUpcoming && c.Status != StatusInProgress {
		return false
	}
	if c.MaxEntries > 0 && c.EntryCount >= c.MaxEntries {
		return false
	}
	return true
}

// Started reports whether the underlying tournament has begun at the given time.
func (c Contest) Started(now time.Time) bool {
	return !now.Before(c.StartsAt)
}

// Ended reports whether the underlying tournament is over at the given time.
func (c Contest) Ended(now time.Time) bool {
	return !c.EndsAt.IsZero() && now.After(c.EndsAt)
}

type PrizeRow struct {
	ContestID string
	TeamID    string
	UserID    string
	Rank      int
	Percent   float64
	Amount    float64
}
