package leaderboard

import "time"

// Entry is a ranked row on a contest leaderboard. Entries are derived from
// team totals at read time and never stored.
type Entry struct {
	Rank      int
	TeamID    string
	TeamName  string
	UserID    string
	Points    float64
	CreatedAt time.Time
}

// Page is one window over a ranked snapshot.
type Page struct {
	ContestID string
	Entries   []Entry
	Total     int
	Page      int
	Limit     int
}
