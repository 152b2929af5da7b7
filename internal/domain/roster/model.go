package roster

import "time"

// Slot is one selected player inside a fantasy team. Exactly one slot per
// team carries the captain flag and exactly one the vice-captain flag.
type Slot struct {
	PlayerID      string
	Price         int64
	IsCaptain     bool
	IsViceCaptain bool
}

// Team is a user's fantasy team inside one contest. TotalPoints is a running
// accumulator, incremented per scoring event and never recomputed from
// scratch except on explicit resettlement.
type Team struct {
	ID          string
	UserID      string
	ContestID   string
	Name        string
	Slots       []Slot
	TotalPoints float64
	SpentBudget int64

	// Edit bookkeeping consumed by the change-window policy.
	EditCount     int
	LastEditAt    time.Time
	LastEditMatch string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Captain returns the captain slot's player id, empty if the roster was
// never finalized.
func (t Team) Captain() string {
	for _, slot := range t.Slots {
		if slot.IsCaptain {
			return slot.PlayerID
		}
	}
	return ""
}

func (t Team) ViceCaptain() string {
	for _, slot := range t.Slots {
		if slot.IsViceCaptain {
			return slot.PlayerID
		}
	}
	return ""
}

// HasPlayer reports whether the roster contains the given player.
func (t Team) HasPlayer(playerID string) bool {
	for _, slot := range t.Slots {
		if slot.PlayerID == playerID {
			return true
		}
	}
	return false
}
