package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEditWindowClosed      = errors.New("edit window closed")
	ErrEditFrequencyExceeded = errors.New("edit frequency exceeded")
	ErrTooManyPlayersChanged = errors.New("too many players changed")
)

type ChangeFrequency string

const (
	FrequencyDaily    ChangeFrequency = "daily"
	FrequencyMatchday ChangeFrequency = "matchday"
	FrequencyOnce     ChangeFrequency = "once"
)

// EditPolicy governs roster edits while a tournament is running. The daily
// window is expressed as "HH:MM" clock times, evaluated in UTC.
type EditPolicy struct {
	AllowChanges       bool
	Frequency          ChangeFrequency
	MaxPlayersToChange int
	WindowStart        string
	WindowEnd          string
}

// TournamentState is the slice of tournament lifecycle the policy needs.
type TournamentState struct {
	Started         bool
	Ended           bool
	CurrentMatchday string
}

// Allow decides whether an edit changing changedPlayers roster slots may
// proceed at the given time. Edits before tournament start are free;
// edits after tournament end are always rejected.
func (p EditPolicy) Allow(team Team, changedPlayers int, now time.Time, state TournamentState) error {
	if state.Ended {
		return fmt.Errorf("%w: tournament has ended", ErrEditWindowClosed)
	}
	if !p.AllowChanges {
		return fmt.Errorf("%w: contest does not allow team changes", ErrEditWindowClosed)
	}
	if !state.Started {
		return nil
	}

	if !p.withinDailyWindow(now.UTC()) {
		return fmt.Errorf("%w: edits allowed between %s and %s UTC", ErrEditWindowClosed, p.WindowStart, p.WindowEnd)
	}

	if p.MaxPlayersToChange > 0 && changedPlayers > p.MaxPlayersToChange {
		return fmt.Errorf("%w: changed %d players, at most %d allowed", ErrTooManyPlayersChanged, changedPlayers, p.MaxPlayersToChange)
	}

	switch p.Frequency {
	case FrequencyOnce:
		if team.EditCount > 0 {
			return fmt.Errorf("%w: only one edit allowed after tournament start", ErrEditFrequencyExceeded)
		}
	case FrequencyDaily:
		if team.EditCount > 0 && sameUTCDay(team.LastEditAt, now) {
			return fmt.Errorf("%w: team already edited today", ErrEditFrequencyExceeded)
		}
	case FrequencyMatchday:
		if team.EditCount > 0 && team.LastEditMatch != "" && team.LastEditMatch == state.CurrentMatchday {
			return fmt.Errorf("%w: team already edited this matchday", ErrEditFrequencyExceeded)
		}
	}

	return nil
}

func (p EditPolicy) withinDailyWindow(now time.Time) bool {
	start, okStart := parseClock(p.WindowStart)
	end, okEnd := parseClock(p.WindowEnd)
	if !okStart || !okEnd {
		// No configured window means edits are allowed all day.
		return true
	}

	minute := now.Hour()*60 + now.Minute()
	if start <= end {
		return minute >= start && minute <= end
	}
	// Window crossing midnight.
	return minute >= start || minute <= end
}

func parseClock(v string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

func sameUTCDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ChangedPlayers counts how many players of the next roster are not present
// in the current one. Role-flag moves between the same players do not count.
func ChangedPlayers(current, next []Slot) int {
	existing := make(map[string]struct{}, len(current))
	for _, slot := range current {
		existing[slot.PlayerID] = struct{}{}
	}

	changed := 0
	for _, slot := range next {
		if _, ok := existing[slot.PlayerID]; !ok {
			changed++
		}
	}

	return changed
}
