package memory

import (
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
)

const (
	TournamentIDPickleSlam  = "pkl-slam-2026"
	ContestIDPickleSlamOpen = "pkl-slam-2026-open"
)

func SeedContests() []contest.Contest {
	startsAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	return []contest.Contest{
		{
			ID:           ContestIDPickleSlamOpen,
			TournamentID: TournamentIDPickleSlam,
			Name:         "Pickle Slam Open",
			Status:       contest.StatusUpcoming,
			EntryFee:     100,
			PrizePool:    10000,
			MaxEntries:   500,
			Rules:        contest.DefaultRuleSet(),
			StartsAt:     startsAt,
			EndsAt:       startsAt.Add(7 * 24 * time.Hour),
			CreatedAt:    startsAt.Add(-30 * 24 * time.Hour),
			UpdatedAt:    startsAt.Add(-30 * 24 * time.Hour),
		},
	}
}

// SeedPlayerPrices mirrors the externally derived skill-tier price list for
// the seeded tournament.
func SeedPlayerPrices() map[string]int64 {
	return map[string]int64{
		"pkl-p01": 180,
		"pkl-p02": 170,
		"pkl-p03": 160,
		"pkl-p04": 150,
		"pkl-p05": 140,
		"pkl-p06": 135,
		"pkl-p07": 130,
		"pkl-p08": 120,
		"pkl-p09": 110,
		"pkl-p10": 100,
		"pkl-p11": 95,
		"pkl-p12": 90,
	}
}
