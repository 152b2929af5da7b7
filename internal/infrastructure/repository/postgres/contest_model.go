package postgres

import (
	"fmt"
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
)

type contestRow struct {
	PublicID           string     `db:"public_id"`
	TournamentPublicID string     `db:"tournament_public_id"`
	Name               string     `db:"name"`
	Status             string     `db:"status"`
	EntryFee           int64      `db:"entry_fee"`
	PrizePool          int64      `db:"prize_pool"`
	MaxEntries         int        `db:"max_entries"`
	EntryCount         int        `db:"entry_count"`
	Rules              []byte     `db:"rules"`
	StartsAt           time.Time  `db:"starts_at"`
	EndsAt             time.Time  `db:"ends_at"`
	SettledAt          *time.Time `db:"settled_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (row contestRow) toDomain() (contest.Contest, error) {
	rules, err := contest.ParseRuleSet(row.Rules)
	if err != nil {
		return contest.Contest{}, fmt.Errorf("parse rules for contest %s: %w", row.PublicID, err)
	}

	return contest.Contest{
		ID:           row.PublicID,
		TournamentID: row.TournamentPublicID,
		Name:         row.Name,
		Status:       contest.Status(row.Status),
		EntryFee:     row.EntryFee,
		PrizePool:    row.PrizePool,
		MaxEntries:   row.MaxEntries,
		EntryCount:   row.EntryCount,
		Rules:        rules,
		StartsAt:     row.StartsAt,
		EndsAt:       row.EndsAt,
		SettledAt:    row.SettledAt,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

type prizeRow struct {
	ContestPublicID string  `db:"contest_public_id"`
	TeamPublicID    string  `db:"team_public_id"`
	UserID          string  `db:"user_id"`
	Rank            int     `db:"rank"`
	Percent         float64 `db:"percent"`
	Amount          float64 `db:"amount"`
}
