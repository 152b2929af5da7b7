package postgres

import (
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
)

type teamRow struct {
	PublicID        string    `db:"public_id"`
	UserID          string    `db:"user_id"`
	ContestPublicID string    `db:"contest_public_id"`
	Name            string    `db:"name"`
	TotalPoints     float64   `db:"total_points"`
	SpentBudget     int64     `db:"spent_budget"`
	EditCount       int       `db:"edit_count"`
	LastEditAt      time.Time `db:"last_edit_at"`
	LastEditMatch   string    `db:"last_edit_match"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type slotRow struct {
	TeamPublicID   string `db:"team_public_id"`
	PlayerPublicID string `db:"player_public_id"`
	Price          int64  `db:"price"`
	IsCaptain      bool   `db:"is_captain"`
	IsViceCaptain  bool   `db:"is_vice_captain"`
}

func (row teamRow) toDomain(slots []roster.Slot) roster.Team {
	return roster.Team{
		ID:            row.PublicID,
		UserID:        row.UserID,
		ContestID:     row.ContestPublicID,
		Name:          row.Name,
		Slots:         slots,
		TotalPoints:   row.TotalPoints,
		SpentBudget:   row.SpentBudget,
		EditCount:     row.EditCount,
		LastEditAt:    row.LastEditAt,
		LastEditMatch: row.LastEditMatch,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func slotsToDomain(rows []slotRow) []roster.Slot {
	slots := make([]roster.Slot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, roster.Slot{
			PlayerID:      row.PlayerPublicID,
			Price:         row.Price,
			IsCaptain:     row.IsCaptain,
			IsViceCaptain: row.IsViceCaptain,
		})
	}
	return slots
}

// scoreEventRow is the idempotency ledger line for one applied event key.
type scoreEventRow struct {
	TeamID   string  `db:"team_public_id"`
	EventKey string  `db:"event_key"`
	Delta    float64 `db:"delta"`
}
