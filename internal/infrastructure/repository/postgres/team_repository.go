package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
	qb "github.com/priyanshusaraf/fantasy-arena/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

var teamColumns = []string{
	"public_id", "user_id", "contest_public_id", "name", "total_points",
	"spent_budget", "edit_count", "last_edit_at", "last_edit_match",
	"created_at", "updated_at",
}

func teamBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(teamColumns...).From("fantasy_teams")
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (roster.Team, bool, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.Team{}, false, fmt.Errorf("build get fantasy team query: %w", err)
	}

	var row teamRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Team{}, false, nil
		}
		return roster.Team{}, false, fmt.Errorf("get fantasy team: %w", err)
	}

	slots, err := r.listSlots(ctx, row.PublicID)
	if err != nil {
		return roster.Team{}, false, err
	}
	return row.toDomain(slots), true, nil
}

func (r *TeamRepository) GetByUserAndContest(ctx context.Context, userID, contestID string) (roster.Team, bool, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("contest_public_id", contestID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.Team{}, false, fmt.Errorf("build get fantasy team by user query: %w", err)
	}

	var row teamRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Team{}, false, nil
		}
		return roster.Team{}, false, fmt.Errorf("get fantasy team by user and contest: %w", err)
	}

	slots, err := r.listSlots(ctx, row.PublicID)
	if err != nil {
		return roster.Team{}, false, err
	}
	return row.toDomain(slots), true, nil
}

func (r *TeamRepository) ListByContest(ctx context.Context, contestID string) ([]roster.Team, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(
			qb.Eq("contest_public_id", contestID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy teams query: %w", err)
	}

	var rows []teamRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy teams by contest: %w", err)
	}

	const slotsQuery = `
SELECT s.team_public_id, s.player_public_id, s.price, s.is_captain, s.is_vice_captain
FROM team_roster_slots s
JOIN fantasy_teams t ON t.public_id = s.team_public_id
WHERE t.contest_public_id = $1
  AND t.deleted_at IS NULL
  AND s.deleted_at IS NULL
ORDER BY s.team_public_id, s.id`

	var slotRows []slotRow
	if err := r.db.SelectContext(ctx, &slotRows, slotsQuery, contestID); err != nil {
		return nil, fmt.Errorf("list roster slots by contest: %w", err)
	}

	slotsByTeam := make(map[string][]roster.Slot, len(rows))
	for _, s := range slotRows {
		slotsByTeam[s.TeamPublicID] = append(slotsByTeam[s.TeamPublicID], roster.Slot{
			PlayerID:      s.PlayerPublicID,
			Price:         s.Price,
			IsCaptain:     s.IsCaptain,
			IsViceCaptain: s.IsViceCaptain,
		})
	}

	teams := make([]roster.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, row.toDomain(slotsByTeam[row.PublicID]))
	}
	return teams, nil
}

// Upsert writes the team header and rewrites its roster slots. TotalPoints is
// never written here: scoring deltas own that column.
func (r *TeamRepository) Upsert(ctx context.Context, team roster.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertTeamQuery = `
INSERT INTO fantasy_teams (
    public_id, user_id, contest_public_id, name, spent_budget,
    edit_count, last_edit_at, last_edit_match
) VALUES (
    :public_id, :user_id, :contest_public_id, :name, :spent_budget,
    :edit_count, :last_edit_at, :last_edit_match
)
ON CONFLICT (user_id, contest_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    spent_budget = EXCLUDED.spent_budget,
    edit_count = EXCLUDED.edit_count,
    last_edit_at = EXCLUDED.last_edit_at,
    last_edit_match = EXCLUDED.last_edit_match,
    updated_at = NOW()
RETURNING public_id`

	sqlQuery, args, err := sqlx.Named(upsertTeamQuery, map[string]any{
		"public_id":         team.ID,
		"user_id":           team.UserID,
		"contest_public_id": team.ContestID,
		"name":              team.Name,
		"spent_budget":      team.SpentBudget,
		"edit_count":        team.EditCount,
		"last_edit_at":      team.LastEditAt,
		"last_edit_match":   team.LastEditMatch,
	})
	if err != nil {
		return fmt.Errorf("bind upsert fantasy team query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)

	var publicID string
	if err := tx.GetContext(ctx, &publicID, sqlQuery, args...); err != nil {
		return fmt.Errorf("upsert fantasy team: %w", err)
	}

	const clearSlotsQuery = `
UPDATE team_roster_slots
SET deleted_at = NOW()
WHERE team_public_id = $1
  AND deleted_at IS NULL`
	if _, err := tx.ExecContext(ctx, clearSlotsQuery, publicID); err != nil {
		return fmt.Errorf("soft delete existing roster slots: %w", err)
	}

	const upsertSlotQuery = `
INSERT INTO team_roster_slots (team_public_id, player_public_id, price, is_captain, is_vice_captain)
VALUES (:team_public_id, :player_public_id, :price, :is_captain, :is_vice_captain)
ON CONFLICT (team_public_id, player_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    price = EXCLUDED.price,
    is_captain = EXCLUDED.is_captain,
    is_vice_captain = EXCLUDED.is_vice_captain,
    deleted_at = NULL`

	for _, slot := range team.Slots {
		slotSQL, slotArgs, err := sqlx.Named(upsertSlotQuery, map[string]any{
			"team_public_id":   publicID,
			"player_public_id": slot.PlayerID,
			"price":            slot.Price,
			"is_captain":       slot.IsCaptain,
			"is_vice_captain":  slot.IsViceCaptain,
		})
		if err != nil {
			return fmt.Errorf("bind upsert roster slot player=%s query: %w", slot.PlayerID, err)
		}
		slotSQL = tx.Rebind(slotSQL)
		if _, err := tx.ExecContext(ctx, slotSQL, slotArgs...); err != nil {
			return fmt.Errorf("upsert roster slot player=%s: %w", slot.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team upsert tx: %w", err)
	}

	return nil
}

// ApplyScoreDelta records the event key and adds the delta in one
// transaction. The insert into team_score_events carries the idempotency:
// when ON CONFLICT DO NOTHING swallows a duplicate key the total is left
// untouched and applied=false is returned.
func (r *TeamRepository) ApplyScoreDelta(ctx context.Context, teamID, eventKey string, delta float64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx for score delta: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertEventQuery, insertArgs, err := qb.InsertModel(
		"team_score_events",
		scoreEventRow{TeamID: teamID, EventKey: eventKey, Delta: delta},
		"ON CONFLICT (team_public_id, event_key) DO NOTHING",
	)
	if err != nil {
		return false, fmt.Errorf("build insert team score event query: %w", err)
	}

	result, err := tx.ExecContext(ctx, insertEventQuery, insertArgs...)
	if err != nil {
		return false, fmt.Errorf("insert team score event: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert team score event rows affected: %w", err)
	}
	if inserted == 0 {
		return false, nil
	}

	const updateTotalQuery = `
UPDATE fantasy_teams
SET total_points = total_points + $1,
    updated_at = NOW()
WHERE public_id = $2
  AND deleted_at IS NULL`

	updateResult, err := tx.ExecContext(ctx, updateTotalQuery, delta, teamID)
	if err != nil {
		return false, fmt.Errorf("apply score delta: %w", err)
	}
	affected, err := updateResult.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("apply score delta rows affected: %w", err)
	}
	if affected == 0 {
		return false, fmt.Errorf("apply score delta: team %s not found", teamID)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit score delta tx: %w", err)
	}

	return true, nil
}

// ReplaceTotal overwrites the running total with a recomputed value. A
// missing team is not an error: resettlement tolerates teams deleted while
// the recompute was in flight.
func (r *TeamRepository) ReplaceTotal(ctx context.Context, teamID string, total float64) error {
	query, args, err := qb.Update("fantasy_teams").
		Set("total_points", total).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build replace team total query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replace team total: %w", err)
	}
	return nil
}

func (r *TeamRepository) listSlots(ctx context.Context, teamID string) ([]roster.Slot, error) {
	query, args, err := qb.Select("team_public_id", "player_public_id", "price", "is_captain", "is_vice_captain").
		From("team_roster_slots").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster slots query: %w", err)
	}

	var rows []slotRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list roster slots: %w", err)
	}
	return slotsToDomain(rows), nil
}
