package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/contest"
	qb "github.com/priyanshusaraf/fantasy-arena/internal/platform/querybuilder"
)

type ContestRepository struct {
	db *sqlx.DB
}

func NewContestRepository(db *sqlx.DB) *ContestRepository {
	return &ContestRepository{db: db}
}

const contestColumns = `
public_id, tournament_public_id, name, status, entry_fee, prize_pool,
max_entries, entry_count, rules, starts_at, ends_at, settled_at,
created_at, updated_at`

func (r *ContestRepository) GetByID(ctx context.Context, contestID string) (contest.Contest, bool, error) {
	query := `
SELECT ` + contestColumns + `
FROM contests
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row contestRow
	if err := r.db.GetContext(ctx, &row, query, contestID); err != nil {
		if isNotFound(err) {
			return contest.Contest{}, false, nil
		}
		return contest.Contest{}, false, fmt.Errorf("get contest: %w", err)
	}

	c, err := row.toDomain()
	if err != nil {
		return contest.Contest{}, false, err
	}
	return c, true, nil
}

func (r *ContestRepository) List(ctx context.Context) ([]contest.Contest, error) {
	query := `
SELECT ` + contestColumns + `
FROM contests
WHERE deleted_at IS NULL
ORDER BY starts_at, public_id`

	var rows []contestRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}

	return contestsFromRows(rows)
}

func (r *ContestRepository) ListByTournament(ctx context.Context, tournamentID string) ([]contest.Contest, error) {
	query := `
SELECT ` + contestColumns + `
FROM contests
WHERE tournament_public_id = $1
  AND deleted_at IS NULL
ORDER BY starts_at, public_id`

	var rows []contestRow
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("list contests by tournament: %w", err)
	}

	return contestsFromRows(rows)
}

func (r *ContestRepository) IncrementEntryCount(ctx context.Context, contestID string) error {
	const query = `
UPDATE contests
SET entry_count = entry_count + 1,
    updated_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, contestID)
	if err != nil {
		return fmt.Errorf("increment contest entry count: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment contest entry count rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("increment contest entry count: contest %s not found", contestID)
	}
	return nil
}

func (r *ContestRepository) UpdateStatus(ctx context.Context, contestID string, status contest.Status, settledAt *time.Time) error {
	const query = `
UPDATE contests
SET status = :status,
    settled_at = :settled_at,
    updated_at = NOW()
WHERE public_id = :public_id
  AND deleted_at IS NULL`

	sqlQuery, args, err := sqlx.Named(query, map[string]any{
		"status":     string(status),
		"settled_at": settledAt,
		"public_id":  contestID,
	})
	if err != nil {
		return fmt.Errorf("bind update contest status query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("update contest status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contest status rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update contest status: contest %s not found", contestID)
	}
	return nil
}

// SavePrizes rewrites the full prize table for a contest so a resettlement
// can replace a previously stored payout.
func (r *ContestRepository) SavePrizes(ctx context.Context, contestID string, rows []contest.PrizeRow) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for save contest prizes: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const clearQuery = `DELETE FROM contest_prizes WHERE contest_public_id = $1`
	if _, err := tx.ExecContext(ctx, clearQuery, contestID); err != nil {
		return fmt.Errorf("clear contest prizes: %w", err)
	}

	if len(rows) > 0 {
		builder := qb.InsertInto("contest_prizes").
			Columns("contest_public_id", "team_public_id", "user_id", "rank", "percent", "amount")
		for _, row := range rows {
			builder.Values(contestID, row.TeamID, row.UserID, row.Rank, row.Percent, row.Amount)
		}
		insertSQL, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert contest prizes query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
			return fmt.Errorf("insert contest prizes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save contest prizes tx: %w", err)
	}

	return nil
}

func (r *ContestRepository) ListPrizes(ctx context.Context, contestID string) ([]contest.PrizeRow, error) {
	const query = `
SELECT contest_public_id, team_public_id, user_id, rank, percent, amount
FROM contest_prizes
WHERE contest_public_id = $1
ORDER BY rank`

	var rows []prizeRow
	if err := r.db.SelectContext(ctx, &rows, query, contestID); err != nil {
		return nil, fmt.Errorf("list contest prizes: %w", err)
	}

	prizes := make([]contest.PrizeRow, 0, len(rows))
	for _, row := range rows {
		prizes = append(prizes, contest.PrizeRow{
			ContestID: row.ContestPublicID,
			TeamID:    row.TeamPublicID,
			UserID:    row.UserID,
			Rank:      row.Rank,
			Percent:   row.Percent,
			Amount:    row.Amount,
		})
	}
	return prizes, nil
}

func contestsFromRows(rows []contestRow) ([]contest.Contest, error) {
	contests := make([]contest.Contest, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		contests = append(contests, c)
	}
	return contests, nil
}
