package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/priyanshusaraf/fantasy-arena/internal/infrastructure/repository/memory"
)

// BootstrapSeed inserts the demo contest once into an empty database so a
// fresh deployment has something to serve.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM contests WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count contests for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range memory.SeedContests() {
		rules, err := c.Rules.MarshalBinary()
		if err != nil {
			return fmt.Errorf("marshal rules for seed contest %s: %w", c.ID, err)
		}

		sqlQuery, args, err := sqlx.Named(`
INSERT INTO contests (
    public_id, tournament_public_id, name, status, entry_fee, prize_pool,
    max_entries, entry_count, rules, starts_at, ends_at
) VALUES (
    :public_id, :tournament_public_id, :name, :status, :entry_fee, :prize_pool,
    :max_entries, :entry_count, :rules, :starts_at, :ends_at
)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":            c.ID,
			"tournament_public_id": c.TournamentID,
			"name":                 c.Name,
			"status":               string(c.Status),
			"entry_fee":            c.EntryFee,
			"prize_pool":           c.PrizePool,
			"max_entries":          c.MaxEntries,
			"entry_count":          c.EntryCount,
			"rules":                rules,
			"starts_at":            c.StartsAt,
			"ends_at":              c.EndsAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed contest %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed contest %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
