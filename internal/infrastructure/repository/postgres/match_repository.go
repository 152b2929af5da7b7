package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/match"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/performance"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	const query = `
SELECT public_id, tournament_public_id, round, status, starts_at, completed_at, created_at, updated_at
FROM matches
WHERE public_id = $1`

	var row matchRow
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) error {
	const query = `
INSERT INTO matches (public_id, tournament_public_id, round, status, starts_at, completed_at)
VALUES (:public_id, :tournament_public_id, :round, :status, :starts_at, :completed_at)
ON CONFLICT (public_id)
DO UPDATE SET
    round = EXCLUDED.round,
    status = EXCLUDED.status,
    completed_at = EXCLUDED.completed_at,
    updated_at = NOW()`

	sqlQuery, args, err := sqlx.Named(query, map[string]any{
		"public_id":            m.ID,
		"tournament_public_id": m.TournamentID,
		"round":                m.Round,
		"status":               string(m.Status),
		"starts_at":            m.StartsAt,
		"completed_at":         m.CompletedAt,
	})
	if err != nil {
		return fmt.Errorf("bind upsert match query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("upsert match: %w", err)
	}
	return nil
}

// AccumulateStats folds one event's delta stat lines into the stored
// per-player performances. Counting columns add; outcome columns
// (is_match_winner, player_score, opponent_score) take the latest value and
// only the completion event carries meaningful ones. The match_score_events
// ledger gates the fold so a redelivered event key never adds twice; the
// stored rows for the event's players are returned either way.
func (r *MatchRepository) AccumulateStats(ctx context.Context, m match.Match, eventKey string, lines []match.PlayerLine) ([]performance.MatchPerformance, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx for accumulate stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const ledgerQuery = `
INSERT INTO match_score_events (match_public_id, event_key)
VALUES ($1, $2)
ON CONFLICT (match_public_id, event_key) DO NOTHING`

	res, err := tx.ExecContext(ctx, ledgerQuery, m.ID, eventKey)
	if err != nil {
		return nil, fmt.Errorf("record match event key: %w", err)
	}
	recorded, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("read match event key outcome: %w", err)
	}

	if recorded > 0 {
		if err := accumulateLines(ctx, tx, m, lines); err != nil {
			return nil, err
		}
	}

	perfs, err := selectEventPerformances(ctx, tx, m.ID, lines)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit accumulate stats tx: %w", err)
	}

	return perfs, nil
}

func accumulateLines(ctx context.Context, tx *sqlx.Tx, m match.Match, lines []match.PlayerLine) error {
	completed := m.Status == match.StatusCompleted

	const query = `
INSERT INTO match_performances (
    match_public_id, player_public_id, winners, errors, aces, faults,
    rallies_won, sets_won, points_scored, points_conceded,
    is_match_winner, player_score, opponent_score, recorded_at
) VALUES (
    :match_public_id, :player_public_id, :winners, :errors, :aces, :faults,
    :rallies_won, :sets_won, :points_scored, :points_conceded,
    :is_match_winner, :player_score, :opponent_score, NOW()
)
ON CONFLICT (match_public_id, player_public_id)
DO UPDATE SET
    winners = match_performances.winners + EXCLUDED.winners,
    errors = match_performances.errors + EXCLUDED.errors,
    aces = match_performances.aces + EXCLUDED.aces,
    faults = match_performances.faults + EXCLUDED.faults,
    rallies_won = match_performances.rallies_won + EXCLUDED.rallies_won,
    sets_won = match_performances.sets_won + EXCLUDED.sets_won,
    points_scored = match_performances.points_scored + EXCLUDED.points_scored,
    points_conceded = match_performances.points_conceded + EXCLUDED.points_conceded,
    is_match_winner = CASE WHEN :completed THEN EXCLUDED.is_match_winner ELSE match_performances.is_match_winner END,
    player_score = CASE WHEN :completed THEN EXCLUDED.player_score ELSE match_performances.player_score END,
    opponent_score = CASE WHEN :completed THEN EXCLUDED.opponent_score ELSE match_performances.opponent_score END,
    recorded_at = NOW()`

	for _, line := range lines {
		args := map[string]any{
			"match_public_id":  m.ID,
			"player_public_id": line.PlayerID,
			"winners":          line.Winners,
			"errors":           line.Errors,
			"aces":             line.Aces,
			"faults":           line.Faults,
			"rallies_won":      line.RalliesWon,
			"sets_won":         line.SetsWon,
			"points_scored":    line.PointsScored,
			"points_conceded":  line.PointsConceded,
			"is_match_winner":  line.IsMatchWinner,
			"player_score":     line.PlayerScore,
			"opponent_score":   line.OpponentScore,
			"completed":        completed,
		}
		// Partial events carry no trustworthy outcome, keep the stored zeroes
		// on the insert path too.
		if !completed {
			args["is_match_winner"] = false
			args["player_score"] = 0
			args["opponent_score"] = 0
		}

		sqlQuery, sqlArgs, err := sqlx.Named(query, args)
		if err != nil {
			return fmt.Errorf("bind accumulate stats player=%s query: %w", line.PlayerID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, sqlArgs...); err != nil {
			return fmt.Errorf("accumulate stats player=%s: %w", line.PlayerID, err)
		}
	}

	return nil
}

func selectEventPerformances(ctx context.Context, tx *sqlx.Tx, matchID string, lines []match.PlayerLine) ([]performance.MatchPerformance, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	playerIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		playerIDs = append(playerIDs, line.PlayerID)
	}

	const query = `
SELECT p.match_public_id, p.player_public_id, m.round, p.winners, p.errors,
       p.aces, p.faults, p.rallies_won, p.sets_won, p.points_scored,
       p.points_conceded, p.is_match_winner, p.player_score, p.opponent_score,
       (m.status = 'COMPLETED') AS match_completed, p.recorded_at
FROM match_performances p
JOIN matches m ON m.public_id = p.match_public_id
WHERE p.match_public_id = ? AND p.player_public_id IN (?)
ORDER BY p.player_public_id`

	sqlQuery, args, err := sqlx.In(query, matchID, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("bind event performances query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)

	var rows []performanceRow
	if err := tx.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select event performances: %w", err)
	}

	perfs := make([]performance.MatchPerformance, 0, len(rows))
	for _, row := range rows {
		perfs = append(perfs, row.toDomain())
	}
	return perfs, nil
}

func (r *MatchRepository) ListPerformancesByTournament(ctx context.Context, tournamentID string) ([]performance.MatchPerformance, error) {
	const query = `
SELECT p.match_public_id, p.player_public_id, m.round, p.winners, p.errors,
       p.aces, p.faults, p.rallies_won, p.sets_won, p.points_scored,
       p.points_conceded, p.is_match_winner, p.player_score, p.opponent_score,
       (m.status = 'COMPLETED') AS match_completed, p.recorded_at
FROM match_performances p
JOIN matches m ON m.public_id = p.match_public_id
WHERE m.tournament_public_id = $1
ORDER BY p.match_public_id, p.player_public_id`

	var rows []performanceRow
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("list match performances by tournament: %w", err)
	}

	perfs := make([]performance.MatchPerformance, 0, len(rows))
	for _, row := range rows {
		perfs = append(perfs, row.toDomain())
	}
	return perfs, nil
}
