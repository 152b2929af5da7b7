package postgres

import (
	"time"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/match"
	"github.com/priyanshusaraf/fantasy-arena/internal/domain/performance"
)

type matchRow struct {
	PublicID           string     `db:"public_id"`
	TournamentPublicID string     `db:"tournament_public_id"`
	Round              string     `db:"round"`
	Status             string     `db:"status"`
	StartsAt           time.Time  `db:"starts_at"`
	CompletedAt        *time.Time `db:"completed_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (row matchRow) toDomain() match.Match {
	return match.Match{
		ID:           row.PublicID,
		TournamentID: row.TournamentPublicID,
		Round:        row.Round,
		Status:       match.Status(row.Status),
		StartsAt:     row.StartsAt,
		CompletedAt:  row.CompletedAt,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

type performanceRow struct {
	MatchPublicID  string    `db:"match_public_id"`
	PlayerPublicID string    `db:"player_public_id"`
	Round          string    `db:"round"`
	Winners        int       `db:"winners"`
	Errors         int       `db:"errors"`
	Aces           int       `db:"aces"`
	Faults         int       `db:"faults"`
	RalliesWon     int       `db:"rallies_won"`
	SetsWon        int       `db:"sets_won"`
	PointsScored   int       `db:"points_scored"`
	PointsConceded int       `db:"points_conceded"`
	IsMatchWinner  bool      `db:"is_match_winner"`
	PlayerScore    int       `db:"player_score"`
	OpponentScore  int       `db:"opponent_score"`
	MatchCompleted bool      `db:"match_completed"`
	RecordedAt     time.Time `db:"recorded_at"`
}

func (row performanceRow) toDomain() performance.MatchPerformance {
	setWins := make([]bool, 0, row.SetsWon)
	for i := 0; i < row.SetsWon; i++ {
		setWins = append(setWins, true)
	}

	return performance.MatchPerformance{
		MatchID:        row.MatchPublicID,
		PlayerID:       row.PlayerPublicID,
		Round:          row.Round,
		Winners:        row.Winners,
		Errors:         row.Errors,
		Aces:           row.Aces,
		Faults:         row.Faults,
		RalliesWon:     row.RalliesWon,
		IsSetWinner:    setWins,
		PointsScored:   row.PointsScored,
		PointsConceded: row.PointsConceded,
		IsMatchWinner:  row.IsMatchWinner,
		PlayerScore:    row.PlayerScore,
		OpponentScore:  row.OpponentScore,
		MatchCompleted: row.MatchCompleted,
		RecordedAt:     row.RecordedAt,
	}
}
