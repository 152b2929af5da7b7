package match

import (
	"context"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/performance"
)

// Repository describes match persistence needs from use cases.
//
// AccumulateStats adds the delta stat lines of one feed event into the stored
// per-player match performances. Outcome fields on the lines (IsMatchWinner,
// PlayerScore, OpponentScore) overwrite rather than add. Each event key folds
// into a match at most once; redelivered keys leave the stored rows untouched.
// The returned performances are the stored rows for the event's players after
// the fold, whether or not it was applied.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Upsert(ctx context.Context, m Match) error
	AccumulateStats(ctx context.Context, m Match, eventKey string, lines []PlayerLine) ([]performance.MatchPerformance, error)
	ListPerformancesByTournament(ctx context.Context, tournamentID string) ([]performance.MatchPerformance, error)
}
