package performance

import "github.com/priyanshusaraf/fantasy-arena/internal/domain/points"

// StatScore weighs the accumulated statistics of one performance, without
// the match outcome term and without clamping. It is the running score of a
// match still in play.
func StatScore(p MatchPerformance, cfg points.Config) float64 {
	setWins := 0
	for _, won := range p.IsSetWinner {
		if won {
			setWins++
		}
	}

	return float64(setWins)*cfg.SetWin +
		float64(p.PointsScored)*cfg.PointWon +
		float64(p.PointsConceded)*cfg.PointLost +
		float64(p.Winners)*cfg.WinnerShot +
		float64(p.Aces)*cfg.Ace +
		float64(p.Errors)*cfg.Error +
		float64(p.Faults)*cfg.Fault +
		float64(p.RalliesWon)*cfg.RallyWon
}

// ScoreMatch converts one completed match performance into fantasy points
// under the given weight table. The result is clamped at zero: a single bad
// match can never subtract from a player's tournament total.
func ScoreMatch(p MatchPerformance, cfg points.Config) float64 {
	outcome := cfg.MatchLoss
	if p.IsMatchWinner {
		outcome = cfg.MatchWin
	}

	total := outcome + StatScore(p, cfg)
	if total < 0 {
		return 0
	}

	return total
}

// ScoreTournament sums the clamped per-match scores and adds the final
// position bonus. The bonus itself is not clamped; only match-level totals
// are, before summation.
func ScoreTournament(tp TournamentPerformance, cfg points.Config) float64 {
	total := 0.0
	for _, m := range tp.Matches {
		total += ScoreMatch(m, cfg)
	}

	return total + cfg.PositionBonus(tp.FinalPosition)
}
