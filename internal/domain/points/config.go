package points

// Config is the weight table converting raw match statistics into fantasy
// points. A Config is supplied per contest and never mutated after creation;
// negative weights express penalty terms.
type Config struct {
	MatchWin   float64
	MatchLoss  float64
	SetWin     float64
	PointWon   float64
	PointLost  float64
	WinnerShot float64
	Ace        float64
	Error      float64
	Fault      float64
	RallyWon   float64

	// Tournament position bonuses, added once on top of the summed
	// per-match scores.
	TournamentWinner       float64
	TournamentRunnerUp     float64
	TournamentSemiFinal    float64
	TournamentQuarterFinal float64
}

func DefaultConfig() Config {
	return Config{
		MatchWin:   10,
		MatchLoss:  -5,
		SetWin:     5,
		PointWon:   0.5,
		PointLost:  -0.2,
		WinnerShot: 2,
		Ace:        3,
		Error:      -1,
		Fault:      -0.5,
		RallyWon:   1,

		TournamentWinner:       25,
		TournamentRunnerUp:     15,
		TournamentSemiFinal:    10,
		TournamentQuarterFinal: 5,
	}
}

// PositionBonus returns the bonus for a final tournament position.
// Position 0 means the player has no recorded finish.
func (c Config) PositionBonus(position int) float64 {
	switch {
	case position == 1:
		return c.TournamentWinner
	case position == 2:
		return c.TournamentRunnerUp
	case position >= 3 && position <= 4:
		return c.TournamentSemiFinal
	case position >= 5 && position <= 8:
		return c.TournamentQuarterFinal
	default:
		return 0
	}
}
