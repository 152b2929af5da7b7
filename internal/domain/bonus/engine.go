package bonus

import "strings"

// Rules holds the fixed analyst-bonus amounts layered on top of stat-based
// scoring. Bonuses are evaluated on raw final scores, not on weighted
// performance points.
type Rules struct {
	WinningMatch float64
	Blowout      float64
	CloseWin     float64
}

func DefaultRules() Rules {
	return Rules{
		WinningMatch: 10,
		Blowout:      15,
		CloseWin:     5,
	}
}

const (
	blowoutMinScore  = 11
	closeWinMargin   = 2
	closeWinMinLoser = 9
	closeWinMinScore = 11

	knockoutMultiplier = 1.5
)

// Result describes a completed match from one player's side.
type Result struct {
	Round         string
	PlayerScore   int
	OpponentScore int
}

// Award is the set of bonuses earned by one player in one match plus the
// round multiplier applied to the player's total match points.
type Award struct {
	WinningMatch float64
	Blowout      float64
	CloseWin     float64
	Multiplier   float64
}

func (a Award) Total() float64 {
	return a.WinningMatch + a.Blowout + a.CloseWin
}

// Evaluate computes the award for one side of a completed match. Each rule
// is independent; a single result may earn several bonuses at once.
func (r Rules) Evaluate(res Result) Award {
	award := Award{Multiplier: RoundMultiplier(res.Round)}

	if res.PlayerScore > res.OpponentScore {
		award.WinningMatch = r.WinningMatch

		if res.PlayerScore >= blowoutMinScore && res.OpponentScore == 0 {
			award.Blowout = r.Blowout
		}
		if res.PlayerScore-res.OpponentScore == closeWinMargin &&
			res.OpponentScore >= closeWinMinLoser &&
			res.PlayerScore >= closeWinMinScore {
			award.CloseWin = r.CloseWin
		}
	}

	return award
}

// Adjust applies an award to a player's base match points: bonuses are added
// first, then the knockout multiplier scales the whole total.
func Adjust(base float64, award Award) float64 {
	multiplier := award.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	return (base + award.Total()) * multiplier
}

// RoundMultiplier returns 1.5 for knockout-stage rounds and 1.0 otherwise.
// Matching is case-insensitive on the round label.
func RoundMultiplier(round string) float64 {
	label := strings.ToLower(strings.TrimSpace(round))
	for _, stage := range []string{"final", "semi", "quarter"} {
		if strings.Contains(label, stage) {
			return knockoutMultiplier
		}
	}

	return 1.0
}
