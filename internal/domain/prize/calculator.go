package prize

import "math"

// Tier is one payout line in a contest's prize breakdown.
type Tier struct {
	Rank    int
	Percent float64
	Amount  float64
}

// Payout thresholds and shares by contest size.
const (
	smallContestMax  = 5
	mediumContestMax = 30

	soloWinnerShare = 70.0
	firstShare      = 40.0
	secondShare     = 24.0
	thirdShare      = 16.0

	extendedShare    = 20.0
	extendedFromRank = 4
	extendedToRank   = 10
)

// Breakdown returns the prize tiers for a contest. Small contests pay the
// winner alone; mid-size contests pay the podium; large contests additionally
// spread a fixed share across ranks four through ten. Amounts are rounded to
// cents and the rank-1 row absorbs the rounding remainder, so the paid
// amounts always sum to the pool's paid share.
func Breakdown(prizePool float64, entries int) []Tier {
	if entries <= 0 || prizePool <= 0 {
		return nil
	}

	var tiers []Tier
	switch {
	case entries < smallContestMax:
		tiers = []Tier{{Rank: 1, Percent: soloWinnerShare}}
	case entries < mediumContestMax:
		tiers = []Tier{
			{Rank: 1, Percent: firstShare},
			{Rank: 2, Percent: secondShare},
			{Rank: 3, Percent: thirdShare},
		}
	default:
		tiers = []Tier{
			{Rank: 1, Percent: firstShare},
			{Rank: 2, Percent: secondShare},
			{Rank: 3, Percent: thirdShare},
		}
		spread := extendedToRank - extendedFromRank + 1
		perRankPercent := extendedShare / float64(spread)
		for rank := extendedFromRank; rank <= extendedToRank; rank++ {
			tiers = append(tiers, Tier{Rank: rank, Percent: perRankPercent})
		}
	}

	paidPercent := 0.0
	for i := range tiers {
		tiers[i].Amount = roundCents(prizePool * tiers[i].Percent / 100)
		paidPercent += tiers[i].Percent
	}

	remainder := roundCents(prizePool * paidPercent / 100)
	for _, tier := range tiers[1:] {
		remainder -= tier.Amount
	}
	tiers[0].Amount = roundCents(remainder)

	return tiers
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// WinningRanks returns the highest paid rank for the given contest size.
func WinningRanks(entries int) int {
	switch {
	case entries <= 0:
		return 0
	case entries < smallContestMax:
		return 1
	case entries < mediumContestMax:
		return 3
	default:
		return extendedToRank
	}
}
