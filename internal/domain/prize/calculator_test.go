package prize

import (
	"math"
	"testing"
)

func TestBreakdownSmallContest(t *testing.T) {
	tiers := Breakdown(10000, 3)
	if len(tiers) != 1 {
		t.Fatalf("expected 1 tier, got %d", len(tiers))
	}
	if tiers[0].Rank != 1 || tiers[0].Percent != 70 || tiers[0].Amount != 7000 {
		t.Fatalf("tier = %+v, want rank 1 at 70%% of 10000", tiers[0])
	}
}

func TestBreakdownMediumContest(t *testing.T) {
	tiers := Breakdown(10000, 15)
	want := []Tier{
		{Rank: 1, Percent: 40, Amount: 4000},
		{Rank: 2, Percent: 24, Amount: 2400},
		{Rank: 3, Percent: 16, Amount: 1600},
	}
	if len(tiers) != len(want) {
		t.Fatalf("expected %d tiers, got %d", len(want), len(tiers))
	}
	for i, tier := range tiers {
		if tier != want[i] {
			t.Fatalf("tier[%d] = %+v, want %+v", i, tier, want[i])
		}
	}
}

func TestBreakdownLargeContest(t *testing.T) {
	tiers := Breakdown(10000, 50)
	if len(tiers) != 10 {
		t.Fatalf("expected 10 tiers, got %d", len(tiers))
	}

	for _, tier := range tiers[3:] {
		if !almostEqual(tier.Percent, 20.0/7.0) {
			t.Fatalf("rank %d percent = %v, want %v", tier.Rank, tier.Percent, 20.0/7.0)
		}
		if !almostEqual(tier.Amount, 285.71) {
			t.Fatalf("rank %d amount = %v, want 285.71 after cent rounding", tier.Rank, tier.Amount)
		}
	}
	if tiers[3].Rank != 4 || tiers[9].Rank != 10 {
		t.Fatalf("extended tiers span ranks %d..%d, want 4..10", tiers[3].Rank, tiers[9].Rank)
	}

	// Ranks 4-10 each round down to 285.71, leaving 3 cents for rank 1.
	if !almostEqual(tiers[0].Amount, 4000.03) {
		t.Fatalf("rank 1 amount = %v, want 4000.03 including the rounding remainder", tiers[0].Amount)
	}

	var totalPercent, totalAmount float64
	for _, tier := range tiers {
		totalPercent += tier.Percent
		totalAmount += tier.Amount
	}
	if !almostEqual(totalPercent, 100) {
		t.Fatalf("total percent = %v, want 100", totalPercent)
	}
	if !almostEqual(totalAmount, 10000) {
		t.Fatalf("total amount = %v, want 10000", totalAmount)
	}
}

func TestBreakdownEmptyContest(t *testing.T) {
	if tiers := Breakdown(10000, 0); tiers != nil {
		t.Fatalf("expected nil tiers for empty contest, got %v", tiers)
	}
	if tiers := Breakdown(0, 10); tiers != nil {
		t.Fatalf("expected nil tiers for empty pool, got %v", tiers)
	}
}

func TestWinningRanks(t *testing.T) {
	tests := []struct {
		entries int
		want    int
	}{
		{0, 0},
		{4, 1},
		{5, 3},
		{29, 3},
		{30, 10},
		{500, 10},
	}
	for _, tt := range tests {
		if got := WinningRanks(tt.entries); got != tt.want {
			t.Fatalf("WinningRanks(%d) = %d, want %d", tt.entries, got, tt.want)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
