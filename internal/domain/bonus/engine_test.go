package bonus

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		res   Result
		want  Award
	}{
		{
			name: "straight win in group stage",
			res:  Result{Round: "Group A", PlayerScore: 11, OpponentScore: 5},
			want: Award{WinningMatch: 10, Multiplier: 1.0},
		},
		{
			name: "loss earns nothing",
			res:  Result{Round: "Group A", PlayerScore: 5, OpponentScore: 11},
			want: Award{Multiplier: 1.0},
		},
		{
			name: "perfect game blowout",
			res:  Result{Round: "round of 16", PlayerScore: 11, OpponentScore: 0},
			want: Award{WinningMatch: 10, Blowout: 15, Multiplier: 1.0},
		},
		{
			name: "close win at deuce",
			res:  Result{Round: "group", PlayerScore: 12, OpponentScore: 10},
			want: Award{WinningMatch: 10, CloseWin: 5, Multiplier: 1.0},
		},
		{
			name: "two point margin below deuce threshold is not close-win",
			res:  Result{Round: "group", PlayerScore: 11, OpponentScore: 9},
			want: Award{WinningMatch: 10, Multiplier: 1.0},
		},
		{
			name: "knockout multiplier in the final",
			res:  Result{Round: "Final", PlayerScore: 11, OpponentScore: 7},
			want: Award{WinningMatch: 10, Multiplier: 1.5},
		},
		{
			name: "semifinal label matches case-insensitively",
			res:  Result{Round: "SEMIFINAL", PlayerScore: 4, OpponentScore: 11},
			want: Award{Multiplier: 1.5},
		},
		{
			name: "quarterfinal loser still gets the multiplier",
			res:  Result{Round: "quarter-final 2", PlayerScore: 9, OpponentScore: 11},
			want: Award{Multiplier: 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Evaluate(tt.res)
			if got != tt.want {
				t.Fatalf("Evaluate(%+v) = %+v, want %+v", tt.res, got, tt.want)
			}
		})
	}
}

func TestAdjust(t *testing.T) {
	award := Award{WinningMatch: 10, CloseWin: 5, Multiplier: 1.5}
	got := Adjust(40, award)
	if math.Abs(got-82.5) > 1e-9 {
		t.Fatalf("Adjust = %v, want 82.5", got)
	}

	// A zero-valued award must behave as the identity.
	if got := Adjust(40, Award{Multiplier: 1.0}); got != 40 {
		t.Fatalf("Adjust with empty award = %v, want 40", got)
	}

	// An unset multiplier never zeroes the points.
	if got := Adjust(40, Award{}); got != 40 {
		t.Fatalf("Adjust with zero multiplier = %v, want 40", got)
	}
}
