package performance

import (
	"math"
	"testing"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/points"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreMatch(t *testing.T) {
	cfg := points.DefaultConfig()

	tests := []struct {
		name string
		perf MatchPerformance
		want float64
	}{
		{
			name: "winning performance with full stat line",
			perf: MatchPerformance{
				IsMatchWinner:  true,
				IsSetWinner:    []bool{true, true},
				PointsScored:   22,
				PointsConceded: 15,
				Winners:        5,
				Aces:           2,
				Errors:         3,
				Faults:         1,
				RalliesWon:     10,
			},
			// 10 + 2*5 + 22*0.5 - 15*0.2 + 5*2 + 2*3 - 3*1 - 1*0.5 + 10*1
			want: 50.5,
		},
		{
			name: "losing performance stays positive",
			perf: MatchPerformance{
				IsSetWinner:    []bool{false, true, false},
				PointsScored:   18,
				PointsConceded: 33,
				Winners:        3,
				RalliesWon:     4,
			},
			// -5 + 5 + 9 - 6.6 + 6 + 4
			want: 12.4,
		},
		{
			name: "all-penalty line clamps at zero",
			perf: MatchPerformance{
				PointsConceded: 22,
				Errors:         9,
				Faults:         6,
			},
			want: 0,
		},
		{
			name: "empty performance clamps the loss term",
			perf: MatchPerformance{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreMatch(tt.perf, cfg)
			if !almostEqual(got, tt.want) {
				t.Fatalf("ScoreMatch = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Fatalf("ScoreMatch returned negative points: %v", got)
			}
		})
	}
}

func TestScoreTournament(t *testing.T) {
	cfg := points.DefaultConfig()

	matches := []MatchPerformance{
		{IsMatchWinner: true, IsSetWinner: []bool{true, true}, PointsScored: 22, PointsConceded: 15, Winners: 5, Aces: 2, Errors: 3, Faults: 1, RalliesWon: 10}, // 50.5
		{PointsConceded: 30, Errors: 12}, // clamped to 0
	}

	tests := []struct {
		name     string
		position int
		want     float64
	}{
		{"no recorded finish", 0, 50.5},
		{"tournament winner", 1, 75.5},
		{"runner up", 2, 65.5},
		{"semifinal tier", 4, 60.5},
		{"quarterfinal tier", 8, 55.5},
		{"outside paid positions", 9, 50.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreTournament(TournamentPerformance{Matches: matches, FinalPosition: tt.position}, cfg)
			if !almostEqual(got, tt.want) {
				t.Fatalf("ScoreTournament = %v, want %v", got, tt.want)
			}
		})
	}
}
