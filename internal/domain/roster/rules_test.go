package roster

import (
	"errors"
	"testing"
)

func validSelections() []Selection {
	return []Selection{
		{PlayerID: "p1", IsCaptain: true},
		{PlayerID: "p2", IsViceCaptain: true},
		{PlayerID: "p3"},
		{PlayerID: "p4"},
		{PlayerID: "p5"},
		{PlayerID: "p6"},
		{PlayerID: "p7"},
	}
}

func validPrices() map[string]int64 {
	return map[string]int64{
		"p1": 200, "p2": 180, "p3": 150, "p4": 120,
		"p5": 120, "p6": 115, "p7": 115,
	}
}

func TestValidate(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name      string
		mutate    func(sel []Selection, prices map[string]int64, rules *Rules) []Selection
		targetErr error
	}{
		{
			name: "valid roster",
			mutate: func(sel []Selection, _ map[string]int64, _ *Rules) []Selection {
				return sel
			},
			targetErr: nil,
		},
		{
			name: "roster too small",
			mutate: func(sel []Selection, _ map[string]int64, _ *Rules) []Selection {
				return sel[:6]
			},
			targetErr: ErrInvalidRosterSize,
		},
		{
			name: "two captains",
			mutate: func(sel []Selection, _ map[string]int64, _ *Rules) []Selection {
				sel[2].IsCaptain = true
				return sel
			},
			targetErr: ErrInvalidCaptaincy,
		},
		{
			name: "no vice captain",
			mutate: func(sel []Selection, _ map[string]int64, _ *Rules) []Selection {
				sel[1].IsViceCaptain = false
				return sel
			},
			targetErr: ErrInvalidCaptaincy,
		},
		{
			name: "captain doubles as vice captain",
			mutate: func(sel []Selection, _ map[string]int64, _ *Rules) []Selection {
				sel[1].IsViceCaptain = false
				sel[0].IsViceCaptain = true
				return sel
			},
			targetErr: ErrInvalidCaptaincy,
		},
		{
			name: "budget exceeded",
			mutate: func(sel []Selection, prices map[string]int64, _ *Rules) []Selection {
				prices["p1"] = 700
				return sel
			},
			targetErr: ErrBudgetExceeded,
		},
		{
			name: "unknown player",
			mutate: func(sel []Selection, prices map[string]int64, _ *Rules) []Selection {
				delete(prices, "p7")
				return sel
			},
			targetErr: ErrInvalidPlayerSelection,
		},
		{
			name: "duplicate player",
			mutate: func(sel []Selection, _ map[string]int64, _ *Rules) []Selection {
				sel[6].PlayerID = "p1"
				return sel
			},
			targetErr: ErrInvalidPlayerSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rulesCopy := rules
			prices := validPrices()
			selections := tt.mutate(validSelections(), prices, &rulesCopy)

			slots, err := Validate(selections, rulesCopy, prices)
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if len(slots) != rulesCopy.TeamSize {
					t.Fatalf("expected %d slots, got %d", rulesCopy.TeamSize, len(slots))
				}
				return
			}

			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected error %v, got %v", tt.targetErr, err)
			}
		})
	}
}

func TestValidateChecksSizeBeforeCaptaincy(t *testing.T) {
	// Six players and two captains: the size violation must be reported.
	sel := validSelections()[:6]
	sel[2].IsCaptain = true

	_, err := Validate(sel, DefaultRules(), validPrices())
	if !errors.Is(err, ErrInvalidRosterSize) {
		t.Fatalf("expected ErrInvalidRosterSize, got %v", err)
	}
}

func TestApplyRoleMultiplier(t *testing.T) {
	tests := []struct {
		name          string
		points        float64
		isCaptain     bool
		isViceCaptain bool
		want          float64
	}{
		{"captain doubles", 50.5, true, false, 101},
		{"vice captain one and a half", 50.5, false, true, 75.75},
		{"regular player unchanged", 50.5, false, false, 50.5},
		{"zero points stay zero", 0, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyRoleMultiplier(tt.points, tt.isCaptain, tt.isViceCaptain)
			if got != tt.want {
				t.Fatalf("ApplyRoleMultiplier = %v, want %v", got, tt.want)
			}
		})
	}
}
