package contest

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/priyanshusaraf/fantasy-arena/internal/domain/roster"
)

var ErrInvalidRuleSet = errors.New("invalid contest rule set")

// RuleSet carries the contest-configurable fantasy rules. It is stored as a
// JSON document on the contest row; unrecognized keys are preserved by the
// storage layer but ignored here.
type RuleSet struct {
	TeamSize           int    `json:"teamSize"`
	WalletSize         int64  `json:"walletSize"`
	AllowTeamChanges   bool   `json:"allowTeamChanges"`
	ChangeFrequency    string `json:"changeFrequency"`
	MaxPlayersToChange int    `json:"maxPlayersToChange"`
	ChangeWindowStart  string `json:"changeWindowStart"`
	ChangeWindowEnd    string `json:"changeWindowEnd"`
}

func DefaultRuleSet() RuleSet {
	rosterRules := roster.DefaultRules()
	return RuleSet{
		TeamSize:           rosterRules.TeamSize,
		WalletSize:         rosterRules.WalletSize,
		AllowTeamChanges:   true,
		ChangeFrequency:    string(roster.FrequencyDaily),
		MaxPlayersToChange: 2,
		ChangeWindowStart:  "00:00",
		ChangeWindowEnd:    "23:59",
	}
}

// ParseRuleSet decodes a rule document, filling absent fields from the
// defaults. Unknown keys are ignored so older engines keep working when the
// platform adds new rule knobs.
func ParseRuleSet(raw []byte) (RuleSet, error) {
	rules := DefaultRuleSet()
	if len(raw) == 0 {
		return rules, nil
	}
	if err := sonic.Unmarshal(raw, &rules); err != nil {
		return RuleSet{}, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	if err := rules.Validate(); err != nil {
		return RuleSet{}, err
	}
	return rules, nil
}

func (r RuleSet) Validate() error {
	if r.TeamSize <= 0 {
		return fmt.Errorf("%w: teamSize must be positive, got %d", ErrInvalidRuleSet, r.TeamSize)
	}
	if r.WalletSize <= 0 {
		return fmt.Errorf("%w: walletSize must be positive, got %d", ErrInvalidRuleSet, r.WalletSize)
	}
	if r.MaxPlayersToChange < 0 {
		return fmt.Errorf("%w: maxPlayersToChange must not be negative, got %d", ErrInvalidRuleSet, r.MaxPlayersToChange)
	}
	switch roster.ChangeFrequency(r.ChangeFrequency) {
	case roster.FrequencyDaily, roster.FrequencyMatchday, roster.FrequencyOnce:
	default:
		return fmt.Errorf("%w: unknown changeFrequency %q", ErrInvalidRuleSet, r.ChangeFrequency)
	}
	return nil
}

func (r RuleSet) RosterRules() roster.Rules {
	return roster.Rules{
		TeamSize:   r.TeamSize,
		WalletSize: r.WalletSize,
	}
}

func (r RuleSet) EditPolicy() roster.EditPolicy {
	return roster.EditPolicy{
		AllowChanges:       r.AllowTeamChanges,
		Frequency:          roster.ChangeFrequency(r.ChangeFrequency),
		MaxPlayersToChange: r.MaxPlayersToChange,
		WindowStart:        r.ChangeWindowStart,
		WindowEnd:          r.ChangeWindowEnd,
	}
}

func (r RuleSet) MarshalBinary() ([]byte, error) {
	return sonic.Marshal(r)
}
