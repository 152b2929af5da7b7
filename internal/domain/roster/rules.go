package roster

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRosterSize      = errors.New("invalid roster size")
	ErrInvalidCaptaincy       = errors.New("invalid captaincy")
	ErrBudgetExceeded         = errors.New("budget exceeded")
	ErrInvalidPlayerSelection = errors.New("invalid player selection")
)

// Selection is one proposed pick during team construction, before prices are
// resolved against the contest price list.
type Selection struct {
	PlayerID      string
	IsCaptain     bool
	IsViceCaptain bool
}

// Rules stores the contest parameters the validator enforces.
type Rules struct {
	TeamSize   int
	WalletSize int64
}

func DefaultRules() Rules {
	return Rules{
		TeamSize:   7,
		WalletSize: 1000,
	}
}

// Validate checks a proposed roster against contest rules and the player
// price list. Checks run in a fixed order: size, captaincy, budget, player
// existence/distinctness. It is pure; accepted selections are returned as
// priced slots.
func Validate(selections []Selection, rules Rules, prices map[string]int64) ([]Slot, error) {
	if len(selections) != rules.TeamSize {
		return nil, fmt.Errorf("%w: expected %d players, got %d", ErrInvalidRosterSize, rules.TeamSize, len(selections))
	}

	captainID := ""
	viceCaptainID := ""
	for _, sel := range selections {
		if sel.IsCaptain {
			if captainID != "" {
				return nil, fmt.Errorf("%w: more than one captain", ErrInvalidCaptaincy)
			}
			captainID = sel.PlayerID
		}
		if sel.IsViceCaptain {
			if viceCaptainID != "" {
				return nil, fmt.Errorf("%w: more than one vice captain", ErrInvalidCaptaincy)
			}
			viceCaptainID = sel.PlayerID
		}
	}
	if captainID == "" {
		return nil, fmt.Errorf("%w: captain is required", ErrInvalidCaptaincy)
	}
	if viceCaptainID == "" {
		return nil, fmt.Errorf("%w: vice captain is required", ErrInvalidCaptaincy)
	}
	if captainID == viceCaptainID {
		return nil, fmt.Errorf("%w: captain and vice captain must be different players", ErrInvalidCaptaincy)
	}

	var totalCost int64
	for _, sel := range selections {
		totalCost += prices[sel.PlayerID]
	}
	if totalCost > rules.WalletSize {
		return nil, fmt.Errorf("%w: budget exceeded by %d", ErrBudgetExceeded, totalCost-rules.WalletSize)
	}

	seen := make(map[string]struct{}, len(selections))
	slots := make([]Slot, 0, len(selections))
	for _, sel := range selections {
		if sel.PlayerID == "" {
			return nil, fmt.Errorf("%w: player id is required", ErrInvalidPlayerSelection)
		}
		price, ok := prices[sel.PlayerID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown player %s", ErrInvalidPlayerSelection, sel.PlayerID)
		}
		if _, dup := seen[sel.PlayerID]; dup {
			return nil, fmt.Errorf("%w: duplicate player %s", ErrInvalidPlayerSelection, sel.PlayerID)
		}
		seen[sel.PlayerID] = struct{}{}

		slots = append(slots, Slot{
			PlayerID:      sel.PlayerID,
			Price:         price,
			IsCaptain:     sel.IsCaptain,
			IsViceCaptain: sel.IsViceCaptain,
		})
	}

	return slots, nil
}
