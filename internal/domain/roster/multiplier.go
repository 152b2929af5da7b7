package roster

const (
	captainMultiplier     = 2.0
	viceCaptainMultiplier = 1.5
)

// ApplyRoleMultiplier scales a player's points by role: captain 2x,
// vice-captain 1.5x, everyone else unchanged. Mutual exclusivity of the
// flags is the validator's job, not re-checked here; if both are somehow
// set the captain multiplier wins.
func ApplyRoleMultiplier(points float64, isCaptain, isViceCaptain bool) float64 {
	switch {
	case isCaptain:
		return points * captainMultiplier
	case isViceCaptain:
		return points * viceCaptainMultiplier
	default:
		return points
	}
}

// SlotMultiplier is ApplyRoleMultiplier over a roster slot.
func SlotMultiplier(slot Slot) float64 {
	switch {
	case slot.IsCaptain:
		return captainMultiplier
	case slot.IsViceCaptain:
		return viceCaptainMultiplier
	default:
		return 1.0
	}
}
