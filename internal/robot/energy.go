package robot

import "github.com/samdwyer/robotics/internal/world"

// MaxEnergyLevel is the cap no recharge can exceed.
const MaxEnergyLevel = 1000

// Energy is a bounded energy ledger.
type Energy struct {
	level int
}

// NewEnergy creates a ledger at the given level, clamped to [0, MaxEnergyLevel].
func NewEnergy(level int) *Energy {
	return &Energy{level: clamp(level)}
}

// Level returns the current energy.
func (e *Energy) Level() int {
	return e.level
}

// HasEnough reports whether amount can be consumed.
func (e *Energy) HasEnough(amount int) bool {
	return e.level >= amount
}

// Consume removes amount, leaving the level untouched if it cannot be paid.
func (e *Energy) Consume(amount int) error {
	if amount < 0 || !e.HasEnough(amount) {
		return world.ErrNotEnoughEnergy
	}
	e.level -= amount
	return nil
}

// Recharge adds amount, saturating at MaxEnergyLevel.
func (e *Energy) Recharge(amount int) {
	e.level = clamp(e.level + max(amount, 0))
}

func clamp(level int) int {
	return min(max(level, 0), MaxEnergyLevel)
}
