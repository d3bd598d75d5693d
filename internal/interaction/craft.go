package interaction

import (
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/world"
)

// Craft turns backpack ingredients into one unit of kind. Recipe alternatives
// are tried in table order and the first one the backpack fully covers is
// used. If the energy cost cannot be paid afterwards the ingredients stay
// spent and ErrNotEnoughEnergy is returned, so callers should check energy
// before crafting.
func Craft(r robot.Runnable, kind world.ContentKind) (world.Content, error) {
	if kind == world.ContentNone {
		return world.None, world.ErrNotCraftable
	}

	backpack := r.GetBackpack()
	for _, ing := range kind.Recipe() {
		if backpack.Amount(ing.Kind) < ing.Count {
			continue
		}
		if _, err := RemoveFromBackpack(r, ing.Kind, ing.Count); err != nil {
			return world.None, err
		}
		if err := pay(r, kind.Props().Cost); err != nil {
			return world.None, err
		}
		// Removing at least one ingredient freed the slot this needs.
		if _, err := AddToBackpack(r, kind, 1); err != nil {
			return world.None, err
		}
		return world.Content{Kind: kind}, nil
	}
	return world.None, world.ErrNotCraftable
}
