package interaction

import (
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/world"
)

// Destroy collects the content of the adjacent tile in direction d into the
// backpack and clears the tile. Empty water tiles yield a random amount of
// water instead. Returns the amount actually stored; whatever did not fit is
// lost with the tile content.
func Destroy(r robot.Runnable, w *world.World, d world.Direction) (int, error) {
	c, tile, err := target(r, w, d)
	if err != nil {
		return 0, err
	}

	content := tile.Content
	var yield, cost int
	switch {
	case isWater(tile.Type) && content.IsNone():
		content = world.NewContent(world.Water, 0)
		yield = w.Rand().Intn(world.Water.Props().Max)
		cost = world.Water.Props().Cost
	case content.IsNone():
		return 0, world.ErrNoContent
	case !content.Props().Destroyable:
		return 0, world.ErrCannotDestroy
	default:
		yield, _ = content.Value()
		cost = content.Props().Cost
	}

	if err := canPay(r, cost); err != nil {
		return 0, err
	}
	if yield > 0 && r.GetBackpack().Free() == 0 {
		return 0, world.NotEnoughSpace(0)
	}

	if err := pay(r, cost); err != nil {
		return 0, err
	}
	stored, _ := AddToBackpack(r, content.Kind, yield)
	w.Score().AddDestroy(content, stored)
	tile.Content = world.None
	tileUpdated(r, w, c)
	return stored, nil
}

func isWater(t world.TileType) bool {
	return t == world.ShallowWater || t == world.DeepWater
}
