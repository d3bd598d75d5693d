// Package interaction is the action-resolution engine: every operation a
// robot controller may perform on the world during its tick.
//
// Entry points validate first and mutate last, so an error means the world,
// the robot's energy and its backpack are untouched. Craft is the exception:
// a craft that cannot be paid for after its ingredients were taken keeps them
// spent. Every energy payment is reported with an EnergyConsumed event before
// the tile change it paid for.
package interaction

import (
	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/world"
)

// TileMatrix is a grid of tile snapshots. Nil cells are unknown or off the map.
type TileMatrix [][]*world.Tile

// AddToBackpack stores up to qty items and reports the stored amount with an
// AddedToBackpack event. When not everything fits the partial add is kept and
// a *world.NotEnoughSpaceError carrying the stored amount is returned.
func AddToBackpack(r robot.Runnable, kind world.ContentKind, qty int) (int, error) {
	added, err := r.GetBackpack().Add(kind, qty)
	if qty > 0 {
		r.HandleEvent(event.AddedToBackpack{Content: kind, Amount: added})
	}
	return added, err
}

// RemoveFromBackpack takes up to qty items and reports the removed amount
// with a RemovedFromBackpack event.
func RemoveFromBackpack(r robot.Runnable, kind world.ContentKind, qty int) (int, error) {
	removed, err := r.GetBackpack().Remove(kind, qty)
	if err != nil {
		return 0, err
	}
	r.HandleEvent(event.RemovedFromBackpack{Content: kind, Amount: removed})
	return removed, nil
}

// pay consumes energy and reports it.
func pay(r robot.Runnable, cost int) error {
	if err := r.GetEnergy().Consume(cost); err != nil {
		return err
	}
	r.HandleEvent(event.EnergyConsumed{Amount: cost})
	return nil
}

// canPay checks affordability without consuming.
func canPay(r robot.Runnable, cost int) error {
	if !r.GetEnergy().HasEnough(cost) {
		return world.ErrNotEnoughEnergy
	}
	return nil
}

func tileUpdated(r robot.Runnable, w *world.World, c world.Coordinate) {
	r.HandleEvent(event.TileContentUpdated{Tile: *w.TileAt(c), Coordinate: c})
}

// target resolves the tile next to the robot in direction d.
func target(r robot.Runnable, w *world.World, d world.Direction) (world.Coordinate, *world.Tile, error) {
	c := r.GetCoordinate().Step(d)
	tile := w.TileAt(c)
	if tile == nil {
		return c, nil, world.ErrOutOfBounds
	}
	return c, tile, nil
}
