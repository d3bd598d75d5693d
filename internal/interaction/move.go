package interaction

import (
	"math"

	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/world"
)

// TeleportCost is the flat energy price of a teleport jump.
const TeleportCost = 30

// Go moves the robot one tile in direction d. On success it returns the new
// 3x3 view and position.
func Go(r robot.Runnable, w *world.World, d world.Direction) (TileMatrix, world.Coordinate, error) {
	from := r.GetCoordinate()
	to, dest, err := target(r, w, d)
	if err != nil {
		return nil, from, err
	}
	if !dest.Type.Walkable() {
		return nil, from, world.ErrCannotWalk
	}

	cost := MoveCost(w, from, to)
	if err := pay(r, cost); err != nil {
		return nil, from, err
	}

	if dest.Type == world.Teleport {
		dest.Activated = true
	}
	r.SetCoordinate(to)
	r.HandleEvent(event.Moved{Tile: *dest, Coordinate: to})

	view, c := WhereAmI(r, w)
	return view, c, nil
}

// MoveCost returns the energy needed to step from one tile onto an adjacent
// one: the terrain cost adjusted for weather and time of day, plus the square
// of the elevation gain when climbing.
func MoveCost(w *world.World, from, to world.Coordinate) int {
	src, dst := w.TileAt(from), w.TileAt(to)
	cost := EnvironmentCost(dst.Type.Cost(), w.Environment(), dst.Type)
	if gain := dst.Elevation - src.Elevation; gain > 0 {
		cost += gain * gain
	}
	return cost
}

// EnvironmentCost adjusts a base movement cost for the weather and the part
// of day. Both increments are summed and rounded up.
func EnvironmentCost(base int, env *world.EnvironmentalConditions, t world.TileType) int {
	cost := float64(base)
	increment := 0.0

	switch weather := env.Weather(); {
	case weather == world.Sunny:
	case weather == world.Rainy:
		increment += cost * 1.1
	case weather == world.TropicalMonsoon:
		increment += cost * 2.0
	case t == world.Street && (weather == world.TrentinoSnow || weather == world.Foggy):
		increment += 1.0
	case t == world.Hill && weather == world.TrentinoSnow:
		increment += cost * 1.6
	case t == world.Mountain && weather == world.TrentinoSnow:
		increment += cost * 1.7
	case t == world.Snow && weather == world.TrentinoSnow:
		increment += cost * 2.0
	}

	switch daytime := env.DayTime(); {
	case t == world.Sand && daytime == world.Afternoon:
		increment += cost * 1.7
	case daytime == world.Morning:
		increment += cost * 1.1
	case daytime == world.Night:
		increment += cost * 1.4
	}

	return base + int(math.Ceil(increment))
}

// Teleport jumps from an activated teleport to another activated teleport.
func Teleport(r robot.Runnable, w *world.World, to world.Coordinate) (TileMatrix, world.Coordinate, error) {
	from := r.GetCoordinate()
	dest := w.TileAt(to)
	if dest == nil {
		return nil, from, world.ErrOutOfBounds
	}
	if !w.TileAt(from).IsActiveTeleport() || !dest.IsActiveTeleport() {
		return nil, from, world.ErrOperationNotAllowed
	}
	if err := pay(r, TeleportCost); err != nil {
		return nil, from, err
	}

	r.SetCoordinate(to)
	r.HandleEvent(event.Moved{Tile: *dest, Coordinate: to})

	view, c := WhereAmI(r, w)
	return view, c, nil
}
