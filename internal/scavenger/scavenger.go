// Package scavenger is a reference robot controller. Each tick it looks
// around, empties its backpack into adjacent receptacles that accept what it
// carries, collects adjacent content it wants and otherwise walks the
// cheapest known route to the nearest wanted tile. With nothing known it
// explores in a straight line, turning when blocked.
package scavenger

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/interaction"
	"github.com/samdwyer/robotics/internal/pathfind"
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/telemetry"
	"github.com/samdwyer/robotics/internal/world"
)

// DefaultWanted is the content a scavenger collects when Options.Wanted is empty.
var DefaultWanted = []world.ContentKind{
	world.Rock, world.Tree, world.Garbage, world.Coin, world.Fish, world.Bush,
}

// Options tune a Scavenger.
type Options struct {
	// Wanted lists the content kinds worth destroying.
	Wanted []world.ContentKind
	// Reserve is the energy level below which the scavenger only looks around.
	Reserve int
	// Listener, when set, receives every event after the scavenger.
	Listener event.Handler
}

// Scavenger implements robot.Runnable.
type Scavenger struct {
	*robot.Robot

	wanted   map[world.ContentKind]bool
	reserve  int
	listener event.Handler
	heading  int

	collected int
	deposited int
}

// New creates a scavenger with a fresh robot state.
func New(opts Options) *Scavenger {
	kinds := opts.Wanted
	if len(kinds) == 0 {
		kinds = DefaultWanted
	}
	wanted := make(map[world.ContentKind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}
	return &Scavenger{
		Robot:    robot.New(),
		wanted:   wanted,
		reserve:  opts.Reserve,
		listener: opts.Listener,
	}
}

// Collected returns the units stored in the backpack so far.
func (s *Scavenger) Collected() int { return s.collected }

// Deposited returns the units handed to receptacles and markets so far.
func (s *Scavenger) Deposited() int { return s.deposited }

// HandleEvent implements robot.Runnable.
func (s *Scavenger) HandleEvent(e event.Event) {
	if added, ok := e.(event.AddedToBackpack); ok {
		s.collected += added.Amount
	}
	if s.listener != nil {
		s.listener.HandleEvent(e)
	}
}

// ProcessTick implements robot.Runnable.
func (s *Scavenger) ProcessTick(ctx context.Context, w *world.World) {
	ctx, span := telemetry.Tracer("scavenger").Start(ctx, "scavenger.tick")
	defer span.End()

	view := interaction.RobotView(s, w)

	var action string
	switch {
	case s.Energy.Level() <= s.reserve:
		action = "rest"
	case s.deposit(w, view):
		action = "deposit"
	case s.collectAdjacent(w, view):
		action = "collect"
	default:
		moved, err := s.approach(ctx, w)
		switch {
		case err != nil:
			span.RecordError(err)
			action = "stuck"
		case moved:
			action = "approach"
		default:
			s.explore(w)
			action = "explore"
		}
	}

	span.SetAttributes(
		attribute.String("action", action),
		attribute.Int("energy", s.Energy.Level()),
		attribute.Int("backpack", s.Backpack.Total()),
	)
}

// neighbor returns the view cell in direction d.
func neighbor(view interaction.TileMatrix, d world.Direction) *world.Tile {
	dr, dc := d.Delta()
	return view[1+dr][1+dc]
}

// deposit puts carried content into the first adjacent tile that accepts it.
func (s *Scavenger) deposit(w *world.World, view interaction.TileMatrix) bool {
	for _, d := range world.Directions {
		tile := neighbor(view, d)
		if tile == nil {
			continue
		}
		accepted, ok := tile.Content.Kind.DisposesInto()
		if !ok || tile.Content.Kind == world.Fire {
			continue
		}
		held := s.Backpack.Amount(accepted)
		if held == 0 {
			continue
		}
		if span, ok := tile.Content.Range(); ok && span.Len() == 0 {
			continue
		}
		if v, ok := tile.Content.Value(); ok && v < 1 {
			continue
		}
		if _, err := interaction.Put(s, w, accepted, held, d); err == nil {
			s.deposited += held - s.Backpack.Amount(accepted)
			return true
		}
	}
	return false
}

// collectAdjacent destroys the first wanted content next to the robot.
func (s *Scavenger) collectAdjacent(w *world.World, view interaction.TileMatrix) bool {
	if s.Backpack.Free() == 0 {
		return false
	}
	for _, d := range world.Directions {
		tile := neighbor(view, d)
		if tile == nil || !s.wanted[tile.Content.Kind] || !tile.Content.Props().Destroyable {
			continue
		}
		if _, err := interaction.Destroy(s, w, d); err == nil {
			return true
		}
	}
	return false
}

// approach walks toward the cheapest known wanted tile, stopping next to it.
// It reports whether a route was found.
func (s *Scavenger) approach(ctx context.Context, w *world.World) (bool, error) {
	if s.Backpack.Free() == 0 {
		return false, nil
	}
	known := interaction.RobotMap(w)
	here := s.GetCoordinate()

	var coords []world.Coordinate
	for i, row := range known {
		for j, tile := range row {
			c := world.NewCoordinate(i, j)
			if tile == nil || c == here || !s.wanted[tile.Content.Kind] {
				continue
			}
			coords = append(coords, c)
		}
	}
	if len(coords) == 0 {
		return false, nil
	}

	g, targets := pathfind.FromKnown(known, coords)
	segments, err := g.Route(ctx, g.Node(here), targets)
	if err != nil {
		return false, err
	}
	if len(segments) == 0 || len(segments[0].Directions) == 0 {
		return false, nil
	}

	dirs := segments[0].Directions
	for _, d := range dirs[:len(dirs)-1] {
		if _, _, err := interaction.Go(s, w, d); err != nil {
			if errors.Is(err, world.ErrNotEnoughEnergy) {
				return true, nil
			}
			return true, err
		}
	}
	if _, err := interaction.Destroy(s, w, dirs[len(dirs)-1]); err != nil && !errors.Is(err, world.ErrNotEnoughEnergy) {
		return true, err
	}
	return true, nil
}

// explore steps along the current heading and turns on failure.
func (s *Scavenger) explore(w *world.World) {
	for range world.Directions {
		d := world.Directions[s.heading]
		_, _, err := interaction.Go(s, w, d)
		if err == nil || errors.Is(err, world.ErrNotEnoughEnergy) {
			return
		}
		s.heading = (s.heading + 1) % len(world.Directions)
	}
}
