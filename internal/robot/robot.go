// Package robot provides the actor state the engine manipulates (energy,
// position and backpack) and the contract a robot controller implements.
package robot

import (
	"context"

	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/world"
)

// Runnable is a robot controller driven once per tick.
type Runnable interface {
	// Decision
	ProcessTick(ctx context.Context, w *world.World)
	HandleEvent(e event.Event)

	// State
	GetEnergy() *Energy
	GetCoordinate() world.Coordinate
	SetCoordinate(c world.Coordinate)
	GetBackpack() *Backpack
}

// Robot is the state half of a Runnable. Controllers embed it and add
// ProcessTick and HandleEvent.
type Robot struct {
	Energy     *Energy
	Coordinate world.Coordinate
	Backpack   *Backpack
}

// New creates a robot at the origin with full energy and an empty,
// zero-capacity backpack. The runner sets position and capacity.
func New() *Robot {
	return &Robot{
		Energy:   NewEnergy(MaxEnergyLevel),
		Backpack: NewBackpack(0),
	}
}

// =============================================================================
// Runnable state implementation
// =============================================================================

// GetEnergy returns the robot's energy ledger.
func (r *Robot) GetEnergy() *Energy { return r.Energy }

// GetCoordinate returns the robot's position.
func (r *Robot) GetCoordinate() world.Coordinate { return r.Coordinate }

// SetCoordinate moves the robot without any cost.
func (r *Robot) SetCoordinate(c world.Coordinate) { r.Coordinate = c }

// GetBackpack returns the robot's backpack.
func (r *Robot) GetBackpack() *Backpack { return r.Backpack }
