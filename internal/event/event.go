// Package event defines the domain events delivered to a robot.
package event

import (
	"fmt"

	"github.com/samdwyer/robotics/internal/world"
)

// Kind identifies an event type.
type Kind string

const (
	KindReady               Kind = "ready"
	KindTerminated          Kind = "terminated"
	KindTimeChanged         Kind = "time_changed"
	KindDayChanged          Kind = "day_changed"
	KindEnergyRecharged     Kind = "energy_recharged"
	KindEnergyConsumed      Kind = "energy_consumed"
	KindMoved               Kind = "moved"
	KindTileContentUpdated  Kind = "tile_content_updated"
	KindAddedToBackpack     Kind = "added_to_backpack"
	KindRemovedFromBackpack Kind = "removed_from_backpack"
)

// Event is anything the engine or the driver reports to a robot.
type Event interface {
	Kind() Kind
	String() string
}

// Handler receives events.
type Handler interface {
	HandleEvent(e Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(e Event)

// HandleEvent calls f(e).
func (f HandlerFunc) HandleEvent(e Event) { f(e) }

// Ready is sent once when the run has been built.
type Ready struct{}

// Terminated is sent once when the run ends.
type Terminated struct{}

// TimeChanged carries the clock after a tick that stayed on the same day.
type TimeChanged struct {
	Environment *world.EnvironmentalConditions
}

// DayChanged carries the clock after a tick that crossed midnight.
type DayChanged struct {
	Environment *world.EnvironmentalConditions
}

// EnergyRecharged carries the amount granted at the end of a tick.
type EnergyRecharged struct {
	Amount int
}

// EnergyConsumed carries the amount an action cost.
type EnergyConsumed struct {
	Amount int
}

// Moved carries the tile the robot arrived on and its position.
type Moved struct {
	Tile       world.Tile
	Coordinate world.Coordinate
}

// TileContentUpdated carries a tile after an action changed it.
type TileContentUpdated struct {
	Tile       world.Tile
	Coordinate world.Coordinate
}

// AddedToBackpack carries the content kind and the amount actually stored.
type AddedToBackpack struct {
	Content world.ContentKind
	Amount  int
}

// RemovedFromBackpack carries the content kind and the amount actually removed.
type RemovedFromBackpack struct {
	Content world.ContentKind
	Amount  int
}

func (Ready) Kind() Kind               { return KindReady }
func (Terminated) Kind() Kind          { return KindTerminated }
func (TimeChanged) Kind() Kind         { return KindTimeChanged }
func (DayChanged) Kind() Kind          { return KindDayChanged }
func (EnergyRecharged) Kind() Kind     { return KindEnergyRecharged }
func (EnergyConsumed) Kind() Kind      { return KindEnergyConsumed }
func (Moved) Kind() Kind               { return KindMoved }
func (TileContentUpdated) Kind() Kind  { return KindTileContentUpdated }
func (AddedToBackpack) Kind() Kind     { return KindAddedToBackpack }
func (RemovedFromBackpack) Kind() Kind { return KindRemovedFromBackpack }

func (Ready) String() string      { return "Robot is ready" }
func (Terminated) String() string { return "Robot terminated" }

func (e TimeChanged) String() string {
	return fmt.Sprintf("Time changed: %s", e.Environment)
}

func (e DayChanged) String() string {
	return fmt.Sprintf("Day changed: %s", e.Environment)
}

func (e EnergyRecharged) String() string {
	return fmt.Sprintf("Energy recharged by %d", e.Amount)
}

func (e EnergyConsumed) String() string {
	return fmt.Sprintf("Energy consumed: %d", e.Amount)
}

func (e Moved) String() string {
	return fmt.Sprintf("Moved to %s on %s", e.Coordinate, e.Tile.Type)
}

func (e TileContentUpdated) String() string {
	return fmt.Sprintf("Tile %s now holds %s", e.Coordinate, e.Tile.Content)
}

func (e AddedToBackpack) String() string {
	return fmt.Sprintf("Added %d %s to backpack", e.Amount, e.Content)
}

func (e RemovedFromBackpack) String() string {
	return fmt.Sprintf("Removed %d %s from backpack", e.Amount, e.Content)
}
