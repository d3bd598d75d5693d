package world

import (
	"fmt"

	"github.com/samdwyer/robotics/internal/gamedata"
)

// TileType is the terrain kind of a tile.
type TileType uint8

const (
	DeepWater TileType = iota
	ShallowWater
	Sand
	Grass
	Street
	Hill
	Mountain
	Snow
	Lava
	Teleport
	Wall

	numTileTypes
)

var tileTypeIDs = [numTileTypes]string{
	"deep_water", "shallow_water", "sand", "grass", "street", "hill",
	"mountain", "snow", "lava", "teleport", "wall",
}

// TileTypes returns every terrain kind in declaration order.
func TileTypes() []TileType {
	types := make([]TileType, 0, numTileTypes)
	for t := TileType(0); t < numTileTypes; t++ {
		types = append(types, t)
	}
	return types
}

// ParseTileType maps a table ID (e.g., "shallow_water") to its terrain kind.
func ParseTileType(id string) (TileType, bool) {
	for t, s := range tileTypeIDs {
		if s == id {
			return TileType(t), true
		}
	}
	return DeepWater, false
}

// ID returns the identifier used in the embedded tables.
func (t TileType) ID() string {
	if t >= numTileTypes {
		return "unknown"
	}
	return tileTypeIDs[t]
}

// String returns the display name of the terrain kind.
func (t TileType) String() string {
	if t >= numTileTypes {
		return "Unknown"
	}
	return t.Props().Name
}

// MarshalText encodes the kind as its table ID.
func (t TileType) MarshalText() ([]byte, error) {
	return []byte(t.ID()), nil
}

// UnmarshalText decodes a table ID.
func (t *TileType) UnmarshalText(b []byte) error {
	v, ok := ParseTileType(string(b))
	if !ok {
		return fmt.Errorf("unknown terrain %q", b)
	}
	*t = v
	return nil
}

// Props returns the static property record of the terrain kind.
func (t TileType) Props() *gamedata.TerrainDef {
	return props().terrains[t]
}

// Walkable reports whether a robot may stand on this terrain.
func (t TileType) Walkable() bool {
	return t.Props().Walkable
}

// Cost returns the base energy cost of moving onto this terrain.
func (t TileType) Cost() int {
	return t.Props().Cost
}

// CanHold reports whether this terrain may carry the content kind.
func (t TileType) CanHold(k ContentKind) bool {
	if t >= numTileTypes || k >= numContentKinds {
		return false
	}
	return props().holds[t][k]
}

// Tile is one grid cell.
type Tile struct {
	Type      TileType `json:"type"`
	Content   Content  `json:"content"`
	Elevation int      `json:"elevation"`
	// Activated is only meaningful on Teleport tiles: set once the robot
	// has stepped on the tile, after which it is a teleport destination.
	Activated bool `json:"activated,omitempty"`
}

// IsActiveTeleport reports whether the tile is a discovered teleport.
func (t Tile) IsActiveTeleport() bool {
	return t.Type == Teleport && t.Activated
}
