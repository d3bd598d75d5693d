package worldgen

import "github.com/samdwyer/robotics/internal/world"

// Room is a rectangular island of one terrain.
type Room struct {
	Row, Col      int // Top-left corner
	Height, Width int
	Terrain       world.TileType
}

// Center returns the middle tile of the room.
func (r Room) Center() world.Coordinate {
	return world.NewCoordinate(r.Row+r.Height/2, r.Col+r.Width/2)
}

// Contains returns true if c lies inside the room.
func (r Room) Contains(c world.Coordinate) bool {
	return c.Row >= r.Row && c.Row < r.Row+r.Height && c.Col >= r.Col && c.Col < r.Col+r.Width
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.Col < other.Col+other.Width &&
		r.Col+r.Width > other.Col &&
		r.Row < other.Row+other.Height &&
		r.Row+r.Height > other.Row
}
