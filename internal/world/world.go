// Package world holds the grid model: terrain and content variants with
// their static properties, the environmental clock, the score counter and
// the World that ties them together.
package world

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// World is the mutable state of one run. It is not safe for concurrent use;
// the driver calls into it from a single goroutine, one actor per tick.
type World struct {
	tiles        [][]Tile
	dimension    int
	discoverable int
	env          *EnvironmentalConditions
	score        *ScoreCounter
	discovered   mapset.Set[Coordinate]
	rng          *rand.Rand
}

// Option customizes a World at construction.
type Option func(*World)

// WithRand sets the random source used for harvesting and digging.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) { w.rng = rng }
}

// WithDiscoverable overrides the discovery budget.
func WithDiscoverable(n int) Option {
	return func(w *World) { w.discoverable = n }
}

// DefaultDiscoverable returns the discovery budget of a map of the given
// dimension, roughly 30% of its tiles.
func DefaultDiscoverable(dimension int) int {
	return (dimension*dimension/10 + 1) * 3
}

// New validates the map and builds a world around it. The tiles are owned by
// the world afterwards.
func New(tiles [][]Tile, env *EnvironmentalConditions, maxScore float32, customScores map[ContentKind]float32, opts ...Option) (*World, error) {
	if env == nil {
		return nil, ErrNoEnvironment
	}
	if err := Validate(tiles); err != nil {
		return nil, err
	}
	score, err := NewScoreCounter(maxScore, tiles, customScores)
	if err != nil {
		return nil, err
	}

	w := &World{
		tiles:        tiles,
		dimension:    len(tiles),
		discoverable: DefaultDiscoverable(len(tiles)),
		env:          env,
		score:        score,
		discovered:   mapset.New[Coordinate](),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Dimension returns the side length of the square map.
func (w *World) Dimension() int {
	return w.dimension
}

// InBounds reports whether c lies on the map.
func (w *World) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < w.dimension && c.Col >= 0 && c.Col < w.dimension
}

// TileAt returns the tile at c for in-place mutation, or nil off the map.
func (w *World) TileAt(c Coordinate) *Tile {
	if !w.InBounds(c) {
		return nil
	}
	return &w.tiles[c.Row][c.Col]
}

// Snapshot returns a deep copy of the map.
func (w *World) Snapshot() [][]Tile {
	out := make([][]Tile, len(w.tiles))
	for r := range w.tiles {
		out[r] = append([]Tile(nil), w.tiles[r]...)
	}
	return out
}

// Discoverable returns the remaining discovery budget.
func (w *World) Discoverable() int {
	return w.discoverable
}

// SpendDiscovery consumes n units of discovery budget.
func (w *World) SpendDiscovery(n int) error {
	if n > w.discoverable {
		return ErrNoMoreDiscovery
	}
	w.discoverable -= n
	return nil
}

// Environment returns the live environmental clock.
func (w *World) Environment() *EnvironmentalConditions {
	return w.env
}

// Score returns the live score counter.
func (w *World) Score() *ScoreCounter {
	return w.score
}

// Rand returns the world's random source.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Discover records c as seen by the robot. Off-map coordinates are ignored.
func (w *World) Discover(c Coordinate) {
	if w.InBounds(c) {
		w.discovered.Put(c)
	}
}

// IsDiscovered reports whether the robot has seen c.
func (w *World) IsDiscovered(c Coordinate) bool {
	return w.discovered.Has(c)
}

// DiscoveredCount returns how many distinct tiles the robot has seen.
func (w *World) DiscoveredCount() int {
	return w.discovered.Size()
}

// KnownMap returns the robot's cumulative view: a copy of every discovered
// tile, nil elsewhere.
func (w *World) KnownMap() [][]*Tile {
	out := make([][]*Tile, w.dimension)
	for r := range out {
		out[r] = make([]*Tile, w.dimension)
	}
	w.discovered.Each(func(c Coordinate) {
		tile := w.tiles[c.Row][c.Col]
		out[c.Row][c.Col] = &tile
	})
	return out
}
