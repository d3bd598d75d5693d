// Package worldgen builds square island worlds: a binary space partition
// cuts the map into leaves, each leaf gets one room of a single terrain
// floating on deep water, and streets join sibling rooms. Rooms are then
// scattered with content, receptacles, a market and a pair of teleports.
package worldgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/robotics/internal/runner"
	"github.com/samdwyer/robotics/internal/telemetry"
	"github.com/samdwyer/robotics/internal/world"
)

const (
	// DefaultSize is the side length of generated maps.
	DefaultSize = 48
	// MinSize is the smallest map that fits two leaves.
	MinSize = 2*minLeafSize + 2

	// Share of room tiles that receive content.
	contentChance = 0.15
	// Attempts at finding a tile that can hold a placed item.
	placementAttempts = 50
)

// ErrTooSmall means the requested size cannot hold any room.
var ErrTooSmall = errors.New("world size too small")

// Room terrains. Lava and walls only appear as hazards.
var biomes = []world.TileType{
	world.Grass, world.Grass, world.Grass,
	world.Sand, world.Hill, world.Snow, world.Mountain, world.ShallowWater,
}

// Content scattered on room tiles, when the terrain can hold it.
var scatter = []world.ContentKind{
	world.Rock, world.Rock, world.Tree, world.Tree, world.Garbage,
	world.Coin, world.Bush, world.Fish, world.Water, world.Fire, world.Building,
}

// Receptacles placed once per map.
var fixtures = []world.ContentKind{world.Bin, world.Crate, world.Bank, world.Market}

// Generator is a seeded island world generator. It implements
// runner.Generator.
type Generator struct {
	Size        int
	Seed        int64
	Forecast    []world.WeatherType
	TickMinutes int
	StartHour   int
	MaxScore    float32

	tiles [][]world.Tile
	rooms []Room
	rng   *rand.Rand
}

// New creates a generator with the standard clock and score budget. A seed
// of 0 picks a time-based seed.
func New(size int, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Size:        size,
		Seed:        seed,
		Forecast:    []world.WeatherType{world.Sunny, world.Rainy, world.Foggy, world.Sunny, world.TrentinoSnow},
		TickMinutes: 10,
		StartHour:   8,
		MaxScore:    1000,
	}
}

// Rooms returns the rooms of the last generated map.
func (g *Generator) Rooms() []Room {
	return g.rooms
}

// Generate builds a fresh map from the generator's seed. The same seed and
// settings always produce the same scenario.
func (g *Generator) Generate(ctx context.Context) (*runner.Scenario, error) {
	_, span := telemetry.Tracer("worldgen").Start(ctx, "worldgen.generate")
	defer span.End()

	if g.Size < MinSize {
		err := fmt.Errorf("%w: %d < %d", ErrTooSmall, g.Size, MinSize)
		span.RecordError(err)
		return nil, err
	}
	env, err := world.NewEnvironmentalConditions(g.Forecast, g.TickMinutes, g.StartHour)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	g.rng = rand.New(rand.NewSource(g.Seed))
	g.rooms = nil
	g.tiles = make([][]world.Tile, g.Size)
	for i := range g.tiles {
		g.tiles[i] = make([]world.Tile, g.Size)
		for j := range g.tiles[i] {
			g.tiles[i][j] = world.Tile{Type: world.DeepWater}
		}
	}

	root := &bspNode{row: 1, col: 1, height: g.Size - 2, width: g.Size - 2}
	g.splitNode(root)
	g.createRooms(root)
	g.connectRooms(root)
	if len(g.rooms) == 0 {
		// Leaves too tight for a room: fall back to one island.
		room := Room{Row: 1, Col: 1, Height: g.Size - 2, Width: g.Size - 2, Terrain: world.Grass}
		g.rooms = append(g.rooms, room)
		g.carveRoom(room)
	}

	g.scatterContent()
	g.placeFixtures()
	teleports := g.placeTeleports()

	spawn := g.rooms[0].Center()
	g.tiles[spawn.Row][spawn.Col].Content = world.None
	if !g.tiles[spawn.Row][spawn.Col].Type.Walkable() {
		g.tiles[spawn.Row][spawn.Col].Type = world.Street
	}

	span.SetAttributes(
		attribute.Int("world.size", g.Size),
		attribute.Int("world.rooms", len(g.rooms)),
		attribute.Int("world.teleports", teleports),
		attribute.Int64("seed", g.Seed),
	)
	return &runner.Scenario{
		Tiles:       g.tiles,
		Spawn:       spawn,
		Environment: env,
		MaxScore:    g.MaxScore,
	}, nil
}

// randomPointInRoom returns a uniformly random tile of room.
func (g *Generator) randomPointInRoom(room Room) world.Coordinate {
	return world.NewCoordinate(room.Row+g.rng.Intn(room.Height), room.Col+g.rng.Intn(room.Width))
}

func (g *Generator) scatterContent() {
	for _, room := range g.rooms {
		for r := room.Row; r < room.Row+room.Height; r++ {
			for c := room.Col; c < room.Col+room.Width; c++ {
				if g.rng.Float64() >= contentChance {
					continue
				}
				tile := &g.tiles[r][c]
				kind := scatter[g.rng.Intn(len(scatter))]
				if !tile.Type.CanHold(kind) {
					continue
				}
				tile.Content = g.randomContent(kind)
			}
		}
	}
}

func (g *Generator) randomContent(kind world.ContentKind) world.Content {
	limit := kind.Props().Max
	if limit <= 0 {
		return world.Content{Kind: kind}
	}
	n := 1 + g.rng.Intn(limit)
	if kind.IsRange() {
		return world.NewReceptacle(kind, 0, n)
	}
	return world.NewContent(kind, n)
}

func (g *Generator) placeFixtures() {
	for _, kind := range fixtures {
		for i := 0; i < placementAttempts; i++ {
			c := g.randomPointInRoom(g.rooms[g.rng.Intn(len(g.rooms))])
			tile := &g.tiles[c.Row][c.Col]
			if tile.Type.CanHold(kind) {
				tile.Content = g.randomContent(kind)
				break
			}
		}
	}
}

// placeTeleports turns one tile of each of two distinct rooms into a
// teleport and returns how many were placed.
func (g *Generator) placeTeleports() int {
	if len(g.rooms) < 2 {
		return 0
	}
	first := 1 + g.rng.Intn(len(g.rooms)-1)
	second := g.rng.Intn(len(g.rooms))
	if second == first {
		second = 0
	}
	for _, i := range []int{first, second} {
		c := g.randomPointInRoom(g.rooms[i])
		g.tiles[c.Row][c.Col] = world.Tile{Type: world.Teleport, Elevation: g.tiles[c.Row][c.Col].Elevation}
	}
	return 2
}
