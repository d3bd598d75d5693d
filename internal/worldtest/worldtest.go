// Package worldtest provides fixtures for tests that drive the engine: small
// hand-built maps, a fixed-map generator and a scriptable robot that records
// the events it receives.
package worldtest

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/runner"
	"github.com/samdwyer/robotics/internal/world"
)

// DefaultMaxScore is the score budget of fixture worlds.
const DefaultMaxScore = 100

// Grid returns a size x size map of empty tiles of terrain t.
func Grid(size int, t world.TileType) [][]world.Tile {
	tiles := make([][]world.Tile, size)
	for i := range tiles {
		tiles[i] = make([]world.Tile, size)
		for j := range tiles[i] {
			tiles[i][j] = world.Tile{Type: t}
		}
	}
	return tiles
}

// SunnyAfternoon returns a clock at 15:00 with a single sunny forecast,
// where no weather or time-of-day surcharge applies to grass.
func SunnyAfternoon(t testing.TB) *world.EnvironmentalConditions {
	t.Helper()
	env, err := sunnyAfternoon()
	require.NoError(t, err)
	return env
}

func sunnyAfternoon() (*world.EnvironmentalConditions, error) {
	return world.NewEnvironmentalConditions([]world.WeatherType{world.Sunny}, 15, 15)
}

// NewWorld builds a world around tiles with a sunny afternoon clock and a
// fixed random source. Extra options are applied last.
func NewWorld(t testing.TB, tiles [][]world.Tile, opts ...world.Option) *world.World {
	t.Helper()
	opts = append([]world.Option{world.WithRand(rand.New(rand.NewSource(1)))}, opts...)
	w, err := world.New(tiles, SunnyAfternoon(t), DefaultMaxScore, nil, opts...)
	require.NoError(t, err)
	return w
}

// =============================================================================
// Generator
// =============================================================================

// Generator hands out a fixed scenario. Tiles are copied on every call so a
// generator can seed several runs. A nil Environment becomes a fresh sunny
// afternoon clock.
type Generator struct {
	Tiles       [][]world.Tile
	Spawn       world.Coordinate
	Environment *world.EnvironmentalConditions
	MaxScore    float32
	Scores      map[world.ContentKind]float32
	Err         error
}

// Generate implements runner.Generator.
func (g *Generator) Generate(context.Context) (*runner.Scenario, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	tiles := make([][]world.Tile, len(g.Tiles))
	for i, row := range g.Tiles {
		tiles[i] = append([]world.Tile(nil), row...)
	}
	maxScore := g.MaxScore
	if maxScore == 0 {
		maxScore = DefaultMaxScore
	}
	env := g.Environment
	if env == nil {
		var err error
		if env, err = sunnyAfternoon(); err != nil {
			return nil, err
		}
	}
	return &runner.Scenario{
		Tiles:       tiles,
		Spawn:       g.Spawn,
		Environment: env,
		MaxScore:    maxScore,
		Scores:      g.Scores,
	}, nil
}

// =============================================================================
// Bot
// =============================================================================

// Bot is a Runnable whose tick behavior is a plain function. Every event
// delivered to it is kept in Events.
type Bot struct {
	*robot.Robot
	OnTick func(ctx context.Context, b *Bot, w *world.World)
	Events []event.Event
	Ticks  int
}

// NewBot creates a bot with full energy at the origin and a backpack of the
// given size.
func NewBot(backpackSize int) *Bot {
	r := robot.New()
	r.Backpack = robot.NewBackpack(backpackSize)
	return &Bot{Robot: r}
}

// ProcessTick implements robot.Runnable.
func (b *Bot) ProcessTick(ctx context.Context, w *world.World) {
	b.Ticks++
	if b.OnTick != nil {
		b.OnTick(ctx, b, w)
	}
}

// HandleEvent implements robot.Runnable.
func (b *Bot) HandleEvent(e event.Event) {
	b.Events = append(b.Events, e)
}

// EventsOf returns the recorded events of one kind, oldest first.
func (b *Bot) EventsOf(kind event.Kind) []event.Event {
	var out []event.Event
	for _, e := range b.Events {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

// Kinds returns the kinds of all recorded events in order.
func (b *Bot) Kinds() []event.Kind {
	out := make([]event.Kind, len(b.Events))
	for i, e := range b.Events {
		out[i] = e.Kind()
	}
	return out
}

// ClearEvents forgets the recorded events.
func (b *Bot) ClearEvents() {
	b.Events = nil
}
