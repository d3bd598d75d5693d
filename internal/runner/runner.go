// Package runner drives a robot through a world one tick at a time.
//
// A tick advances the environmental clock, lets the robot decide and act,
// then recharges its energy by a flat amount.
package runner

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/telemetry"
	"github.com/samdwyer/robotics/internal/world"
)

// ErrTerminated is returned when ticking a runner after Terminate.
var ErrTerminated = errors.New("runner terminated")

// Scenario is everything a generator produces for one run.
type Scenario struct {
	Tiles       [][]world.Tile
	Spawn       world.Coordinate
	Environment *world.EnvironmentalConditions
	MaxScore    float32
	// Scores replaces the derived weight table when non-nil.
	Scores map[world.ContentKind]float32
}

// Generator produces the world a run is played on.
type Generator interface {
	Generate(ctx context.Context) (*Scenario, error)
}

// Config holds driver-level knobs.
type Config struct {
	BackpackSize    int
	RechargePerTick int
	// Seed for the world's random source. Zero picks a time-based seed.
	Seed int64
	// Discoverable overrides the discovery budget when positive.
	Discoverable int
}

// DefaultConfig returns the standard driver settings.
func DefaultConfig() Config {
	return Config{
		BackpackSize:    20,
		RechargePerTick: 10,
	}
}

// Runner owns one world and the robot playing it.
type Runner struct {
	id         ulid.ULID
	cfg        Config
	robot      robot.Runnable
	world      *world.World
	ticks      int
	terminated bool
}

// New generates and validates a world, places the robot on its spawn and
// sends it the Ready event. An invalid world is an error; no runner is
// returned for it.
func New(ctx context.Context, gen Generator, r robot.Runnable, cfg Config) (*Runner, error) {
	ctx, span := telemetry.Tracer("runner").Start(ctx, "runner.new")
	defer span.End()

	sc, err := gen.Generate(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generate world: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts := []world.Option{world.WithRand(rand.New(rand.NewSource(cfg.Seed)))}
	if cfg.Discoverable > 0 {
		opts = append(opts, world.WithDiscoverable(cfg.Discoverable))
	}
	w, err := world.New(sc.Tiles, sc.Environment, sc.MaxScore, sc.Scores, opts...)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("invalid world: %w", err)
	}
	spawn := w.TileAt(sc.Spawn)
	if spawn == nil {
		return nil, fmt.Errorf("spawn %s: %w", sc.Spawn, world.ErrOutOfBounds)
	}

	if err := r.GetBackpack().SetSize(cfg.BackpackSize); err != nil {
		return nil, fmt.Errorf("backpack: %w", err)
	}
	r.SetCoordinate(sc.Spawn)
	if spawn.Type == world.Teleport {
		spawn.Activated = true
	}

	rn := &Runner{
		id:    ulid.Make(),
		cfg:   cfg,
		robot: r,
		world: w,
	}
	r.HandleEvent(event.Ready{})

	span.SetAttributes(
		attribute.String("run.id", rn.id.String()),
		attribute.Int("world.dimension", w.Dimension()),
		attribute.Int("world.discoverable", w.Discoverable()),
		attribute.Int("spawn.row", sc.Spawn.Row),
		attribute.Int("spawn.col", sc.Spawn.Col),
		attribute.Float64("score.max", float64(w.Score().MaxScore())),
		attribute.Int64("seed", cfg.Seed),
	)
	return rn, nil
}

// ID returns the run identifier.
func (rn *Runner) ID() ulid.ULID { return rn.id }

// World returns the world being played.
func (rn *Runner) World() *world.World { return rn.world }

// Robot returns the robot being driven.
func (rn *Runner) Robot() robot.Runnable { return rn.robot }

// Ticks returns how many ticks have completed.
func (rn *Runner) Ticks() int { return rn.ticks }

// Seed returns the seed of the world's random source.
func (rn *Runner) Seed() int64 { return rn.cfg.Seed }
