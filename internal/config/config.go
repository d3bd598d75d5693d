// Package config holds the driver-level tuning of a simulation run: map
// size, clock, tick budget and robot capacity. Values come from built-in
// defaults, an optional YAML file and ROBOTICS_* environment variables, in
// that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/robotics/internal/runner"
	"github.com/samdwyer/robotics/internal/world"
	"github.com/samdwyer/robotics/internal/worldgen"
)

// Tuning is the run configuration.
type Tuning struct {
	Seed            int64    `yaml:"seed"`
	WorldSize       int      `yaml:"world_size"`
	Ticks           int      `yaml:"ticks"`
	BackpackSize    int      `yaml:"backpack_size"`
	RechargePerTick int      `yaml:"recharge_per_tick"`
	TickMinutes     int      `yaml:"tick_minutes"`
	StartHour       int      `yaml:"start_hour"`
	Forecast        []string `yaml:"forecast"`
	MaxScore        float32  `yaml:"max_score"`
	EventLogDir     string   `yaml:"event_log_dir"`
}

// Defaults returns the standard tuning. A zero seed picks a time-based one
// and an empty event log dir disables the log.
func Defaults() Tuning {
	return Tuning{
		WorldSize:       worldgen.DefaultSize,
		Ticks:           200,
		BackpackSize:    20,
		RechargePerTick: 10,
		TickMinutes:     10,
		StartHour:       8,
		Forecast:        []string{"sunny", "rainy", "foggy", "sunny", "trentinosnow"},
		MaxScore:        1000,
	}
}

// Load overlays the YAML file at path on the defaults. Keys missing from
// the file keep their default value.
func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ApplyEnv overlays the ROBOTICS_SEED, ROBOTICS_TICKS, ROBOTICS_WORLD_SIZE
// and ROBOTICS_EVENT_LOG_DIR variables when they are set.
func (t *Tuning) ApplyEnv() error {
	if v, ok := os.LookupEnv("ROBOTICS_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ROBOTICS_SEED: %w", err)
		}
		t.Seed = seed
	}
	if err := envInt("ROBOTICS_TICKS", &t.Ticks); err != nil {
		return err
	}
	if err := envInt("ROBOTICS_WORLD_SIZE", &t.WorldSize); err != nil {
		return err
	}
	if v, ok := os.LookupEnv("ROBOTICS_EVENT_LOG_DIR"); ok {
		t.EventLogDir = v
	}
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

// Validate rejects values no run can start with.
func (t Tuning) Validate() error {
	switch {
	case t.WorldSize < worldgen.MinSize:
		return fmt.Errorf("world_size %d is below the minimum of %d", t.WorldSize, worldgen.MinSize)
	case t.Ticks < 0:
		return fmt.Errorf("ticks must not be negative, got %d", t.Ticks)
	case t.BackpackSize < 0:
		return fmt.Errorf("backpack_size must not be negative, got %d", t.BackpackSize)
	case t.RechargePerTick < 0:
		return fmt.Errorf("recharge_per_tick must not be negative, got %d", t.RechargePerTick)
	case t.TickMinutes <= 0 || t.TickMinutes > world.MaxTickMinutes:
		return fmt.Errorf("tick_minutes must be between 1 and %d, got %d", world.MaxTickMinutes, t.TickMinutes)
	case t.StartHour < 0 || t.StartHour > 24:
		return fmt.Errorf("start_hour %d is not an hour of the day", t.StartHour)
	case t.MaxScore <= 0:
		return fmt.Errorf("max_score must be positive, got %v", t.MaxScore)
	}
	_, err := t.Weather()
	return err
}

// Weather parses the forecast names.
func (t Tuning) Weather() ([]world.WeatherType, error) {
	if len(t.Forecast) == 0 {
		return nil, world.ErrEmptyForecast
	}
	out := make([]world.WeatherType, len(t.Forecast))
	for i, name := range t.Forecast {
		w, err := world.ParseWeather(name)
		if err != nil {
			return nil, fmt.Errorf("forecast[%d]: %w", i, err)
		}
		out[i] = w
	}
	return out, nil
}

// Runner returns the runner settings.
func (t Tuning) Runner() runner.Config {
	return runner.Config{
		BackpackSize:    t.BackpackSize,
		RechargePerTick: t.RechargePerTick,
		Seed:            t.Seed,
	}
}

// Generator returns a world generator with this tuning's size and clock.
func (t Tuning) Generator() (*worldgen.Generator, error) {
	forecast, err := t.Weather()
	if err != nil {
		return nil, err
	}
	g := worldgen.New(t.WorldSize, t.Seed)
	g.Forecast = forecast
	g.TickMinutes = t.TickMinutes
	g.StartHour = t.StartHour
	g.MaxScore = t.MaxScore
	return g, nil
}

// LoadDotEnv loads the given .env files, or ./.env when none are given.
// Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
