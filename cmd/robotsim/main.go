// Package main runs one simulation: a generated island world played by the
// scavenger controller for a fixed number of ticks.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/samdwyer/robotics/internal/config"
	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/eventlog"
	"github.com/samdwyer/robotics/internal/interaction"
	"github.com/samdwyer/robotics/internal/runner"
	"github.com/samdwyer/robotics/internal/scavenger"
	"github.com/samdwyer/robotics/internal/telemetry"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file")
	flag.Parse()

	// Load .env file for local development
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if tc := telemetry.ConfigFromEnv(); tc.Enabled() {
		shutdown, err := telemetry.Setup(ctx, tc)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg := config.Defaults()
	if *tuningPath != "" {
		var err error
		if cfg, err = config.Load(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Bad environment: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid tuning: %v", err)
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

func run(ctx context.Context, cfg config.Tuning) error {
	gen, err := cfg.Generator()
	if err != nil {
		return err
	}

	// The recorder is named after the run, which only exists once the
	// runner is built, so events are forwarded through a late-bound handler.
	var sink event.Handler
	bot := scavenger.New(scavenger.Options{
		Listener: event.HandlerFunc(func(e event.Event) {
			if sink != nil {
				sink.HandleEvent(e)
			}
		}),
	})

	rn, err := runner.New(ctx, gen, bot, cfg.Runner())
	if err != nil {
		return err
	}
	log.Printf("Run %s: %dx%d world, seed %d", rn.ID(), rn.World().Dimension(), rn.World().Dimension(), gen.Seed)

	var rec *eventlog.Recorder
	if cfg.EventLogDir != "" {
		rec = eventlog.NewRecorder(cfg.EventLogDir, rn.ID().String())
		sink = rec
	}

	runErr := rn.Run(ctx, cfg.Ticks)
	rn.Terminate()

	if rec != nil {
		if err := rec.Close(); err != nil {
			log.Printf("Event log incomplete: %v", err)
		} else {
			log.Printf("Recorded %d events to %v", rec.Count(), rec.Paths())
		}
	}
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}

	log.Printf("Finished after %d ticks: score %.1f / %.1f, collected %d, deposited %d",
		rn.Ticks(), interaction.GetScore(rn.World()), rn.World().Score().MaxScore(),
		bot.Collected(), bot.Deposited())
	return nil
}
