package runner

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/telemetry"
)

// GameTick plays one tick: clock, robot decision, recharge.
func (rn *Runner) GameTick(ctx context.Context) error {
	if rn.terminated {
		return ErrTerminated
	}
	ctx, span := telemetry.Tracer("runner").Start(ctx, "runner.tick")
	defer span.End()

	env := rn.world.Environment()
	dayChanged := env.Tick()
	if dayChanged {
		rn.robot.HandleEvent(event.DayChanged{Environment: env.Clone()})
	} else {
		rn.robot.HandleEvent(event.TimeChanged{Environment: env.Clone()})
	}

	rn.robot.ProcessTick(ctx, rn.world)

	rn.robot.GetEnergy().Recharge(rn.cfg.RechargePerTick)
	rn.robot.HandleEvent(event.EnergyRecharged{Amount: rn.cfg.RechargePerTick})
	rn.ticks++

	span.SetAttributes(
		attribute.Int("tick", rn.ticks),
		attribute.Bool("day_changed", dayChanged),
		attribute.Int("energy", rn.robot.GetEnergy().Level()),
		attribute.Float64("score", float64(rn.world.Score().Score())),
	)
	return nil
}

// Run plays ticks ticks, or until ctx is done when ticks is not positive.
func (rn *Runner) Run(ctx context.Context, ticks int) error {
	for i := 0; ticks <= 0 || i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := rn.GameTick(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Terminate ends the run and sends the robot the Terminated event. Later
// calls do nothing.
func (rn *Runner) Terminate() {
	if rn.terminated {
		return
	}
	rn.terminated = true
	rn.robot.HandleEvent(event.Terminated{})
}
