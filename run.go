package sticks

import (
	"context"
	"errors"
	"fmt"
)

// RunConfig controls the Run driver loop. The zero value steps forever,
// calls no hooks, and renders every tick.
type RunConfig struct {
	// RenderEvery is the number of ticks between OnRender calls. Zero or
	// one renders every tick.
	RenderEvery int
	// MaxTicks stops the loop after that many ticks. Zero means no limit.
	MaxTicks int
	// BreakOnCollision calls Pause after every tick that resolved a
	// collision, for stepping through contacts one at a time.
	BreakOnCollision bool

	// OnTick is called after every tick.
	OnTick func(result TickResult)
	// OnRender receives a fully resolved snapshot every RenderEvery ticks.
	OnRender func(scene Scene, result TickResult)
	// Pace is called after each OnRender and may block to pace the loop
	// against wall-clock time. A context error ends the run normally.
	Pace func(ctx context.Context) error
	// Pause is called when BreakOnCollision is set and the tick collided.
	// It may block until the user continues.
	Pause func(ctx context.Context, result TickResult) error
}

// RunStats summarizes a finished Run.
type RunStats struct {
	Ticks      int
	Collisions int
}

// Run steps e until ctx is done, MaxTicks is reached, or a hook fails.
//
// The context is only checked between ticks; a tick always completes. A
// cancelled context is a normal stop and returns a nil error. Errors from
// Pace or Pause other than context errors are returned wrapped.
func Run(ctx context.Context, e *Engine, rc RunConfig) (RunStats, error) {
	every := rc.RenderEvery
	if every < 1 {
		every = 1
	}

	var stats RunStats
	for sinceRender := 0; ; {
		if ctx.Err() != nil {
			return stats, nil
		}
		if rc.MaxTicks > 0 && stats.Ticks >= rc.MaxTicks {
			return stats, nil
		}

		result := e.Step()
		stats.Ticks++
		stats.Collisions += len(result.Collisions)

		if rc.OnTick != nil {
			rc.OnTick(result)
		}

		sinceRender++
		if sinceRender >= every {
			sinceRender = 0
			if rc.OnRender != nil {
				rc.OnRender(e.Snapshot(), result)
			}
			if rc.Pace != nil {
				if err := rc.Pace(ctx); err != nil {
					return stats, hookError("pace", err)
				}
			}
		}

		if rc.BreakOnCollision && result.Collided() && rc.Pause != nil {
			if err := rc.Pause(ctx, result); err != nil {
				return stats, hookError("pause", err)
			}
		}
	}
}

// hookError maps context errors to a normal stop.
func hookError(hook string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return fmt.Errorf("sticks: %s: %w", hook, err)
}
