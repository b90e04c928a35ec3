// Package tui runs a sticks engine in a terminal using tcell, with an
// optional collision click through beep.
//
// Keys: q or Escape quits, space pauses and resumes, "." renders one more
// frame while paused.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sticks"
)

// Options configures an App. Zero fields take defaults.
type Options struct {
	Viewport Viewport
	Styles   *Styles
	// RenderEvery is the number of ticks between frames. Default 67.
	RenderEvery int
	// FrameRate is the number of frames drawn per second. Default 15.
	FrameRate int
	// MaxTicks stops the run after that many ticks. Zero means no limit.
	MaxTicks int
	// PauseOnCollision pauses after each tick that resolved a collision.
	PauseOnCollision bool
	// Clicker, if set, clicks on every collision.
	Clicker *Clicker
}

type keyAction int

const (
	keyNone keyAction = iota
	keyQuit
	keyPause
	keyStep
)

// App draws the engine to a terminal screen.
type App struct {
	engine   *sticks.Engine
	screen   tcell.Screen
	renderer *Renderer
	opts     Options

	events chan tcell.Event
	paused bool
	hot    []bool
	last   sticks.TickResult
}

// NewApp creates an App. The screen must already be initialized; the caller
// owns it and calls Fini.
func NewApp(screen tcell.Screen, engine *sticks.Engine, opts Options) *App {
	if opts.RenderEvery <= 0 {
		opts.RenderEvery = 67
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 15
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	return &App{
		engine:   engine,
		screen:   screen,
		renderer: NewRenderer(screen, opts.Viewport, styles),
		opts:     opts,
		events:   make(chan tcell.Event, 100),
		hot:      make([]bool, len(engine.Snapshot().Sticks)),
	}
}

// Run steps and draws until ctx is done, the user quits or MaxTicks is
// reached.
func (a *App) Run(ctx context.Context) (sticks.RunStats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.pollEvents(ctx)

	ticker := time.NewTicker(time.Second / time.Duration(a.opts.FrameRate))
	defer ticker.Stop()

	a.draw(a.engine.Snapshot())
	return sticks.Run(ctx, a.engine, sticks.RunConfig{
		RenderEvery:      a.opts.RenderEvery,
		MaxTicks:         a.opts.MaxTicks,
		BreakOnCollision: a.opts.PauseOnCollision,
		OnTick:           a.onTick,
		OnRender: func(scene sticks.Scene, r sticks.TickResult) {
			a.last = r
			a.draw(scene)
			clear(a.hot)
		},
		Pace: func(ctx context.Context) error {
			return a.pace(ctx, cancel, ticker.C)
		},
		Pause: func(ctx context.Context, r sticks.TickResult) error {
			a.last = r
			a.paused = true
			a.draw(a.engine.Snapshot())
			return a.waitWhilePaused(ctx, cancel)
		},
	})
}

func (a *App) onTick(r sticks.TickResult) {
	for _, c := range r.Collisions {
		if c.Stick < len(a.hot) {
			a.hot[c.Stick] = true
		}
		if a.opts.Clicker != nil {
			a.opts.Clicker.Click()
		}
	}
}

// pace waits for the next frame tick, handling keys that arrive meanwhile.
func (a *App) pace(ctx context.Context, cancel context.CancelFunc, tick <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-a.events:
			if a.apply(a.handleEvent(ev), cancel) {
				return a.waitWhilePaused(ctx, cancel)
			}
		case <-tick:
			return a.waitWhilePaused(ctx, cancel)
		}
	}
}

// waitWhilePaused blocks until the user resumes, steps or quits.
func (a *App) waitWhilePaused(ctx context.Context, cancel context.CancelFunc) error {
	for a.paused {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-a.events:
			act := a.handleEvent(ev)
			a.apply(act, cancel)
			if act == keyStep {
				return nil
			}
			if act == keyPause {
				a.draw(a.engine.Snapshot())
			}
		}
	}
	return ctx.Err()
}

// apply performs act and reports whether the loop should stop pacing early.
func (a *App) apply(act keyAction, cancel context.CancelFunc) bool {
	switch act {
	case keyQuit:
		cancel()
		return true
	case keyPause:
		a.paused = !a.paused
		return a.paused
	}
	return false
}

func (a *App) handleEvent(ev tcell.Event) keyAction {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return keyQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return keyQuit
			case ' ':
				return keyPause
			case '.':
				return keyStep
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return keyNone
}

func (a *App) pollEvents(ctx context.Context) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) draw(scene sticks.Scene) {
	status := fmt.Sprintf(" t=%.3f tick=%d E=%.6f", a.engine.Time(), a.engine.Tick(), sticks.SceneEnergy(scene.Sticks))
	if c, ok := firstCollision(a.last); ok {
		status += fmt.Sprintf("  hit: stick %d wall %d (%s)", c.Stick, c.Wall, c.Endpoint)
	}
	if a.paused {
		status += "  PAUSED"
	}
	a.renderer.Draw(Frame{Scene: scene, Result: a.last, Hot: a.hot, Status: status})
}

func firstCollision(r sticks.TickResult) (sticks.Collision, bool) {
	if !r.Collided() {
		return sticks.Collision{}, false
	}
	return r.Collisions[0], true
}
