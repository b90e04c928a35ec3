package sticks

import (
	"fmt"
	"io"
	"os"
)

// Observer receives every completed tick. When set on an Engine it is called
// after the new state has been stored, so the scene it sees is always fully
// integrated and resolved.
type Observer interface {
	ObserveTick(scene Scene, result TickResult)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(scene Scene, result TickResult)

// ObserveTick calls f(scene, result).
func (f ObserverFunc) ObserveTick(scene Scene, result TickResult) { f(scene, result) }

// Collision records one resolved stick-wall contact.
type Collision struct {
	Stick    int      `json:"stick"`
	Wall     int      `json:"wall"`
	Endpoint Endpoint `json:"endpoint"`
}

// TickResult is the outcome of one Engine.Step.
type TickResult struct {
	// Tick is the number of ticks completed, starting at 1 for the first step.
	Tick int
	// Time is the simulated time after the tick, Tick*Dt.
	Time float64
	// Collisions lists resolved contacts in stick order, at most one per stick.
	Collisions []Collision
}

// Collided reports whether any stick was resolved this tick.
func (r TickResult) Collided() bool {
	return len(r.Collisions) > 0
}

// CollisionFor returns the contact resolved for the given stick, if any.
func (r TickResult) CollisionFor(stick int) (Collision, bool) {
	for _, c := range r.Collisions {
		if c.Stick == stick {
			return c, true
		}
	}
	return Collision{}, false
}

// StepScene advances every stick by cfg.Dt, then scans each advanced stick
// against the walls and resolves the first contact found. It is a pure
// function: sticks and walls are not modified and the returned slice is new.
func StepScene(sticks []Stick, walls []Wall, cfg Config) ([]Stick, []Collision) {
	next := AdvanceAll(make([]Stick, 0, len(sticks)), sticks, cfg.Dt)
	var collisions []Collision
	for i := range next {
		c, ok := Scan(next[i], walls, cfg)
		if !ok {
			continue
		}
		next[i] = Resolve(next[i], walls[c.Wall], c.Endpoint, cfg)
		collisions = append(collisions, Collision{Stick: i, Wall: c.Wall, Endpoint: c.Endpoint})
	}
	return next, collisions
}

// Engine owns the canonical scene and advances it one fixed tick at a time.
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg      Config
	store    *Store
	tick     int
	observer Observer

	debug    bool
	debugOut io.Writer
}

// NewEngine validates cfg and scene and returns an engine holding a copy of
// the scene at tick 0.
func NewEngine(cfg Config, scene Scene) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := scene.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		store:    NewStore(scene),
		debugOut: os.Stderr,
	}, nil
}

// MustEngine is NewEngine that panics on error, for fixed scenes in examples
// and tests.
func MustEngine(cfg Config, scene Scene) *Engine {
	e, err := NewEngine(cfg, scene)
	if err != nil {
		panic(fmt.Sprintf("sticks: %v", err))
	}
	return e
}

// Step advances simulated time by exactly one Dt: integrate, detect, resolve,
// store. It always succeeds.
func (e *Engine) Step() TickResult {
	prev := e.store.sticks
	next, collisions := StepScene(prev, e.store.walls, e.cfg)
	e.store.replaceOwned(next)
	e.tick++

	result := TickResult{
		Tick:       e.tick,
		Time:       float64(e.tick) * e.cfg.Dt,
		Collisions: collisions,
	}
	if e.debug {
		e.debugTick(prev, next, result)
	}
	if e.observer != nil {
		e.observer.ObserveTick(e.store.Snapshot(), result)
	}
	return result
}

// Snapshot returns a copy of the current scene.
func (e *Engine) Snapshot() Scene {
	return e.store.Snapshot()
}

// Config returns the engine's constants.
func (e *Engine) Config() Config {
	return e.cfg
}

// Tick returns the number of completed steps.
func (e *Engine) Tick() int {
	return e.tick
}

// Time returns the simulated time, Tick*Dt.
func (e *Engine) Time() float64 {
	return float64(e.tick) * e.cfg.Dt
}

// SetObserver sets the optional per-tick observer. Pass nil to remove it.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// SetDebugMode enables or disables per-tick diagnostics. When enabled, each
// stick's energy is printed every tick and a warning is printed when a
// stick's energy rises. Diagnostics never change the simulation.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// SetDebugOutput redirects diagnostics, which go to stderr by default.
func (e *Engine) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	e.debugOut = w
}
