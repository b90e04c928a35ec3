// Package view renders a sticks engine in an [Ebitengine] window.
//
// The Game steps the engine a fixed number of ticks per frame and draws
// walls and sticks as lines. Space pauses, "." or the right arrow steps a
// single tick while paused, S saves a PNG screenshot, and Escape or Q closes
// the window. Sticks flash briefly after a collision (via [gween]).
//
//	g := view.NewGame(engine, view.DefaultOptions())
//	if err := view.Run(g, "sticks"); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/sticks"
	"github.com/tanema/gween/ease"
)

// Options configures a Game. Zero fields take the DefaultOptions value.
type Options struct {
	Width, Height int
	// PixelsPerUnit scales world units to pixels.
	PixelsPerUnit float64
	// OriginX and OriginY are the world coordinates at the bottom-left.
	OriginX, OriginY float64
	// TicksPerFrame is the number of engine ticks per Update.
	TicksPerFrame int

	Background Color
	StickColor Color
	WallColor  Color
	FlashColor Color
	// StrokeWidth is the line width in pixels.
	StrokeWidth float32
	// FlashDuration is the collision highlight fade in seconds. Negative
	// disables the highlight.
	FlashDuration float32

	// PauseOnCollision pauses after every frame that resolved a collision.
	PauseOnCollision bool
	// StartPaused opens the window paused.
	StartPaused bool
	// ShowHUD draws time, energy and the last collision.
	ShowHUD bool
	// ScreenshotDir receives PNG captures. Default "screenshots".
	ScreenshotDir string
}

// DefaultOptions shows world units 0..20 in a 600x600 window, 67 ticks per
// frame, red sticks and black walls on white.
func DefaultOptions() Options {
	return Options{
		Width:         600,
		Height:        600,
		PixelsPerUnit: 30,
		TicksPerFrame: 67,
		Background:    ColorWhite,
		StickColor:    ColorRed,
		WallColor:     ColorBlack,
		FlashColor:    ColorFlash,
		StrokeWidth:   2,
		FlashDuration: 0.4,
		ShowHUD:       true,
		ScreenshotDir: "screenshots",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.PixelsPerUnit <= 0 {
		o.PixelsPerUnit = d.PixelsPerUnit
	}
	if o.TicksPerFrame <= 0 {
		o.TicksPerFrame = d.TicksPerFrame
	}
	if o.Background == (Color{}) {
		o.Background = d.Background
	}
	if o.StickColor == (Color{}) {
		o.StickColor = d.StickColor
	}
	if o.WallColor == (Color{}) {
		o.WallColor = d.WallColor
	}
	if o.FlashColor == (Color{}) {
		o.FlashColor = d.FlashColor
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = d.StrokeWidth
	}
	if o.FlashDuration == 0 {
		o.FlashDuration = d.FlashDuration
	}
	if o.ScreenshotDir == "" {
		o.ScreenshotDir = d.ScreenshotDir
	}
	return o
}

// Game implements ebiten.Game for a sticks engine.
type Game struct {
	engine  *sticks.Engine
	opts    Options
	cam     Camera
	flashes *Flashes

	paused   bool
	stepOnce bool
	quit     bool

	last    sticks.TickResult
	lastHit sticks.TickResult

	captures []string

	walls  []sticks.Segment
	sticks []sticks.Segment
}

// NewGame creates a Game driving engine.
func NewGame(engine *sticks.Engine, opts Options) *Game {
	opts = opts.withDefaults()
	snap := engine.Snapshot()
	return &Game{
		engine: engine,
		opts:   opts,
		cam: Camera{
			X:             opts.OriginX,
			Y:             opts.OriginY,
			PixelsPerUnit: opts.PixelsPerUnit,
			Width:         opts.Width,
			Height:        opts.Height,
		},
		flashes: NewFlashes(len(snap.Sticks), opts.FlashDuration, ease.OutQuad),
		paused:  opts.StartPaused,
		walls:   sticks.WallSegments(nil, snap.Walls),
	}
}

// Camera returns the game's camera.
func (g *Game) Camera() Camera {
	return g.cam
}

// Paused reports whether stepping is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes stepping.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// StepOnce requests a single tick on the next Update while paused.
func (g *Game) StepOnce() {
	g.stepOnce = true
}

// Update handles keys, advances the highlight fades and steps the engine.
func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	g.flashes.Update(float32(1.0 / float64(ebiten.TPS())))
	g.advance()
	return nil
}

// advance steps the engine for one frame: TicksPerFrame ticks when running,
// one tick when a single step was requested, none otherwise. A collision
// ends the frame early when PauseOnCollision is set.
func (g *Game) advance() int {
	n := g.opts.TicksPerFrame
	if g.paused {
		if !g.stepOnce {
			return 0
		}
		n = 1
	}
	g.stepOnce = false

	ticks := 0
	for ticks < n {
		r := g.engine.Step()
		ticks++
		g.last = r
		if !r.Collided() {
			continue
		}
		g.lastHit = r
		for _, c := range r.Collisions {
			g.flashes.Trigger(c.Stick)
		}
		if g.opts.PauseOnCollision {
			g.paused = true
			break
		}
	}
	return ticks
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.quit = true
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyPeriod), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		if g.paused {
			g.stepOnce = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.Screenshot("sticks")
	}
}

// Draw renders walls, then sticks, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.opts.Background.RGBA())

	wallColor := g.opts.WallColor.RGBA()
	for _, seg := range g.walls {
		x1, y1, x2, y2 := g.cam.SegmentToScreen(seg)
		vector.StrokeLine(screen, x1, y1, x2, y2, g.opts.StrokeWidth, wallColor, true)
	}

	g.sticks = sticks.StickSegments(g.sticks, g.engine.Snapshot().Sticks)
	for i, seg := range g.sticks {
		c := g.opts.StickColor.Lerp(g.opts.FlashColor, g.flashes.Level(i))
		x1, y1, x2, y2 := g.cam.SegmentToScreen(seg)
		vector.StrokeLine(screen, x1, y1, x2, y2, g.opts.StrokeWidth, c.RGBA(), true)
	}

	if g.opts.ShowHUD {
		g.drawHUD(screen)
	}
	g.flushCaptures(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Run opens a window and runs g until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}
