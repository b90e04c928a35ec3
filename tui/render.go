package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sticks"
)

// Styles are the cell styles used by a Renderer.
type Styles struct {
	Wall   tcell.Style
	Stick  tcell.Style
	Hit    tcell.Style
	Status tcell.Style
}

// DefaultStyles draws white walls, red sticks and yellow sticks on contact.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Wall:   base.Foreground(tcell.ColorWhite),
		Stick:  base.Foreground(tcell.ColorRed).Bold(true),
		Hit:    base.Foreground(tcell.ColorYellow).Bold(true),
		Status: base.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
	}
}

const (
	wallRune  = '#'
	stickRune = '*'
)

// Renderer draws scenes as character lines on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	view   Viewport
	styles Styles
	segs   []sticks.Segment
}

// NewRenderer creates a Renderer. An invalid viewport falls back to
// DefaultViewport.
func NewRenderer(screen tcell.Screen, view Viewport, styles Styles) *Renderer {
	if !view.valid() {
		view = DefaultViewport()
	}
	return &Renderer{screen: screen, view: view, styles: styles}
}

// Frame is what the Renderer needs to draw one frame.
type Frame struct {
	Scene  sticks.Scene
	Result sticks.TickResult
	// Hot marks sticks to draw with the Hit style.
	Hot    []bool
	Status string
}

// Draw clears the screen, plots walls then sticks, writes the status line
// and shows the result.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()
	plotH := h - 1
	if plotH < 1 {
		r.screen.Show()
		return
	}

	r.segs = sticks.WallSegments(r.segs, f.Scene.Walls)
	for _, seg := range r.segs {
		r.line(seg, w, plotH, wallRune, r.styles.Wall)
	}
	r.segs = sticks.StickSegments(r.segs, f.Scene.Sticks)
	for i, seg := range r.segs {
		style := r.styles.Stick
		if i < len(f.Hot) && f.Hot[i] {
			style = r.styles.Hit
		}
		r.line(seg, w, plotH, stickRune, style)
	}

	status := f.Status
	if status == "" {
		status = fmt.Sprintf(" t=%.3f tick=%d E=%.6f", f.Result.Time, f.Result.Tick, sticks.SceneEnergy(f.Scene.Sticks))
	}
	r.text(0, h-1, w, status, r.styles.Status)
	r.screen.Show()
}

func (r *Renderer) line(seg sticks.Segment, w, h int, ch rune, style tcell.Style) {
	x0, y0 := r.view.toCell(seg.P1.X, seg.P1.Y, w, h)
	x1, y1 := r.view.toCell(seg.P2.X, seg.P2.Y, w, h)
	plotLine(x0, y0, x1, y1, w, h, func(x, y int) {
		r.screen.SetContent(x, y, ch, nil, style)
	})
}

func (r *Renderer) text(x, y, w int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		if col >= w {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
	for ; col < w; col++ {
		r.screen.SetContent(col, y, ' ', nil, style)
	}
}

// plotLine walks the cells from (x0, y0) to (x1, y1) with Bresenham's
// algorithm and calls plot for each one inside the w by h area. Wall
// segments run far off screen, so the walk is bounded to the cells that can
// reach the area.
func plotLine(x0, y0, x1, y1, w, h int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			plot(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		if leaving(x0, sx, w) || leaving(y0, sy, h) {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// leaving reports whether stepping from v in direction s moves further out
// of [0, n) when v is already outside it.
func leaving(v, s, n int) bool {
	return (v < 0 && s < 0) || (v >= n && s > 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
