package tui

// Viewport is the world rectangle mapped onto the terminal. The bottom row of
// the screen is kept for the status line.
type Viewport struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// DefaultViewport shows world units 0..20 on both axes.
func DefaultViewport() Viewport {
	return Viewport{MaxX: 20, MaxY: 20}
}

func (v Viewport) valid() bool {
	return v.MaxX > v.MinX && v.MaxY > v.MinY
}

// toCell maps a world point to a cell in a w by h plot area. World Y points
// up, rows point down. The result may lie outside the area.
func (v Viewport) toCell(x, y float64, w, h int) (col, row int) {
	if w < 1 || h < 1 {
		return -1, -1
	}
	fx := (x - v.MinX) / (v.MaxX - v.MinX) * float64(w-1)
	fy := (y - v.MinY) / (v.MaxY - v.MinY) * float64(h-1)
	return round(fx), (h - 1) - round(fy)
}

func round(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}
