package view

import "github.com/phanxgames/sticks"

// Camera maps world units to screen pixels. World Y points up and screen Y
// points down, so the camera flips the vertical axis.
type Camera struct {
	// X and Y are the world coordinates shown at the bottom-left corner.
	X, Y float64
	// PixelsPerUnit is the zoom factor.
	PixelsPerUnit float64
	// Width and Height are the viewport size in pixels.
	Width, Height int
}

// ToScreen converts a world point to screen pixels.
func (c Camera) ToScreen(x, y float64) (sx, sy float32) {
	return float32((x - c.X) * c.PixelsPerUnit),
		float32(float64(c.Height) - (y-c.Y)*c.PixelsPerUnit)
}

// ToWorld converts screen pixels back to world units.
func (c Camera) ToWorld(sx, sy float64) (x, y float64) {
	return c.X + sx/c.PixelsPerUnit, c.Y + (float64(c.Height)-sy)/c.PixelsPerUnit
}

// Visible returns the world-space rectangle the camera shows as
// (minX, minY, maxX, maxY).
func (c Camera) Visible() (minX, minY, maxX, maxY float64) {
	return c.X, c.Y,
		c.X + float64(c.Width)/c.PixelsPerUnit,
		c.Y + float64(c.Height)/c.PixelsPerUnit
}

// SegmentToScreen converts both endpoints of seg.
func (c Camera) SegmentToScreen(seg sticks.Segment) (x1, y1, x2, y2 float32) {
	x1, y1 = c.ToScreen(seg.P1.X, seg.P1.Y)
	x2, y2 = c.ToScreen(seg.P2.X, seg.P2.Y)
	return x1, y1, x2, y2
}
