package sticks

import (
	"math"

	"github.com/golang/geo/r2"
)

// Contact names the wall and stick endpoint found by Scan.
type Contact struct {
	Wall     int      `json:"wall"`
	Endpoint Endpoint `json:"endpoint"`
}

// Detect reports which endpoint of s touches the line of w, if any.
//
// The first endpoint is tested before the second and wins when both are
// within tolerance; the second is not evaluated in that case. An endpoint
// touches when the squared offset returned by the configured LineTest is
// below cfg.Close.
//
// With LineTestSlope the offset is the vertical gap between the endpoint and
// the wall line y = (x - w.X)*tan(w.Phi) + w.Y. That form is singular for
// vertical walls (w.Phi = pi/2 mod pi) and is kept as-is; LineTestNormal is
// the stable alternative.
func Detect(s Stick, w Wall, cfg Config) Endpoint {
	seg := s.Segment()
	if touches(seg.P1, w, cfg) {
		return EndpointFirst
	}
	if touches(seg.P2, w, cfg) {
		return EndpointSecond
	}
	return EndpointNone
}

// Scan returns the first wall, in slice order, that s touches. The tie-break
// is fixed: walls are tried in order, and within a wall the first endpoint
// is tried before the second. No further walls are examined once one
// matches, so a stick collides with at most one wall per tick.
func Scan(s Stick, walls []Wall, cfg Config) (Contact, bool) {
	for i := range walls {
		if e := Detect(s, walls[i], cfg); e != EndpointNone {
			return Contact{Wall: i, Endpoint: e}, true
		}
	}
	return Contact{}, false
}

func touches(p r2.Point, w Wall, cfg Config) bool {
	d := lineOffset(p, w, cfg.LineTest)
	return d*d < cfg.Close
}

// lineOffset is the signed gap between p and the wall line under test t.
func lineOffset(p r2.Point, w Wall, t LineTest) float64 {
	if t == LineTestNormal {
		return p.Sub(r2.Point{X: w.X, Y: w.Y}).Dot(wallNormal(w))
	}
	yLine := (p.X-w.X)*math.Tan(w.Phi) + w.Y
	return yLine - p.Y
}
