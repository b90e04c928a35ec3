package sticks

import (
	"math"

	"github.com/golang/geo/r2"
)

// Segment is a finite line segment given by its two endpoints.
type Segment struct {
	P1, P2 r2.Point
}

// Endpoints returns the absolute endpoints of a segment centered at (x, y)
// with orientation phi and half-length r. The first endpoint lies at
// center - r*(cos phi, sin phi), the second at center + r*(cos phi, sin phi).
func Endpoints(x, y, phi, r float64) (x1, y1, x2, y2 float64) {
	dx, dy := r*math.Cos(phi), r*math.Sin(phi)
	return x - dx, y - dy, x + dx, y + dy
}

// SegmentOf is Endpoints packed into a Segment.
func SegmentOf(x, y, phi, r float64) Segment {
	x1, y1, x2, y2 := Endpoints(x, y, phi, r)
	return Segment{P1: r2.Point{X: x1, Y: y1}, P2: r2.Point{X: x2, Y: y2}}
}

// Segment returns the stick's endpoints.
func (s Stick) Segment() Segment {
	return SegmentOf(s.X, s.Y, s.Phi, s.R)
}

// Segment returns the wall's drawn endpoints.
func (w Wall) Segment() Segment {
	return SegmentOf(w.X, w.Y, w.Phi, w.R)
}

// Endpoint returns the requested endpoint. EndpointNone yields the center.
func (s Segment) Endpoint(e Endpoint) r2.Point {
	switch e {
	case EndpointFirst:
		return s.P1
	case EndpointSecond:
		return s.P2
	default:
		return s.P1.Add(s.P2).Mul(0.5)
	}
}

// Center returns the segment midpoint.
func (s Segment) Center() r2.Point {
	return s.P1.Add(s.P2).Mul(0.5)
}

// StickSegments appends the segment of every stick to dst[:0] and returns
// the result. dst is reused when it has enough capacity.
func StickSegments(dst []Segment, sticks []Stick) []Segment {
	dst = dst[:0]
	for i := range sticks {
		dst = append(dst, sticks[i].Segment())
	}
	return dst
}

// WallSegments is StickSegments for walls.
func WallSegments(dst []Segment, walls []Wall) []Segment {
	dst = dst[:0]
	for i := range walls {
		dst = append(dst, walls[i].Segment())
	}
	return dst
}

// wallNormal is the unit normal (-sin phi, cos phi) of a wall line.
func wallNormal(w Wall) r2.Point {
	return r2.Point{X: -math.Sin(w.Phi), Y: math.Cos(w.Phi)}
}

// floorMod returns a mod m in [0, m) for m > 0.
func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	// r+m can round up to m for tiny negative r.
	if r >= m {
		r = 0
	}
	return r
}
