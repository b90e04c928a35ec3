package sticks

import (
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x, y, phi, r   float64
		x1, y1, x2, y2 float64
	}{
		{"horizontal", 0, 0, 0, 1, -1, 0, 1, 0},
		{"vertical", 12, 9, math.Pi / 2, 1, 12, 8, 12, 10},
		{"reversed", 2, 3, math.Pi, 2, 4, 3, 0, 3},
		{"diagonal", 0, 0, math.Pi / 4, math.Sqrt2, -1, -1, 1, 1},
		{"zero length", 5, 5, 1.3, 0, 5, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x1, y1, x2, y2 := Endpoints(tt.x, tt.y, tt.phi, tt.r)
			got := [4]float64{x1, y1, x2, y2}
			want := [4]float64{tt.x1, tt.y1, tt.x2, tt.y2}
			for i := range got {
				if !approx(got[i], want[i], 1e-12) {
					t.Errorf("Endpoints(...) = %v, want %v", got, want)
					break
				}
			}
		})
	}
}

func TestSegmentOfMatchesEndpoints(t *testing.T) {
	x1, y1, x2, y2 := Endpoints(3, -4, 2.2, 1.5)
	seg := SegmentOf(3, -4, 2.2, 1.5)
	if seg.P1.X != x1 || seg.P1.Y != y1 || seg.P2.X != x2 || seg.P2.Y != y2 {
		t.Errorf("SegmentOf = %+v, want (%v,%v)-(%v,%v)", seg, x1, y1, x2, y2)
	}
	c := seg.Center()
	if !approx(c.X, 3, 1e-12) || !approx(c.Y, -4, 1e-12) {
		t.Errorf("Center() = %v, want (3,-4)", c)
	}
	if seg.Endpoint(EndpointFirst) != seg.P1 || seg.Endpoint(EndpointSecond) != seg.P2 {
		t.Error("Endpoint() does not return P1/P2")
	}
}

func TestStickAndWallSegment(t *testing.T) {
	s := Stick{X: 1, Y: 2, Phi: 0.7, R: 3, VX: 9, W: 4}
	if s.Segment() != SegmentOf(1, 2, 0.7, 3) {
		t.Error("Stick.Segment disagrees with SegmentOf")
	}
	w := Wall{X: 3, Y: 7, Phi: 0, R: 50}
	seg := w.Segment()
	if seg.P1.X != -47 || seg.P2.X != 53 || seg.P1.Y != 7 || seg.P2.Y != 7 {
		t.Errorf("Wall.Segment() = %+v", seg)
	}
}

func TestBatchSegmentsMatchSingle(t *testing.T) {
	sticks := []Stick{
		{X: 12, Y: 9, Phi: math.Pi / 2, R: 1},
		{X: 16, Y: 10, Phi: math.Pi + math.Pi/3, R: 1},
		{X: -3, Y: 0.5, Phi: 5.9, R: 0.25},
	}
	got := StickSegments(nil, sticks)
	if len(got) != len(sticks) {
		t.Fatalf("len = %d, want %d", len(got), len(sticks))
	}
	for i, s := range sticks {
		if got[i] != s.Segment() {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], s.Segment())
		}
	}

	walls := []Wall{{X: 3, Y: 7, R: 50}, {X: 3, Y: 14, Phi: math.Pi - math.Pi/14, R: 50}}
	wsegs := WallSegments(make([]Segment, 5), walls)
	if len(wsegs) != 2 {
		t.Fatalf("len = %d, want 2", len(wsegs))
	}
	for i, w := range walls {
		if wsegs[i] != w.Segment() {
			t.Errorf("wall segment %d = %+v, want %+v", i, wsegs[i], w.Segment())
		}
	}
}

func TestBatchSegmentsReusesBuffer(t *testing.T) {
	buf := make([]Segment, 0, 4)
	out := StickSegments(buf, []Stick{{R: 1}, {R: 2}})
	if &out[0] != &buf[:1][0] {
		t.Error("StickSegments should reuse dst when it has capacity")
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, m, want float64
	}{
		{1, twoPi, 1},
		{twoPi, twoPi, 0},
		{-1, twoPi, twoPi - 1},
		{-math.Pi / 2, math.Pi, math.Pi / 2},
		{-1e-18, twoPi, 0},
	}
	for _, tt := range tests {
		got := floorMod(tt.a, tt.m)
		if got < 0 || got >= tt.m {
			t.Errorf("floorMod(%v, %v) = %v, outside [0, m)", tt.a, tt.m, got)
		}
		if !approx(got, tt.want, 1e-12) {
			t.Errorf("floorMod(%v, %v) = %v, want %v", tt.a, tt.m, got, tt.want)
		}
	}
}
