package sticks

import (
	"math"
	"testing"
)

func TestScanNoCollisionAboveFloor(t *testing.T) {
	stick := Stick{X: 12, Y: 9, Phi: math.Pi / 2, VX: 0.2, VY: -4, W: 0, R: 1, M: 3}
	wall := Wall{X: 3, Y: 7, Phi: 0, R: 50}

	seg := stick.Segment()
	if !approx(seg.P1.Y, 8, 1e-12) || !approx(seg.P2.Y, 10, 1e-12) {
		t.Fatalf("endpoints y = %v, %v, want 8, 10", seg.P1.Y, seg.P2.Y)
	}
	if got := Detect(stick, wall, DefaultConfig()); got != EndpointNone {
		t.Errorf("Detect = %v, want none", got)
	}
	if c, ok := Scan(stick, []Wall{wall}, DefaultConfig()); ok {
		t.Errorf("Scan = %+v, want no contact", c)
	}
}

func TestDetectForcedEndpoint(t *testing.T) {
	floor := Wall{X: 3, Y: 7, Phi: 0, R: 50}
	tests := []struct {
		name  string
		stick Stick
		want  Endpoint
	}{
		// Phi = pi/2 puts the first endpoint below the center.
		{"first endpoint low", Stick{X: 12, Y: 8 + 5e-5, Phi: math.Pi / 2, VY: -4, R: 1}, EndpointFirst},
		// Phi = 3pi/2 puts the second endpoint below the center.
		{"second endpoint low", Stick{X: 12, Y: 8 - 5e-5, Phi: 3 * math.Pi / 2, VY: -4, R: 1}, EndpointSecond},
		{"just outside tolerance", Stick{X: 12, Y: 8 + 0.04, Phi: math.Pi / 2, R: 1}, EndpointNone},
		{"just inside tolerance", Stick{X: 12, Y: 8 + 0.03, Phi: math.Pi / 2, R: 1}, EndpointFirst},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.stick, floor, DefaultConfig()); got != tt.want {
				t.Errorf("Detect = %v, want %v", got, tt.want)
			}
			c, ok := Scan(tt.stick, []Wall{floor}, DefaultConfig())
			if ok != (tt.want != EndpointNone) {
				t.Fatalf("Scan ok = %v, want %v", ok, tt.want != EndpointNone)
			}
			if ok && (c.Wall != 0 || c.Endpoint != tt.want) {
				t.Errorf("Scan = %+v, want wall 0 %v", c, tt.want)
			}
		})
	}
}

func TestDetectFirstEndpointWinsTie(t *testing.T) {
	// Lying flat on the wall: both endpoints touch.
	stick := Stick{X: 10, Y: 7, Phi: 0, R: 1}
	floor := Wall{X: 3, Y: 7, Phi: 0, R: 50}
	if got := Detect(stick, floor, DefaultConfig()); got != EndpointFirst {
		t.Errorf("Detect = %v, want first", got)
	}
}

func TestScanWallOrderTieBreak(t *testing.T) {
	stick := Stick{X: 10, Y: 8, Phi: math.Pi / 2, R: 1} // low endpoint at (10, 7)
	floor := Wall{X: 3, Y: 7, Phi: 0, R: 50}
	slant := Wall{X: 10, Y: 7, Phi: math.Pi / 6, R: 50} // also passes through (10, 7)

	c, ok := Scan(stick, []Wall{floor, slant}, DefaultConfig())
	if !ok || c.Wall != 0 {
		t.Errorf("Scan(floor, slant) = %+v %v, want wall 0", c, ok)
	}
	c, ok = Scan(stick, []Wall{slant, floor}, DefaultConfig())
	if !ok || c.Wall != 0 || c.Endpoint != EndpointFirst {
		t.Errorf("Scan(slant, floor) = %+v %v, want wall 0 first", c, ok)
	}

	far := Wall{X: 0, Y: 50, Phi: 0, R: 10}
	c, ok = Scan(stick, []Wall{far, slant}, DefaultConfig())
	if !ok || c.Wall != 1 {
		t.Errorf("Scan(far, slant) = %+v %v, want wall 1", c, ok)
	}
}

func TestScanDeterministic(t *testing.T) {
	stick := Stick{X: 10, Y: 8.01, Phi: 1.5, VX: 0.3, VY: -2, W: 0.1, R: 1}
	walls := []Wall{
		{X: 3, Y: 14, Phi: math.Pi - math.Pi/14, R: 50},
		{X: 3, Y: 7, Phi: 0, R: 50},
	}
	first, firstOK := Scan(stick, walls, DefaultConfig())
	for i := 0; i < 100; i++ {
		c, ok := Scan(stick, walls, DefaultConfig())
		if c != first || ok != firstOK {
			t.Fatalf("call %d: Scan = %+v %v, first call %+v %v", i, c, ok, first, firstOK)
		}
	}
}

func TestScanEmptyWalls(t *testing.T) {
	if _, ok := Scan(Stick{R: 1}, nil, DefaultConfig()); ok {
		t.Error("Scan with no walls should find nothing")
	}
}

func TestDetectTiltedWallSlope(t *testing.T) {
	// Wall y = x through the origin.
	wall := Wall{X: 0, Y: 0, Phi: math.Pi / 4, R: 10}
	touching := Stick{X: 3, Y: 3 + 1, Phi: math.Pi / 2, R: 1} // low endpoint (3, 3)
	if got := Detect(touching, wall, DefaultConfig()); got != EndpointFirst {
		t.Errorf("Detect = %v, want first", got)
	}
	apart := Stick{X: 3, Y: 3 + 1.5, Phi: math.Pi / 2, R: 1}
	if got := Detect(apart, wall, DefaultConfig()); got != EndpointNone {
		t.Errorf("Detect = %v, want none", got)
	}
}

func TestDetectNormalLineTest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineTest = LineTestNormal

	vertical := Wall{X: 5, Y: 0, Phi: math.Pi / 2, R: 10}
	touching := Stick{X: 6, Y: 3, Phi: 0, R: 1} // first endpoint at (5, 3)
	if got := Detect(touching, vertical, cfg); got != EndpointFirst {
		t.Errorf("vertical wall: Detect = %v, want first", got)
	}
	apart := Stick{X: 6.5, Y: 3, Phi: 0, R: 1}
	if got := Detect(apart, vertical, cfg); got != EndpointNone {
		t.Errorf("vertical wall: Detect = %v, want none", got)
	}

	// On horizontal walls the two tests agree.
	floor := Wall{X: 3, Y: 7, Phi: 0, R: 50}
	for _, y := range []float64{8, 8.01, 8.03, 8.04, 7.97, 9} {
		s := Stick{X: 12, Y: y, Phi: math.Pi / 2, R: 1}
		slope := Detect(s, floor, DefaultConfig())
		normal := Detect(s, floor, cfg)
		if slope != normal {
			t.Errorf("y=%v: slope %v != normal %v", y, slope, normal)
		}
	}
}
