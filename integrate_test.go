package sticks

import (
	"math"
	"testing"
)

// angleDiff is the signed difference a-b folded into (-pi, pi].
func angleDiff(a, b float64) float64 {
	d := floorMod(a-b+math.Pi, twoPi) - math.Pi
	return d
}

func TestAdvance(t *testing.T) {
	s := Stick{X: 12, Y: 9, Phi: math.Pi / 3, VX: 0.2, VY: -4, W: 1.2, R: 1, M: 3}
	got := Advance(s, 0.5)
	if !approx(got.X, 12.1, 1e-12) || !approx(got.Y, 7, 1e-12) {
		t.Errorf("position = (%v, %v), want (12.1, 7)", got.X, got.Y)
	}
	if !approx(got.Phi, math.Pi/3+0.6, 1e-12) {
		t.Errorf("Phi = %v, want %v", got.Phi, math.Pi/3+0.6)
	}
	if got.VX != s.VX || got.VY != s.VY || got.W != s.W || got.R != s.R || got.M != s.M {
		t.Errorf("Advance changed velocities or shape: %+v", got)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	src := []Stick{{X: 1, VX: 1, R: 1}, {Y: 2, VY: -1, R: 1}}
	orig := append([]Stick(nil), src...)
	_ = AdvanceAll(nil, src, 0.1)
	for i := range src {
		if src[i] != orig[i] {
			t.Errorf("stick %d mutated: %+v", i, src[i])
		}
	}
}

func TestAdvanceAllInPlace(t *testing.T) {
	sticks := []Stick{{X: 1, VX: 1, R: 1}, {Y: 2, VY: -1, W: 2, R: 1}}
	want := []Stick{Advance(sticks[0], 0.1), Advance(sticks[1], 0.1)}
	got := AdvanceAll(sticks[:0], sticks, 0.1)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stick %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAdvanceFreeFlightLinearity(t *testing.T) {
	tests := []struct {
		name string
		s    Stick
		dt   float64
		n    int
	}{
		{"slow spin", Stick{X: 12, Y: 9, Phi: 1, VX: 0.2, VY: -4, W: 0.3, R: 1}, 0.001, 500},
		{"fast spin", Stick{X: -3, Y: 4, Phi: 5, VX: -1.5, VY: 2, W: 40, R: 2}, 0.001, 2000},
		{"negative spin", Stick{X: 0, Y: 0, Phi: 0.1, VX: 3, VY: 3, W: -7, R: 0.5}, 0.01, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stepped := tt.s
			for i := 0; i < tt.n; i++ {
				stepped = Advance(stepped, tt.dt)
			}
			once := Advance(tt.s, tt.dt*float64(tt.n))

			if !approx(stepped.X, once.X, 1e-9) || !approx(stepped.Y, once.Y, 1e-9) {
				t.Errorf("position stepped (%v, %v) != once (%v, %v)", stepped.X, stepped.Y, once.X, once.Y)
			}
			if d := angleDiff(stepped.Phi, once.Phi); math.Abs(d) > 1e-9 {
				t.Errorf("phi stepped %v != once %v (diff %v)", stepped.Phi, once.Phi, d)
			}
			if stepped.VX != tt.s.VX || stepped.VY != tt.s.VY || stepped.W != tt.s.W {
				t.Errorf("velocities changed: %+v", stepped)
			}
		})
	}
}

func TestAdvanceAngleWrap(t *testing.T) {
	for _, w := range []float64{1000, -1000, 2 * math.Pi / 0.001, 1e6} {
		s := Stick{Phi: 0, W: w, R: 1}
		for i := 0; i < 20000; i++ {
			s = Advance(s, 0.001)
			if s.Phi < 0 || s.Phi >= twoPi || math.IsNaN(s.Phi) {
				t.Fatalf("w=%v: phi = %v after %d steps, outside [0, 2pi)", w, s.Phi, i+1)
			}
		}
	}
}

func TestAdvanceWrapsLargeInitialAngle(t *testing.T) {
	s := Advance(Stick{Phi: 100 * math.Pi, R: 1}, 0.001)
	if s.Phi < 0 || s.Phi >= twoPi {
		t.Errorf("phi = %v, outside [0, 2pi)", s.Phi)
	}
	s = Advance(Stick{Phi: -3 * math.Pi / 2, R: 1}, 0.001)
	if !approx(s.Phi, math.Pi/2, 1e-12) {
		t.Errorf("phi = %v, want pi/2", s.Phi)
	}
}
