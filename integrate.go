package sticks

import "math"

const twoPi = 2 * math.Pi

// Advance moves a stick forward by dt using its current velocities. Phi is
// wrapped into [0, 2*pi). Velocities are unchanged since no force acts.
func Advance(s Stick, dt float64) Stick {
	s.X += s.VX * dt
	s.Y += s.VY * dt
	s.Phi = floorMod(s.Phi+s.W*dt, twoPi)
	return s
}

// AdvanceAll writes Advance(src[i], dt) for every stick into dst[:0] and
// returns it. Passing src[:0] as dst advances in place.
func AdvanceAll(dst, src []Stick, dt float64) []Stick {
	dst = dst[:0]
	for i := range src {
		dst = append(dst, Advance(src[i], dt))
	}
	return dst
}
