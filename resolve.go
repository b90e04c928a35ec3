package sticks

import "math"

// inertia is the moment of inertia of a uniform rod about its center, per
// unit mass and unit half-length squared.
const inertia = 1.0 / 3.0

// Resolve applies the collision impulse for s touching the line of w and
// returns the patched stick.
//
// The impulse acts along the wall normal n = (-sin w.Phi, cos w.Phi). Its
// size is chosen so that ContactVelocity becomes (1 - 2*Dissipation) times its
// previous value, which conserves Energy at Dissipation 1 and removes the
// normal contact velocity at Dissipation 0.5. The center is then shifted by
// sqrt(10*Close) along n whatever the impulse sign, to break contact.
//
// The response does not depend on which endpoint touched; e is accepted so
// callers hand over the full contact. Resolve never re-checks for a contact
// introduced by the shift.
func Resolve(s Stick, w Wall, e Endpoint, cfg Config) Stick {
	_ = e
	cosRel := math.Cos(relativeAngle(s, w))
	sinW, cosW := math.Sincos(w.Phi)

	vn := s.VY*cosW - s.VX*sinW
	dv := cfg.Dissipation * (s.W*s.R*cosRel - vn) / (0.5 + cosRel*cosRel/inertia*0.5)

	out := s
	shift := cfg.nudge()
	out.X -= shift * sinW
	out.Y += shift * cosW
	out.VX -= dv * sinW
	out.VY += dv * cosW
	out.W -= dv * cosRel / inertia / s.R
	return out
}

// ContactVelocity is the normal velocity of the contact point relative to
// the line of w: the center's velocity along the wall normal minus the spin
// contribution W*R*cos(phi_rel). Resolve scales it by (1 - 2*Dissipation).
func ContactVelocity(s Stick, w Wall) float64 {
	sinW, cosW := math.Sincos(w.Phi)
	vn := s.VY*cosW - s.VX*sinW
	return vn - s.W*s.R*math.Cos(relativeAngle(s, w))
}

// relativeAngle is (s.Phi - w.Phi) mod pi, in [0, pi).
func relativeAngle(s Stick, w Wall) float64 {
	return floorMod(s.Phi-w.Phi, math.Pi)
}
