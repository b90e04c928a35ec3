package sticks

// Energy is the kinetic energy functional vx^2 + vy^2 + (1/3)*w^2*R^2, per
// unit mass and without the factor 1/2. It is a diagnostic: a tick with
// Dissipation <= 1 must never raise it beyond rounding error.
func Energy(s Stick) float64 {
	return s.VX*s.VX + s.VY*s.VY + inertia*s.W*s.W*s.R*s.R
}

// SceneEnergy sums Energy over every stick.
func SceneEnergy(sticks []Stick) float64 {
	var e float64
	for i := range sticks {
		e += Energy(sticks[i])
	}
	return e
}
