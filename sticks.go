package sticks

import (
	"errors"
	"fmt"
	"math"
)

// Stick is a rigid line segment that translates and rotates freely.
// The center is (X, Y), the orientation is Phi radians counter-clockwise from
// the +X axis, and R is the half-length. Mass is carried for callers but does
// not enter the dynamics.
type Stick struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Phi float64 `json:"phi"`
	VX  float64 `json:"vx"`
	VY  float64 `json:"vy"`
	W   float64 `json:"w"` // angular velocity, radians per second
	R   float64 `json:"r"`
	M   float64 `json:"m"`
}

// Wall is a fixed obstacle. Collision treats it as the infinite line through
// (X, Y) at angle Phi; R is only used to compute drawn endpoints.
type Wall struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Phi float64 `json:"phi"`
	R   float64 `json:"r"`
}

// Endpoint identifies one extremity of a stick.
type Endpoint uint8

const (
	EndpointNone   Endpoint = iota // no endpoint is in contact
	EndpointFirst                  // center - R*(cos Phi, sin Phi)
	EndpointSecond                 // center + R*(cos Phi, sin Phi)
)

// String returns "none", "first" or "second".
func (e Endpoint) String() string {
	switch e {
	case EndpointNone:
		return "none"
	case EndpointFirst:
		return "first"
	case EndpointSecond:
		return "second"
	default:
		return fmt.Sprintf("Endpoint(%d)", uint8(e))
	}
}

// LineTest selects how an endpoint is compared against a wall line.
type LineTest uint8

const (
	// LineTestSlope compares the endpoint's y against the wall line's
	// point-slope value at the endpoint's x. It is undefined for vertical
	// walls (Phi = pi/2 mod pi), where tan diverges.
	LineTestSlope LineTest = iota
	// LineTestNormal compares the endpoint's perpendicular distance to the
	// wall line. It agrees with LineTestSlope on horizontal walls and stays
	// well defined on vertical ones. Selecting it changes which contacts
	// are found on tilted walls.
	LineTestNormal
)

// String returns "slope" or "normal".
func (t LineTest) String() string {
	switch t {
	case LineTestSlope:
		return "slope"
	case LineTestNormal:
		return "normal"
	default:
		return fmt.Sprintf("LineTest(%d)", uint8(t))
	}
}

// ParseLineTest maps "slope" or "normal" to a LineTest.
func ParseLineTest(s string) (LineTest, error) {
	switch s {
	case "slope", "":
		return LineTestSlope, nil
	case "normal":
		return LineTestNormal, nil
	}
	return 0, fmt.Errorf("%w: unknown line test %q", ErrInvalidConfig, s)
}

// Errors returned by engine construction and the state store.
var (
	ErrInvalidConfig = errors.New("sticks: invalid config")
	ErrInvalidScene  = errors.New("sticks: invalid scene")
	ErrStickCount    = errors.New("sticks: stick count changed")
)

// Config holds the simulation constants. It is copied into the Engine at
// construction and never changes afterwards.
type Config struct {
	// Dt is the fixed tick length in simulated seconds.
	Dt float64
	// Dissipation scales the collision impulse, in [0, 1]. The impulse
	// maps the contact-point normal velocity u to (1 - 2*Dissipation)*u,
	// so at 1 it is reflected with no energy lost, at 0.5 it is cancelled
	// and at 0 collisions have no effect on velocity.
	Dissipation float64
	// Close is the squared-distance tolerance below which an endpoint is
	// considered to touch a wall line. The separation nudge applied after a
	// collision is sqrt(10*Close).
	Close float64
	// LineTest selects the endpoint-vs-line comparison.
	LineTest LineTest
}

// Defaults used by DefaultConfig.
const (
	DefaultDt          = 0.001
	DefaultDissipation = 1.0
	DefaultClose       = 1e-3
)

// DefaultConfig returns the reference constants: dt 0.001, dissipation 1,
// tolerance 1e-3, point-slope line test.
func DefaultConfig() Config {
	return Config{
		Dt:          DefaultDt,
		Dissipation: DefaultDissipation,
		Close:       DefaultClose,
		LineTest:    LineTestSlope,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case !(c.Dt > 0) || math.IsInf(c.Dt, 0):
		return fmt.Errorf("%w: dt must be positive and finite, got %v", ErrInvalidConfig, c.Dt)
	case !(c.Dissipation >= 0 && c.Dissipation <= 1):
		return fmt.Errorf("%w: dissipation must be in [0, 1], got %v", ErrInvalidConfig, c.Dissipation)
	case !(c.Close > 0) || math.IsInf(c.Close, 0):
		return fmt.Errorf("%w: close must be positive and finite, got %v", ErrInvalidConfig, c.Close)
	case c.LineTest > LineTestNormal:
		return fmt.Errorf("%w: unknown line test %d", ErrInvalidConfig, c.LineTest)
	}
	return nil
}

// nudge is the fixed center shift applied along the wall normal after a
// collision.
func (c Config) nudge() float64 {
	return math.Sqrt(10 * c.Close)
}
