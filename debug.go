package sticks

import (
	"fmt"
	"math"
)

// debugEnergyTolerance is the relative energy rise tolerated per tick before
// a warning is printed. It covers rounding in Resolve only.
const debugEnergyTolerance = 1e-9

// debugTick prints per-stick energy for the tick and warns when energy rose.
// Only called when the engine is in debug mode.
func (e *Engine) debugTick(prev, next []Stick, result TickResult) {
	for i := range next {
		before, after := Energy(prev[i]), Energy(next[i])
		_, _ = fmt.Fprintf(e.debugOut, "[sticks] tick %d | stick %d | energy %.9g\n",
			result.Tick, i, after)
		if energyRose(before, after) {
			_, _ = fmt.Fprintf(e.debugOut,
				"[sticks] warning: stick %d energy rose from %.9g to %.9g at tick %d\n",
				i, before, after, result.Tick)
		}
	}
	for _, c := range result.Collisions {
		_, _ = fmt.Fprintf(e.debugOut, "[sticks] tick %d | stick %d hit wall %d at %s endpoint\n",
			result.Tick, c.Stick, c.Wall, c.Endpoint)
	}
}

// energyRose reports whether after exceeds before beyond rounding slack.
func energyRose(before, after float64) bool {
	return after-before > debugEnergyTolerance*math.Max(1, math.Abs(before))
}
