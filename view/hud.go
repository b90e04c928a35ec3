package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/sticks"
)

// hudText formats the status overlay: simulated time, tick, energy, the
// last collision and the pause state.
func hudText(e *sticks.Engine, lastHit *sticks.TickResult, paused bool, fps, tps float64) string {
	snap := e.Snapshot()
	s := fmt.Sprintf("t=%.3fs tick=%d E=%.6f\nFPS: %.1f TPS: %.1f",
		e.Time(), e.Tick(), sticks.SceneEnergy(snap.Sticks), fps, tps)
	if lastHit != nil && len(lastHit.Collisions) > 0 {
		c := lastHit.Collisions[0]
		s += fmt.Sprintf("\nlast hit: stick %d wall %d (%s) at tick %d",
			c.Stick, c.Wall, c.Endpoint, lastHit.Tick)
	}
	if paused {
		s += "\nPAUSED  space: resume  .: step"
	}
	return s
}

// drawHUD prints the overlay in the top-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	var hit *sticks.TickResult
	if g.lastHit.Collided() {
		hit = &g.lastHit
	}
	ebitenutil.DebugPrint(screen, hudText(g.engine, hit, g.paused, ebiten.ActualFPS(), ebiten.ActualTPS()))
}
