// Package sticks simulates rigid line segments ("sticks") moving in the plane
// and colliding with fixed infinite lines ("walls").
//
// A stick flies freely under no force: its center moves with constant
// velocity and its orientation with constant angular velocity. When one of
// its endpoints comes within tolerance of a wall line, an impulse along the
// wall normal updates the linear and angular velocity and the stick is
// nudged off the wall.
//
// # Quick start
//
//	scene := sticks.Scene{
//		Sticks: []sticks.Stick{{X: 12, Y: 9, Phi: math.Pi / 2, VX: 0.2, VY: -4, R: 1, M: 3}},
//		Walls:  []sticks.Wall{{X: 3, Y: 7, Phi: 0, R: 50}},
//	}
//	engine, err := sticks.NewEngine(sticks.DefaultConfig(), scene)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i := 0; i < 1000; i++ {
//		result := engine.Step()
//		if result.Collided() {
//			fmt.Println(result.Tick, result.Collisions)
//		}
//	}
//
// For a paced loop with render callbacks and cooperative cancellation, use
// [Run]:
//
//	sticks.Run(ctx, engine, sticks.RunConfig{
//		RenderEvery: 67,
//		OnRender:    func(s sticks.Scene, r sticks.TickResult) { draw(s) },
//	})
//
// # Ticks
//
// [Engine.Step] advances simulated time by exactly [Config.Dt]. Each tick
// integrates every stick ([Advance]), scans each advanced stick against the
// walls in order ([Scan]) and resolves at most one contact per stick
// ([Resolve]). The whole tick is computed by the pure function [StepScene]
// and stored at once, so [Engine.Snapshot] and [Observer] never see a
// partially updated scene.
//
// # State
//
// A [Store] holds the sticks and walls with read/replace semantics: readers
// get copies from [Store.Snapshot], [Store.Sticks] and [Store.Walls], and
// [Store.Replace] swaps in a whole stick list of the same length. The Engine
// keeps its scene in a Store. To drive a custom loop without an Engine,
// combine a Store with [StepScene]:
//
//	store := sticks.NewStore(scene)
//	next, collisions := sticks.StepScene(store.Sticks(), store.Walls(), cfg)
//	if err := store.Replace(next); err != nil {
//		log.Fatal(err)
//	}
//
// # Contact rules
//
// Walls are tried in slice order and the first endpoint before the second;
// the first match is the only contact resolved for that stick in that tick,
// even if others remain. The default point-slope line test uses
// tan(wall.Phi) and is undefined for vertical walls. [LineTestNormal]
// replaces it with a perpendicular-distance test when that matters.
//
// # Packages
//
// The core has no rendering dependencies. Presentation and integration live
// in sub-packages: view (Ebitengine window), tui (tcell terminal), stream
// (WebSocket snapshots), ecs (Donburi world mirror), config (.env settings)
// and scenes (built-in and JSON scenes).
package sticks
