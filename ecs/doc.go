// Package ecs mirrors a sticks engine into a [Donburi] world.
//
// [NewMirror] creates one entity per stick and per wall. Set the mirror as the
// engine's observer and every tick copies the resolved stick state into
// [StickComponent] and publishes one [CollisionEventType] event per
// resolved contact. Subscribe to it in your ECS systems and drain the queue
// with events.ProcessAllEvents.
//
// Usage:
//
//	world := donburi.NewWorld()
//	mirror := ecs.NewMirror(world, engine.Snapshot())
//	engine.SetObserver(mirror)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
