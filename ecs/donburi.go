package ecs

import (
	"github.com/phanxgames/sticks"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StickData is the per-stick component: the stick's index in the scene, its
// latest state and its energy.
type StickData struct {
	Index  int
	Stick  sticks.Stick
	Energy float64
	// Hits counts the collisions resolved for this stick so far.
	Hits int
}

// WallData is the per-wall component. Walls never change after creation.
type WallData struct {
	Index int
	Wall  sticks.Wall
}

// StickComponent and WallComponent are the Donburi component types used by
// Mirror.
var (
	StickComponent = donburi.NewComponentType[StickData]()
	WallComponent  = donburi.NewComponentType[WallData]()
)

// CollisionEvent is published once per resolved contact.
type CollisionEvent struct {
	Tick      int
	Time      float64
	Collision sticks.Collision
	StickID   donburi.Entity
	WallID    donburi.Entity
}

// CollisionEventType is the Donburi event type for stick-wall collisions.
var CollisionEventType = events.NewEventType[CollisionEvent]()

// Mirror keeps a Donburi world in step with an engine. It implements
// sticks.Observer.
type Mirror struct {
	world  donburi.World
	sticks []donburi.Entity
	walls  []donburi.Entity
}

// NewMirror creates entities for every stick and wall in scene.
func NewMirror(world donburi.World, scene sticks.Scene) *Mirror {
	m := &Mirror{
		world:  world,
		sticks: make([]donburi.Entity, len(scene.Sticks)),
		walls:  make([]donburi.Entity, len(scene.Walls)),
	}
	for i, s := range scene.Sticks {
		e := world.Create(StickComponent)
		*StickComponent.Get(world.Entry(e)) = StickData{Index: i, Stick: s, Energy: sticks.Energy(s)}
		m.sticks[i] = e
	}
	for i, w := range scene.Walls {
		e := world.Create(WallComponent)
		*WallComponent.Get(world.Entry(e)) = WallData{Index: i, Wall: w}
		m.walls[i] = e
	}
	return m
}

// ObserveTick copies the tick's sticks into their entities and queues a
// CollisionEvent per collision. Sticks beyond the mirrored count are
// ignored.
func (m *Mirror) ObserveTick(scene sticks.Scene, result sticks.TickResult) {
	for i, s := range scene.Sticks {
		if i >= len(m.sticks) || !m.world.Valid(m.sticks[i]) {
			continue
		}
		d := StickComponent.Get(m.world.Entry(m.sticks[i]))
		d.Stick = s
		d.Energy = sticks.Energy(s)
	}
	for _, c := range result.Collisions {
		ev := CollisionEvent{Tick: result.Tick, Time: result.Time, Collision: c}
		if id, ok := m.Stick(c.Stick); ok {
			ev.StickID = id
			StickComponent.Get(m.world.Entry(id)).Hits++
		}
		if id, ok := m.Wall(c.Wall); ok {
			ev.WallID = id
		}
		CollisionEventType.Publish(m.world, ev)
	}
}

// Stick returns the entity mirroring stick i.
func (m *Mirror) Stick(i int) (donburi.Entity, bool) {
	if i < 0 || i >= len(m.sticks) || !m.world.Valid(m.sticks[i]) {
		return 0, false
	}
	return m.sticks[i], true
}

// Wall returns the entity mirroring wall i.
func (m *Mirror) Wall(i int) (donburi.Entity, bool) {
	if i < 0 || i >= len(m.walls) || !m.world.Valid(m.walls[i]) {
		return 0, false
	}
	return m.walls[i], true
}

// World returns the mirrored world.
func (m *Mirror) World() donburi.World {
	return m.world
}

var _ sticks.Observer = (*Mirror)(nil)
