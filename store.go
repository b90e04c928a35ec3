package sticks

import "fmt"

// Scene is an ordered collection of sticks and walls. Stick order is the
// reporting order of collisions; wall order is the collision tie-break.
type Scene struct {
	Sticks []Stick `json:"sticks"`
	Walls  []Wall  `json:"walls"`
}

// Clone returns a deep copy of the scene.
func (s Scene) Clone() Scene {
	return Scene{
		Sticks: append([]Stick(nil), s.Sticks...),
		Walls:  append([]Wall(nil), s.Walls...),
	}
}

// validate checks the scene invariants: every stick has a positive
// half-length and no wall has a negative one.
func (s Scene) validate() error {
	for i, st := range s.Sticks {
		if !(st.R > 0) {
			return fmt.Errorf("%w: stick %d half-length must be positive, got %v", ErrInvalidScene, i, st.R)
		}
	}
	for i, w := range s.Walls {
		if w.R < 0 {
			return fmt.Errorf("%w: wall %d half-length must not be negative, got %v", ErrInvalidScene, i, w.R)
		}
	}
	return nil
}

// Store holds the current sticks and the fixed walls. It hands out copies
// only and accepts whole replacements of the stick list, so no reader can
// observe a partially updated state.
type Store struct {
	sticks []Stick
	walls  []Wall
}

// NewStore creates a store owning a copy of scene.
func NewStore(scene Scene) *Store {
	c := scene.Clone()
	return &Store{sticks: c.Sticks, walls: c.Walls}
}

// Snapshot returns a copy of the current scene.
func (s *Store) Snapshot() Scene {
	return Scene{Sticks: s.Sticks(), Walls: s.Walls()}
}

// Sticks returns a copy of the current sticks.
func (s *Store) Sticks() []Stick {
	return append([]Stick(nil), s.sticks...)
}

// Walls returns a copy of the walls.
func (s *Store) Walls() []Wall {
	return append([]Wall(nil), s.walls...)
}

// Len returns the number of sticks and walls.
func (s *Store) Len() (sticks, walls int) {
	return len(s.sticks), len(s.walls)
}

// Replace swaps in a new stick list. The store keeps its own copy. The
// number of sticks is fixed for the lifetime of a store.
func (s *Store) Replace(sticks []Stick) error {
	if len(sticks) != len(s.sticks) {
		return fmt.Errorf("%w: have %d, got %d", ErrStickCount, len(s.sticks), len(sticks))
	}
	s.sticks = append(s.sticks[:0:0], sticks...)
	return nil
}

// replaceOwned installs sticks without copying. The caller must not retain
// the slice.
func (s *Store) replaceOwned(sticks []Stick) {
	s.sticks = sticks
}
