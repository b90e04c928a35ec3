package sticks

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a run script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`
}

// defaultCollisionWait bounds an until-collision step without a tick count.
const defaultCollisionWait = 1_000_000

// script is the top-level JSON structure for a run script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences steps and snapshot captures against an Engine, for
// reproducible traces and regression scenarios.
//
// Supported actions:
//
//	{"action": "step", "ticks": N}             advance N ticks (default 1)
//	{"action": "until-collision", "ticks": N}  advance until a tick collides, at most N ticks (default 1e6)
//	{"action": "record", "label": "name"}      capture the current scene under name
type Script struct {
	steps []scriptStep
}

// ScriptResult holds what a Script observed.
type ScriptResult struct {
	// Records maps record labels to the scene captured at that point.
	Records map[string]Scene
	// Collisions lists every collision resolved during the script, in order.
	Collisions []TickCollision
	// Ticks is the number of ticks the script advanced.
	Ticks int
}

// TickCollision is a Collision tagged with the tick it happened on.
type TickCollision struct {
	Tick int
	Collision
}

// LoadScript parses a JSON run script.
func LoadScript(jsonData []byte) (*Script, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse run script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse run script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "step", "until-collision":
			if st.Ticks < 0 {
				return nil, fmt.Errorf("parse run script: step %d: negative ticks %d", i, st.Ticks)
			}
		case "record":
			if st.Label == "" {
				return nil, fmt.Errorf("parse run script: step %d: record needs a label", i)
			}
		default:
			return nil, fmt.Errorf("parse run script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: sc.Steps}, nil
}

// Len returns the number of steps in the script.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run executes the script against e from its current tick.
func (s *Script) Run(e *Engine) ScriptResult {
	res := ScriptResult{Records: make(map[string]Scene)}
	advance := func() TickResult {
		r := e.Step()
		res.Ticks++
		for _, c := range r.Collisions {
			res.Collisions = append(res.Collisions, TickCollision{Tick: r.Tick, Collision: c})
		}
		return r
	}

	for _, st := range s.steps {
		switch st.Action {
		case "step":
			n := st.Ticks
			if n == 0 {
				n = 1
			}
			for i := 0; i < n; i++ {
				advance()
			}
		case "until-collision":
			n := st.Ticks
			if n == 0 {
				n = defaultCollisionWait
			}
			for i := 0; i < n; i++ {
				if advance().Collided() {
					break
				}
			}
		case "record":
			res.Records[st.Label] = e.Snapshot()
		}
	}
	return res
}
