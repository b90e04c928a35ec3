// Package scenes provides ready-made stick scenes and loads scenes from JSON.
package scenes

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/phanxgames/sticks"
)

// Classic is a single upright stick dropping onto a floor below a ceiling
// tilted down toward +X.
func Classic() sticks.Scene {
	return sticks.Scene{
		Sticks: []sticks.Stick{
			{X: 12, Y: 9, Phi: math.Pi / 2, VX: 0.2, VY: -4, W: 0, R: 1, M: 3},
		},
		Walls: funnelWalls(),
	}
}

// Pair is two spinning sticks, mirror images of each other, in the Classic
// walls.
func Pair() sticks.Scene {
	return sticks.Scene{
		Sticks: []sticks.Stick{
			{X: 12, Y: 9, Phi: math.Pi / 3, VX: 0.2, VY: -4, W: 1.2, R: 1, M: 3},
			{X: 16, Y: 10, Phi: math.Pi + math.Pi/3, VX: 0.2, VY: -4, W: -1.2, R: 1, M: 3},
		},
		Walls: funnelWalls(),
	}
}

// Box is a stick rattling inside four walls. The side walls are vertical, so
// the point-slope line test never sees them; use it with
// sticks.LineTestNormal.
//
// A collision always shifts the stick along the wall normal
// (-sin Phi, cos Phi), so each wall's angle is chosen to make that normal
// point into the box.
func Box() sticks.Scene {
	return sticks.Scene{
		Sticks: []sticks.Stick{
			{X: 50, Y: 50, Phi: 0.3, VX: 6, VY: 2.5, W: 2, R: 4, M: 1},
		},
		Walls: []sticks.Wall{
			{X: 50, Y: 10, Phi: 0, R: 40},               // floor, normal +Y
			{X: 50, Y: 90, Phi: math.Pi, R: 40},         // ceiling, normal -Y
			{X: 10, Y: 50, Phi: 3 * math.Pi / 2, R: 40}, // left, normal +X
			{X: 90, Y: 50, Phi: math.Pi / 2, R: 40},     // right, normal -X
		},
	}
}

func funnelWalls() []sticks.Wall {
	return []sticks.Wall{
		{X: 3, Y: 7, Phi: 0, R: 50},
		{X: 3, Y: 14, Phi: math.Pi - math.Pi/14, R: 50},
	}
}

var builtin = map[string]func() sticks.Scene{
	"classic": Classic,
	"pair":    Pair,
	"box":     Box,
}

// Names returns the built-in scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named returns a fresh copy of the built-in scene called name.
func Named(name string) (sticks.Scene, bool) {
	fn, ok := builtin[strings.ToLower(name)]
	if !ok {
		return sticks.Scene{}, false
	}
	return fn(), true
}

// Load parses a scene from JSON:
//
//	{"sticks": [{"x": 12, "y": 9, "phi": 1.57, "vx": 0.2, "vy": -4, "w": 0, "r": 1, "m": 3}],
//	 "walls":  [{"x": 3, "y": 7, "phi": 0, "r": 50}]}
func Load(data []byte) (sticks.Scene, error) {
	var scene sticks.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return sticks.Scene{}, fmt.Errorf("parse scene: %w", err)
	}
	if len(scene.Sticks) == 0 {
		return sticks.Scene{}, fmt.Errorf("parse scene: no sticks")
	}
	return scene, nil
}

// Resolve returns the built-in scene called ref, or loads ref as a JSON file
// when no built-in has that name.
func Resolve(ref string) (sticks.Scene, error) {
	if scene, ok := Named(ref); ok {
		return scene, nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return sticks.Scene{}, fmt.Errorf("scene %q is not built in (%s) and cannot be read: %w",
			ref, strings.Join(Names(), ", "), err)
	}
	return Load(data)
}
