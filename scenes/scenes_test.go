package scenes

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/sticks"
)

func TestClassic(t *testing.T) {
	s := Classic()
	if len(s.Sticks) != 1 || len(s.Walls) != 2 {
		t.Fatalf("Classic = %d sticks, %d walls", len(s.Sticks), len(s.Walls))
	}
	want := sticks.Stick{X: 12, Y: 9, Phi: math.Pi / 2, VX: 0.2, VY: -4, R: 1, M: 3}
	if s.Sticks[0] != want {
		t.Errorf("stick = %+v, want %+v", s.Sticks[0], want)
	}
	if s.Walls[1].Phi != math.Pi-math.Pi/14 {
		t.Errorf("ceiling phi = %v", s.Walls[1].Phi)
	}
}

func TestBuiltinScenesAreValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			scene, ok := Named(name)
			if !ok {
				t.Fatalf("Named(%q) not found", name)
			}
			if _, err := sticks.NewEngine(sticks.DefaultConfig(), scene); err != nil {
				t.Errorf("NewEngine: %v", err)
			}
		})
	}
}

func TestBoxWallNormalsPointInward(t *testing.T) {
	scene := Box()
	for i, w := range scene.Walls {
		nx, ny := -math.Sin(w.Phi), math.Cos(w.Phi)
		// The box center must lie on the positive side of every wall.
		side := (50-w.X)*nx + (50-w.Y)*ny
		if side <= 0 {
			t.Errorf("wall %d normal (%.3f, %.3f) points out of the box", i, nx, ny)
		}
	}
}

func TestBoxContainsStick(t *testing.T) {
	cfg := sticks.DefaultConfig()
	cfg.LineTest = sticks.LineTestNormal
	scene := Box()
	e := sticks.MustEngine(cfg, scene)
	e0 := sticks.SceneEnergy(scene.Sticks)

	hits := 0
	for i := 0; i < 100_000; i++ {
		r := e.Step()
		hits += len(r.Collisions)
		s := e.Snapshot().Sticks[0]
		if s.X < 10 || s.X > 90 || s.Y < 10 || s.Y > 90 {
			t.Fatalf("tick %d: center (%.3f, %.3f) left the box after %d hits", r.Tick, s.X, s.Y, hits)
		}
	}
	if hits < 4 {
		t.Errorf("hits = %d, want at least 4 in 100s", hits)
	}
	if got := sticks.SceneEnergy(e.Snapshot().Sticks); math.Abs(got-e0) > 1e-6*e0 {
		t.Errorf("energy = %v, want %v at dissipation 1", got, e0)
	}
}

func TestNamedReturnsFreshCopy(t *testing.T) {
	a, _ := Named("classic")
	a.Sticks[0].X = -1
	a.Walls[0].Y = -1
	b, _ := Named("CLASSIC")
	if b.Sticks[0].X != 12 || b.Walls[0].Y != 7 {
		t.Error("Named shares state between calls")
	}
	if _, ok := Named("nope"); ok {
		t.Error("Named(nope) should fail")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	want := []string{"box", "classic", "pair"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names() = %v, want %v", names, want)
		}
	}
}

func TestLoad(t *testing.T) {
	scene, err := Load([]byte(`{
		"sticks": [{"x": 12, "y": 9, "phi": 1.5, "vx": 0.2, "vy": -4, "w": 0.5, "r": 1, "m": 3}],
		"walls": [{"x": 3, "y": 7, "phi": 0, "r": 50}]
	}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := sticks.Stick{X: 12, Y: 9, Phi: 1.5, VX: 0.2, VY: -4, W: 0.5, R: 1, M: 3}
	if scene.Sticks[0] != want {
		t.Errorf("stick = %+v, want %+v", scene.Sticks[0], want)
	}
	if scene.Walls[0] != (sticks.Wall{X: 3, Y: 7, R: 50}) {
		t.Errorf("wall = %+v", scene.Walls[0])
	}
}

func TestLoad_Invalid(t *testing.T) {
	for _, data := range []string{`nope`, `{"walls": []}`, `{"sticks": []}`} {
		if _, err := Load([]byte(data)); err == nil {
			t.Errorf("Load(%s) should fail", data)
		}
	}
}

func TestResolve(t *testing.T) {
	if s, err := Resolve("pair"); err != nil || len(s.Sticks) != 2 {
		t.Errorf("Resolve(pair) = %+v, %v", s, err)
	}

	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(`{"sticks": [{"x": 1, "r": 2}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(file): %v", err)
	}
	if s.Sticks[0].X != 1 || s.Sticks[0].R != 2 {
		t.Errorf("Resolve(file) = %+v", s)
	}

	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Resolve(missing) should fail")
	}
}
