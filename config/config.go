// Package config loads simulation settings for the example programs from the
// environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/phanxgames/sticks"
)

// Environment variable names.
const (
	EnvDt            = "STICKS_DT"
	EnvDissipation   = "STICKS_DISSIPATION"
	EnvClose         = "STICKS_CLOSE"
	EnvLineTest      = "STICKS_LINE_TEST"
	EnvScene         = "STICKS_SCENE"
	EnvRenderEvery   = "STICKS_RENDER_EVERY"
	EnvPixelsPerUnit = "STICKS_PIXELS_PER_UNIT"
	EnvTickHz        = "STICKS_TICK_HZ"
	EnvAddr          = "STICKS_ADDR"
	EnvSound         = "STICKS_SOUND"
	EnvDebug         = "STICKS_DEBUG"
)

// Settings is everything an example program needs to build and present an
// engine.
type Settings struct {
	// Engine holds the physics constants.
	Engine sticks.Config
	// Scene is a built-in scene name or a JSON scene path.
	Scene string
	// RenderEvery is the number of ticks per rendered frame.
	RenderEvery int
	// PixelsPerUnit scales world units to screen pixels.
	PixelsPerUnit float64
	// TickHz is the number of rendered frames per wall-clock second for the
	// terminal and stream programs.
	TickHz int
	// Addr is the listen address for the stream server.
	Addr string
	// Sound enables the terminal collision click.
	Sound bool
	// Debug enables engine diagnostics on stderr.
	Debug bool
}

// Defaults returns the reference settings: default engine constants, the
// classic scene, a frame every 67 ticks, 30 pixels per unit and 100 frames
// per second.
func Defaults() Settings {
	return Settings{
		Engine:        sticks.DefaultConfig(),
		Scene:         "classic",
		RenderEvery:   67,
		PixelsPerUnit: 30,
		TickHz:        100,
		Addr:          ":8080",
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, skipping files that do not exist, and returns the
// settings found there on top of Defaults. Variables already set in the
// environment win over .env values.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv returns Defaults overridden by any STICKS_* variables set in the
// environment.
func FromEnv() (Settings, error) {
	s := Defaults()

	floats := []struct {
		name string
		dst  *float64
	}{
		{EnvDt, &s.Engine.Dt},
		{EnvDissipation, &s.Engine.Dissipation},
		{EnvClose, &s.Engine.Close},
		{EnvPixelsPerUnit, &s.PixelsPerUnit},
	}
	for _, f := range floats {
		if err := lookupFloat(f.name, f.dst); err != nil {
			return Settings{}, err
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvRenderEvery, &s.RenderEvery},
		{EnvTickHz, &s.TickHz},
	}
	for _, i := range ints {
		if err := lookupInt(i.name, i.dst); err != nil {
			return Settings{}, err
		}
	}

	for name, dst := range map[string]*bool{EnvSound: &s.Sound, EnvDebug: &s.Debug} {
		if err := lookupBool(name, dst); err != nil {
			return Settings{}, err
		}
	}

	if v, err := GetEnvVariable(EnvLineTest); err == nil {
		lt, err := sticks.ParseLineTest(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvLineTest, err)
		}
		s.Engine.LineTest = lt
	}
	if v, err := GetEnvVariable(EnvScene); err == nil {
		s.Scene = v
	}
	if v, err := GetEnvVariable(EnvAddr); err == nil {
		s.Addr = v
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the engine constants and the presentation values.
func (s Settings) Validate() error {
	if err := s.Engine.Validate(); err != nil {
		return err
	}
	if s.RenderEvery < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvRenderEvery, s.RenderEvery)
	}
	if !(s.PixelsPerUnit > 0) {
		return fmt.Errorf("%s must be positive, got %v", EnvPixelsPerUnit, s.PixelsPerUnit)
	}
	if s.TickHz < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvTickHz, s.TickHz)
	}
	return nil
}

// GetEnvVariable returns the value of v, or an error if v is empty or unset.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

func lookupFloat(name string, dst *float64) error {
	v, err := GetEnvVariable(name)
	if err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = f
	return nil
}

func lookupInt(name string, dst *int) error {
	v, err := GetEnvVariable(name)
	if err != nil {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = i
	return nil
}

func lookupBool(name string, dst *bool) error {
	v, err := GetEnvVariable(name)
	if err != nil {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}
