package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Flashes fades a per-stick highlight from 1 to 0 after each collision.
// There is no global animation manager; the Game calls Update each frame.
type Flashes struct {
	duration float32
	easeFn   ease.TweenFunc
	tweens   []*gween.Tween
	levels   []float64
}

// NewFlashes creates highlight state for n sticks. duration is the fade time
// in seconds.
func NewFlashes(n int, duration float32, fn ease.TweenFunc) *Flashes {
	if fn == nil {
		fn = ease.OutQuad
	}
	return &Flashes{
		duration: duration,
		easeFn:   fn,
		tweens:   make([]*gween.Tween, n),
		levels:   make([]float64, n),
	}
}

// Trigger restarts the fade for stick i at full strength.
func (f *Flashes) Trigger(i int) {
	if i < 0 || i >= len(f.tweens) {
		return
	}
	if f.duration <= 0 {
		return
	}
	f.tweens[i] = gween.New(1, 0, f.duration, f.easeFn)
	f.levels[i] = 1
}

// Update advances every active fade by dt seconds.
func (f *Flashes) Update(dt float32) {
	for i, tw := range f.tweens {
		if tw == nil {
			continue
		}
		v, done := tw.Update(dt)
		if done {
			f.tweens[i] = nil
			f.levels[i] = 0
			continue
		}
		f.levels[i] = float64(v)
	}
}

// Level returns the current highlight strength of stick i in [0, 1].
func (f *Flashes) Level(i int) float64 {
	if i < 0 || i >= len(f.levels) {
		return 0
	}
	return f.levels[i]
}

// Active reports whether any fade is still running.
func (f *Flashes) Active() bool {
	for _, tw := range f.tweens {
		if tw != nil {
			return true
		}
	}
	return false
}
