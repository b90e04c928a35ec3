package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickFreq  = 880.0
	clickLen   = 30 * time.Millisecond
)

// Clicker plays a short tone for each collision. The zero value is silent;
// Init opens the speaker.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewClicker creates a silent Clicker.
func NewClicker() *Clicker {
	return &Clicker{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Callers usually log the error and keep running
// without sound.
func (c *Clicker) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Click queues one tone. It does nothing before Init.
func (c *Clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	tone, err := clickTone()
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// clickTone is a quiet sine burst of clickLen.
func clickTone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, clickFreq)
	if err != nil {
		return nil, err
	}
	quiet := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := sine.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= 0.2
			samples[i][1] *= 0.2
		}
		return n, ok
	})
	return beep.Take(sampleRate.N(clickLen), quiet), nil
}
