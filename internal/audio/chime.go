// Package audio plays the phase-end chime. Playback is fire-and-forget and
// never blocks the caller; when the speaker cannot be initialized the chime
// silently degrades to a no-op.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHigh   = 880.0
	toneLow    = 660.0
)

// Chime produces a short two-tone signal when a phase ends.
type Chime struct {
	mu      sync.Mutex
	ready   bool
	enabled bool
}

// NewChime initializes the speaker once and returns the chime.
func NewChime(enabled bool) *Chime {
	chime := &Chime{enabled: enabled}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: failed to initialize speaker: %v", err)
		return chime
	}
	chime.ready = true
	return chime
}

// SetEnabled toggles playback without tearing down the speaker.
func (chime *Chime) SetEnabled(enabled bool) {
	chime.mu.Lock()
	chime.enabled = enabled
	chime.mu.Unlock()
}

// Play sounds the chime. Playback runs on the speaker's own goroutine.
func (chime *Chime) Play() {
	chime.mu.Lock()
	ready := chime.ready && chime.enabled
	chime.mu.Unlock()
	if !ready {
		return
	}

	high, err := generators.SineTone(sampleRate, toneHigh)
	if err != nil {
		log.Printf("chime: %v", err)
		return
	}
	low, err := generators.SineTone(sampleRate, toneLow)
	if err != nil {
		log.Printf("chime: %v", err)
		return
	}

	quarter := sampleRate.N(250 * time.Millisecond)
	speaker.Play(beep.Seq(beep.Take(quarter, high), beep.Take(quarter, low)))
}
