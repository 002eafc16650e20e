package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeDuration = 600 * time.Millisecond
)

// Chime plays a short two-note tone when a countdown completes.
type Chime struct {
	mu          sync.Mutex
	initialized bool
}

func NewChime() *Chime {
	return &Chime{}
}

// Init opens the speaker. The chime stays silent if it fails.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	c.initialized = true

	return nil
}

func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	half := sampleRate.N(chimeDuration / 2)
	speaker.Play(beep.Seq(
		beep.Take(half, NewChimeGenerator(sampleRate, 880)),
		beep.Take(half, NewChimeGenerator(sampleRate, 1320)),
	))
}

func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// ChimeGenerator is a sine tone with a fast attack and exponential decay.
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.005, 1.0)
		decay := math.Exp(-t * 6)
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t) * attack * decay

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
