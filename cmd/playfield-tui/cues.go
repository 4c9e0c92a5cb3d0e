package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cues plays short tones for line clears and game over. It stays silent
// until init succeeds.
type cues struct {
	ready bool
}

func (c *cues) init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.ready = true
	return nil
}

func (c *cues) tone(freq float64, d time.Duration) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// lineClear rises in pitch with the number of rows cleared at once.
func (c *cues) lineClear(lines int) {
	c.tone(440*float64(lines+1), 80*time.Millisecond)
}

func (c *cues) gameOver() {
	c.tone(110, 400*time.Millisecond)
}

func (c *cues) close() {
	if c.ready {
		speaker.Close()
	}
}
