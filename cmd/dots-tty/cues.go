package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cues plays short synthesized sounds. It stays silent when the audio
// device could not be opened.
type cues struct {
	mixer *beep.Mixer
	ready bool
}

func (c *cues) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	c.mixer = &beep.Mixer{}
	speaker.Play(c.mixer)
	c.ready = true
	return nil
}

func (c *cues) Close() {
	if c.ready {
		speaker.Close()
	}
}

func (c *cues) Score() {
	c.play(880, 60*time.Millisecond)
}

func (c *cues) Lose() {
	c.play(110, 300*time.Millisecond)
}

func (c *cues) Win() {
	c.play(660, 120*time.Millisecond)
}

func (c *cues) play(freq float64, d time.Duration) {
	if !c.ready {
		return
	}
	n := sampleRate.N(d)
	speaker.Lock()
	c.mixer.Add(beep.Take(n, &tone{sr: sampleRate, freq: freq, length: n}))
	speaker.Unlock()
}

// tone is a sine wave that fades out linearly over length samples.
type tone struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		tm := float64(t.pos) / float64(t.sr)
		envelope := 1 - float64(t.pos)/float64(t.length)
		sample := 0.2 * math.Max(envelope, 0) * math.Sin(2*math.Pi*t.freq*tm)
		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
