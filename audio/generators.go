package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps a sine from one frequency to another over its
// lifetime, with a short fade-in to avoid clicks
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	span     int
	pos      int
}

// NewChirpGenerator creates a frequency sweep generator
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{
		sr:   sr,
		from: from,
		to:   to,
		span: sr.N(time.Millisecond * 200),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.span), 1.0)
		freq := g.from + (g.to-g.from)*progress

		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.01, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// ThudGenerator generates a low percussive hit with a falling pitch
type ThudGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewThudGenerator creates a thud sound generator
func NewThudGenerator(sr beep.SampleRate, freq float64) *ThudGenerator {
	return &ThudGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 12)
		freq := g.freq * (1 + envelope)
		sample := 0.35 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// CrackleGenerator generates a breaking sound: filtered noise over a low
// rumble with a fast decay
type CrackleGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrackleGenerator creates a crackle sound generator
func NewCrackleGenerator(sr beep.SampleRate) *CrackleGenerator {
	return &CrackleGenerator{
		sr:   sr,
		seed: 0x5eed,
	}
}

func (g *CrackleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*80*t)
		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackleGenerator) Err() error {
	return nil
}
