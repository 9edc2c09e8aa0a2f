package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// TickGenerator generates a short percussive key click
type TickGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewTickGenerator creates a key click generator
func NewTickGenerator(sr beep.SampleRate) *TickGenerator {
	return &TickGenerator{sr: sr}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * tickDecayPerSec)
		sample := math.Sin(2*math.Pi*tickFrequencyHz*t) +
			tickHarmonicGain*math.Sin(2*math.Pi*tickFrequencyHz*2*t)
		sample *= envelope * tickAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TickGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd-ish harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/errorBuzzAttackS, 1.0)
		sample *= envelope * errorBuzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ChimeGenerator plays a sequence of notes back to back, then ends
type ChimeGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	perNote int
	pos     int
}

// NewChimeGenerator creates a chime over the given note frequencies
func NewChimeGenerator(sr beep.SampleRate, notes []float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		notes:   notes,
		perNote: sr.N(time.Millisecond * chimeNoteDurationMs),
	}
}

// Len is the total number of samples the chime produces
func (g *ChimeGenerator) Len() int {
	return g.perNote * len(g.notes)
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.Len() {
			return i, i > 0
		}
		note := g.notes[g.pos/g.perNote]
		local := g.pos % g.perNote
		t := float64(local) / float64(g.sr)

		// Linear release per note
		envelope := 1.0 - float64(local)/float64(g.perNote)
		sample := chimeAmplitude * envelope * math.Sin(2*math.Pi*note*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
