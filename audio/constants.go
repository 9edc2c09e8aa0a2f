package audio

import "github.com/gopxl/beep"

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	// Letter accepted
	tickDurationMs   = 40
	tickFrequencyHz  = 1320.0
	tickAmplitude    = 0.12
	tickDecayPerSec  = 90.0
	tickHarmonicGain = 0.3

	// Key absorbed without effect
	errorBuzzDurationMs  = 150
	errorBuzzFrequencyHz = 120.0
	errorBuzzAmplitude   = 0.2
	errorBuzzAttackS     = 0.02

	// Row submitted
	chimeNoteDurationMs = 90
	chimeAmplitude      = 0.18
)

// Rising major triad played on submission
var chimeNotesHz = [...]float64{523.25, 659.25, 783.99}
