package synth

import (
	"math/rand/v2"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// WithLogger registers loggers for the synthesizer.
func WithLogger(l ...types.Logger) types.Option[*Synthesizer] {
	return func(s *Synthesizer) {
		s.ConnectLogger(l...)
	}
}

// WithSeed makes the chime onsets reproducible.
func WithSeed(seed uint64) types.Option[*Synthesizer] {
	return func(s *Synthesizer) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithPresets replaces the special-sound table.
func WithPresets(presets types.PresetTable) types.Option[*Synthesizer] {
	return func(s *Synthesizer) {
		if presets != nil {
			s.presets = presets
		}
	}
}

// WithBands replaces the brainwave band table.
func WithBands(bands map[string]types.Band) types.Option[*Synthesizer] {
	return func(s *Synthesizer) {
		if bands != nil {
			s.bands = bands
		}
	}
}

// WithSampleRate overrides the output sample rate.
func WithSampleRate(rate int) types.Option[*Synthesizer] {
	return func(s *Synthesizer) {
		if rate > 0 {
			s.sampleRate = rate
		}
	}
}
