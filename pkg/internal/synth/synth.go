// Package synth produces the mono source material of a meditation session: a carrier tone at a
// brainwave band midpoint and the three special-sound presets (bowls, chant, chimes).
package synth

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
)

// Synthesizer generates deterministic waveforms from a band table and a preset table.
// Only the chime preset draws from the random source.
type Synthesizer struct {
	componentMetadata types.ComponentMetadata
	sampleRate        int
	bands             map[string]types.Band
	presets           types.PresetTable
	rng               *rand.Rand
	rngLock           sync.Mutex
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewSynthesizer creates a synthesizer with the default bands and presets at 44100 Hz.
func NewSynthesizer(options ...types.Option[*Synthesizer]) *Synthesizer {
	seed := uint64(time.Now().UnixNano())
	s := &Synthesizer{
		componentMetadata: types.ComponentMetadata{
			Type: "SYNTHESIZER",
			ID:   utils.GenerateUniqueHash(),
		},
		sampleRate: types.SampleRate,
		bands:      types.DefaultBands(),
		presets:    types.DefaultPresets(),
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// GetComponentMetadata returns the synthesizer metadata.
func (s *Synthesizer) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// SetComponentMetadata updates the synthesizer name and id.
func (s *Synthesizer) SetComponentMetadata(name string, id string) {
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
}

// SampleRate returns the rate every generated waveform uses.
func (s *Synthesizer) SampleRate() int { return s.sampleRate }
