// Package composer assembles a meditation session: an ambient bed of spatialized preset sounds
// (or a plain brainwave tone), an optional voice overlay and a final peak normalization.
package composer

import (
	"sync"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
)

const (
	// DefaultBedMix is the weight of the ambient bed under a voice track.
	DefaultBedMix = 0.3
	// DefaultMovementSpeed is the sweep speed applied to every bed sound.
	DefaultMovementSpeed = 0.2
)

// Request describes one session.
type Request struct {
	// Duration is the session length in seconds.
	Duration float64
	// Band selects the carrier tone. It is only used when Sounds is empty.
	Band string
	// Sounds lists special-sound presets for the bed.
	Sounds []string
	// Script is spoken over the bed when not empty.
	Script string
}

// Composer builds session waveforms and, through Generate, writes and publishes them.
type Composer struct {
	componentMetadata types.ComponentMetadata
	synth             types.Synthesizer
	renderer          types.Renderer
	voice             types.VoiceSynthesizer
	writer            types.SessionWriter
	publisher         types.Publisher
	sampleRate        int
	movement          types.Movement
	bedMix            float64
	sensors           []types.Sensor
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewComposer creates a composer over a synthesizer and a renderer. Voice, writer and
// publisher are attached with options.
func NewComposer(synth types.Synthesizer, renderer types.Renderer, options ...types.Option[*Composer]) *Composer {
	c := &Composer{
		componentMetadata: types.ComponentMetadata{
			Type: "COMPOSER",
			ID:   utils.GenerateUniqueHash(),
		},
		synth:      synth,
		renderer:   renderer,
		sampleRate: types.SampleRate,
		movement:   types.Movement{Pattern: types.CircularMovement, Speed: DefaultMovementSpeed},
		bedMix:     DefaultBedMix,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// GetComponentMetadata returns the composer metadata.
func (c *Composer) GetComponentMetadata() types.ComponentMetadata {
	return c.componentMetadata
}

// SetComponentMetadata updates the composer name and id.
func (c *Composer) SetComponentMetadata(name string, id string) {
	c.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: c.componentMetadata.Type}
}
