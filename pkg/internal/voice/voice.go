// Package voice turns a guidance script into a stereo voice track placed above the listener.
package voice

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/codec"
	"github.com/joeydtaylor/meditation/pkg/internal/mixer"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
	"github.com/joeydtaylor/meditation/pkg/logschema"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultPosition is where the narrator sits in the room.
var DefaultPosition = r3.Vec{X: 2.5, Y: 2.5, Z: 1.7}

var pauseMarker = regexp.MustCompile(`\[[^\]]*\]`)

// Synthesizer speaks a script through a TTS engine and renders the result in the room.
type Synthesizer struct {
	componentMetadata types.ComponentMetadata
	engine            types.SpeechEngine
	renderer          types.Renderer
	sampleRate        int
	lang              string
	position          r3.Vec
	stripPauses       bool
	tempDir           string
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewSynthesizer creates a voice synthesizer speaking English at 44100 Hz.
func NewSynthesizer(engine types.SpeechEngine, renderer types.Renderer, options ...types.Option[*Synthesizer]) *Synthesizer {
	v := &Synthesizer{
		componentMetadata: types.ComponentMetadata{
			Type: "VOICE",
			ID:   utils.GenerateUniqueHash(),
		},
		engine:     engine,
		renderer:   renderer,
		sampleRate: types.SampleRate,
		lang:       "en",
		position:   DefaultPosition,
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

// GetComponentMetadata returns the voice synthesizer metadata.
func (v *Synthesizer) GetComponentMetadata() types.ComponentMetadata {
	return v.componentMetadata
}

// SetComponentMetadata updates the voice synthesizer name and id.
func (v *Synthesizer) SetComponentMetadata(name string, id string) {
	v.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: v.componentMetadata.Type}
}

// Synthesize returns the script spoken at the narrator position as stereo at the configured rate.
func (v *Synthesizer) Synthesize(ctx context.Context, script string) (types.Waveform, error) {
	if v.engine == nil || v.renderer == nil {
		return types.Waveform{}, fmt.Errorf("voice: engine and renderer are required")
	}
	text := script
	if v.stripPauses {
		text = StripPauseMarkers(text)
	}

	start := time.Now()
	speech, err := v.engine.Synthesize(ctx, text, v.lang)
	if err != nil {
		v.NotifyLoggers(types.ErrorLevel, "Synthesize: speech engine failed", "component", v.componentMetadata, logschema.FieldError, err)
		return types.Waveform{}, fmt.Errorf("voice: tts: %w", err)
	}

	pcm, err := v.decode(speech)
	if err != nil {
		v.NotifyLoggers(types.ErrorLevel, "Synthesize: decode failed", "component", v.componentMetadata, "format", string(speech.Format), logschema.FieldError, err)
		return types.Waveform{}, fmt.Errorf("voice: decode: %w", err)
	}
	if pcm.Frames() == 0 {
		return types.Waveform{}, fmt.Errorf("voice: decode: no audio frames")
	}

	decoded := codec.ToWaveform(pcm)
	mono := Resample(decoded.Channels[0], decoded.SampleRate, v.sampleRate)
	stereo := mixer.DuplicateToStereo(types.NewMono(v.sampleRate, mono))

	out, err := v.renderer.Render(ctx, stereo, v.position, nil)
	if err != nil {
		return types.Waveform{}, fmt.Errorf("voice: render: %w", err)
	}

	v.NotifyLoggers(types.InfoLevel, "Synthesize: voice ready",
		"component", v.componentMetadata,
		"source_rate", decoded.SampleRate,
		logschema.FieldFrames, out.Len(),
		"seconds", out.Duration(),
		logschema.FieldElapsed, time.Since(start),
	)
	return out, nil
}

// decode stages the speech payload in a temporary file and decodes it. The file is removed on
// every return path.
func (v *Synthesizer) decode(speech types.Speech) (types.PCM, error) {
	dec, err := codec.NewDecoder(speech.Format, speech.SampleRate, 1)
	if err != nil {
		return types.PCM{}, err
	}

	f, err := os.CreateTemp(v.tempDir, "voice-*."+string(speech.Format))
	if err != nil {
		return types.PCM{}, err
	}
	name := f.Name()
	defer os.Remove(name)
	defer f.Close()

	if _, err := f.Write(speech.Data); err != nil {
		return types.PCM{}, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return types.PCM{}, err
	}
	return dec.Decode(f)
}

// StripPauseMarkers removes bracketed markers such as "[pause 3s]" and collapses whitespace.
func StripPauseMarkers(script string) string {
	return strings.Join(strings.Fields(pauseMarker.ReplaceAllString(script, " ")), " ")
}
