package voice

import (
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"gonum.org/v1/gonum/spatial/r3"
)

// WithLogger registers loggers for the voice synthesizer.
func WithLogger(l ...types.Logger) types.Option[*Synthesizer] {
	return func(v *Synthesizer) {
		v.ConnectLogger(l...)
	}
}

// WithPauseMarkers controls whether bracketed pause markers are stripped before speaking.
// Markers are spoken verbatim unless strip is true.
func WithPauseMarkers(strip bool) types.Option[*Synthesizer] {
	return func(v *Synthesizer) {
		v.stripPauses = strip
	}
}

// WithLanguage sets the language passed to the speech engine.
func WithLanguage(lang string) types.Option[*Synthesizer] {
	return func(v *Synthesizer) {
		if lang != "" {
			v.lang = lang
		}
	}
}

// WithPosition moves the narrator.
func WithPosition(p r3.Vec) types.Option[*Synthesizer] {
	return func(v *Synthesizer) {
		v.position = p
	}
}

// WithSampleRate sets the rate the voice is resampled to.
func WithSampleRate(rate int) types.Option[*Synthesizer] {
	return func(v *Synthesizer) {
		if rate > 0 {
			v.sampleRate = rate
		}
	}
}

// WithTempDir sets where speech payloads are staged. Empty means os.TempDir.
func WithTempDir(dir string) types.Option[*Synthesizer] {
	return func(v *Synthesizer) {
		v.tempDir = dir
	}
}
