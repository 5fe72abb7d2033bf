package synth

import (
	"math"
	"strconv"

	"github.com/joeydtaylor/meditation/pkg/internal/mixer"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/logschema"
)

const (
	chimeStrikes = 5   // Onsets drawn per chime frequency.
	chimeDecay   = 5.0 // Exponential decay rate of a chime burst, 1/s.
)

// Tone returns a pure sine at the midpoint of band lasting duration seconds.
func (s *Synthesizer) Tone(band string, duration float64) (types.Waveform, error) {
	b, ok := s.bands[band]
	if !ok {
		return types.Waveform{}, &types.InvalidArgumentError{Kind: "brainwave band", Value: band}
	}
	if duration <= 0 {
		return types.Waveform{}, &types.InvalidArgumentError{Kind: "duration", Value: strconv.FormatFloat(duration, 'g', -1, 64), Reason: "must be positive"}
	}

	t := s.timeBase(duration)
	freq := b.Midpoint()
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Sin(2 * math.Pi * freq * ti)
	}

	s.NotifyLoggers(types.DebugLevel, "Tone: generated carrier", "component", s.componentMetadata, logschema.FieldBand, band, "frequency", freq, logschema.FieldFrames, len(out))
	return types.NewMono(s.sampleRate, out), nil
}

// Preset returns the descriptor of a special sound.
func (s *Synthesizer) Preset(name string) (types.Preset, error) {
	p, ok := s.presets[name]
	if !ok {
		return types.Preset{}, &types.InvalidArgumentError{Kind: "sound type", Value: name}
	}
	return p, nil
}

// Special generates the named preset and peak-normalizes it. A non-positive duration selects
// the preset's default duration. A preset that comes out silent, such as chimes shorter than
// one second, is returned silent.
func (s *Synthesizer) Special(name string, duration float64) (types.Waveform, error) {
	p, err := s.Preset(name)
	if err != nil {
		return types.Waveform{}, err
	}
	if duration <= 0 {
		duration = p.Duration
	}

	t := s.timeBase(duration)
	var out []float64
	switch p.Kind {
	case types.BowlsPreset:
		out = bowls(t, p.Frequencies)
	case types.ChantPreset:
		out = chant(t, p.BaseFreq, p.Harmonics)
	case types.ChimesPreset:
		out = s.chimes(t, duration, p.Frequencies)
	default:
		return types.Waveform{}, &types.InvalidArgumentError{Kind: "preset kind", Value: strconv.Itoa(int(p.Kind)), Reason: "not supported"}
	}

	wave := types.NewMono(s.sampleRate, out)
	if !mixer.Normalize(wave) {
		s.NotifyLoggers(types.WarnLevel, "Special: silent preset left unnormalized", "component", s.componentMetadata, logschema.FieldSound, name, "duration", duration)
	}

	s.NotifyLoggers(types.DebugLevel, "Special: generated sound", "component", s.componentMetadata, logschema.FieldSound, name, logschema.FieldFrames, len(out))
	return wave, nil
}

// timeBase returns n evenly spaced instants from 0 to duration inclusive, n = duration*rate.
func (s *Synthesizer) timeBase(duration float64) []float64 {
	n := int(float64(s.sampleRate) * duration)
	t := make([]float64, n)
	if n < 2 {
		return t
	}
	step := duration / float64(n-1)
	for i := range t {
		t[i] = float64(i) * step
	}
	return t
}

func bowls(t []float64, freqs []float64) []float64 {
	out := make([]float64, len(t))
	for _, f := range freqs {
		w := 2 * math.Pi * f
		for i, ti := range t {
			out[i] += math.Sin(w*ti)*0.5 + math.Sin(2*w*ti)*0.25 + math.Sin(3*w*ti)*0.125
		}
	}
	return out
}

func chant(t []float64, base float64, harmonics []float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * base
	for i, ti := range t {
		out[i] = math.Sin(w * ti)
	}
	for _, h := range harmonics {
		amp := 1 / h
		for i, ti := range t {
			out[i] += math.Sin(w*h*ti) * amp
		}
	}
	return out
}

func (s *Synthesizer) chimes(t []float64, duration float64, freqs []float64) []float64 {
	out := make([]float64, len(t))
	burst := s.sampleRate
	if burst > len(t) {
		return out
	}

	env := make([]float64, burst)
	for k := range env {
		env[k] = math.Exp(-t[k] * chimeDecay)
	}

	s.rngLock.Lock()
	defer s.rngLock.Unlock()
	for _, f := range freqs {
		w := 2 * math.Pi * f
		for strike := 0; strike < chimeStrikes; strike++ {
			idx := int(s.rng.Float64() * duration * float64(s.sampleRate))
			if idx+burst >= len(out) {
				continue
			}
			for k := 0; k < burst; k++ {
				out[idx+k] += math.Sin(w*t[k]) * env[k]
			}
		}
	}
	return out
}
