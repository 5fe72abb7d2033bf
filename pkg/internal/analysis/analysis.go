// Package analysis computes a spectral summary of a rendered waveform for logging.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// DefaultMaxFrames bounds the spectrum to the first ~24 s at 44.1 kHz.
const DefaultMaxFrames = 1 << 20

// Summary describes a waveform's level and its strongest frequency.
type Summary struct {
	Frames            int     `json:"frames"`
	Seconds           float64 `json:"seconds"`
	Peak              float64 `json:"peak"`
	RMS               float64 `json:"rms"`
	TotalEnergy       float64 `json:"total_energy"`
	DominantFrequency float64 `json:"dominant_frequency"`
	SNR               float64 `json:"snr"`
}

// Summarize analyzes w using at most DefaultMaxFrames frames for the spectrum.
func Summarize(w types.Waveform) Summary {
	return SummarizeWindow(w, DefaultMaxFrames)
}

// SummarizeWindow analyzes w. Level figures cover every frame; the spectrum is taken over the
// channel average of the first maxFrames frames, zero-padded to a power of two. The DC bin is
// ignored when picking the dominant frequency.
func SummarizeWindow(w types.Waveform, maxFrames int) Summary {
	n := w.Len()
	s := Summary{Frames: n, Seconds: w.Duration()}
	if n == 0 || w.NumChannels() == 0 {
		return s
	}

	var energy float64
	for _, ch := range w.Channels {
		s.Peak = math.Max(s.Peak, math.Max(math.Abs(floats.Max(ch)), math.Abs(floats.Min(ch))))
		energy += floats.Dot(ch, ch)
	}
	s.TotalEnergy = energy
	s.RMS = math.Sqrt(energy / float64(n*w.NumChannels()))

	if maxFrames <= 0 || maxFrames > n {
		maxFrames = n
	}
	nfft := 1
	for nfft < maxFrames {
		nfft <<= 1
	}
	mono := make([]float64, nfft)
	for _, ch := range w.Channels {
		floats.Add(mono[:maxFrames], ch[:maxFrames])
	}
	floats.Scale(1/float64(w.NumChannels()), mono[:maxFrames])

	spectrum := fft.FFTReal(mono)
	var total, maxPower float64
	dominant := 0
	for i := 1; i < nfft/2; i++ {
		power := cmplx.Abs(spectrum[i]) * cmplx.Abs(spectrum[i])
		total += power
		if power > maxPower {
			maxPower = power
			dominant = i
		}
	}
	s.DominantFrequency = float64(dominant) * float64(w.SampleRate) / float64(nfft)
	if noise := total - maxPower; noise > 0 && maxPower > 0 {
		s.SNR = 10 * math.Log10(maxPower/noise)
	}
	return s
}
