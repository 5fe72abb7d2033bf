// Package mixer holds the length-alignment, blending and normalization steps shared by the
// session composer and the synthesizer.
package mixer

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
)

// Fit returns w with every channel zero-padded or truncated to exactly n frames.
// Channels that already have n frames are shared, not copied.
func Fit(w types.Waveform, n int) types.Waveform {
	out := types.Waveform{SampleRate: w.SampleRate, Channels: make([][]float64, len(w.Channels))}
	for c, ch := range w.Channels {
		switch {
		case len(ch) == n:
			out.Channels[c] = ch
		case len(ch) > n:
			out.Channels[c] = ch[:n]
		default:
			padded := make([]float64, n)
			copy(padded, ch)
			out.Channels[c] = padded
		}
	}
	return out
}

// AddScaled accumulates alpha*src into dst channel by channel. Both waveforms must have the
// same channel count, frame count and sample rate.
func AddScaled(dst types.Waveform, alpha float64, src types.Waveform) error {
	if err := compatible(dst, src); err != nil {
		return err
	}
	for c := range dst.Channels {
		floats.AddScaled(dst.Channels[c], alpha, src.Channels[c])
	}
	return nil
}

// Blend returns fg + alpha*bg as a new waveform.
func Blend(fg types.Waveform, alpha float64, bg types.Waveform) (types.Waveform, error) {
	if err := compatible(fg, bg); err != nil {
		return types.Waveform{}, err
	}
	out := fg.Clone()
	for c := range out.Channels {
		floats.AddScaled(out.Channels[c], alpha, bg.Channels[c])
	}
	return out, nil
}

// Peak returns the largest absolute sample value of w.
func Peak(w types.Waveform) float64 {
	var peak float64
	for _, ch := range w.Channels {
		if len(ch) == 0 {
			continue
		}
		peak = math.Max(peak, math.Max(floats.Max(ch), -floats.Min(ch)))
	}
	return peak
}

// Normalize divides w in place by its peak so that the largest absolute sample is exactly 1.
// A silent waveform is left untouched and false is returned.
func Normalize(w types.Waveform) bool {
	peak := Peak(w)
	if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return false
	}
	for _, ch := range w.Channels {
		for i := range ch {
			ch[i] /= peak
		}
	}
	return true
}

// DuplicateToStereo copies a mono waveform into two independent channels.
func DuplicateToStereo(w types.Waveform) types.Waveform {
	if !w.IsMono() {
		return w
	}
	left := w.Channels[0]
	right := make([]float64, len(left))
	copy(right, left)
	return types.Waveform{SampleRate: w.SampleRate, Channels: [][]float64{left, right}}
}

func compatible(a, b types.Waveform) error {
	if a.NumChannels() != b.NumChannels() {
		return fmt.Errorf("mixer: channel mismatch %d != %d", a.NumChannels(), b.NumChannels())
	}
	if a.Len() != b.Len() {
		return fmt.Errorf("mixer: length mismatch %d != %d", a.Len(), b.Len())
	}
	if a.SampleRate != b.SampleRate {
		return fmt.Errorf("mixer: sample rate mismatch %d != %d", a.SampleRate, b.SampleRate)
	}
	return nil
}
