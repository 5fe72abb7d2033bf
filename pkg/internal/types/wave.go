package types

import "math"

// Waveform is an ordered sequence of samples at a fixed sample rate. Channels are stored
// channel-major: Channels[c][i] is sample i of channel c. A mono waveform has one channel and a
// stereo waveform two; every channel has the same length.
type Waveform struct {
	SampleRate int
	Channels   [][]float64
}

// NewMono wraps samples as a single-channel waveform.
func NewMono(sampleRate int, samples []float64) Waveform {
	return Waveform{SampleRate: sampleRate, Channels: [][]float64{samples}}
}

// NewStereo allocates a silent two-channel waveform of n frames.
func NewStereo(sampleRate, n int) Waveform {
	return Waveform{SampleRate: sampleRate, Channels: [][]float64{make([]float64, n), make([]float64, n)}}
}

// Len returns the number of frames.
func (w Waveform) Len() int {
	if len(w.Channels) == 0 {
		return 0
	}
	return len(w.Channels[0])
}

// NumChannels returns the channel count.
func (w Waveform) NumChannels() int { return len(w.Channels) }

// IsMono reports whether the waveform has exactly one channel.
func (w Waveform) IsMono() bool { return len(w.Channels) == 1 }

// Duration returns the length in seconds.
func (w Waveform) Duration() float64 {
	if w.SampleRate == 0 {
		return 0
	}
	return float64(w.Len()) / float64(w.SampleRate)
}

// Peak returns the largest absolute sample value over all channels.
func (w Waveform) Peak() float64 {
	var peak float64
	for _, ch := range w.Channels {
		for _, v := range ch {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	return peak
}

// Stereo returns a two-channel view of w. A mono waveform has its single channel shared by
// both outputs; callers that mutate the result must copy first.
func (w Waveform) Stereo() Waveform {
	if len(w.Channels) != 1 {
		return w
	}
	return Waveform{SampleRate: w.SampleRate, Channels: [][]float64{w.Channels[0], w.Channels[0]}}
}

// Clone returns a deep copy of w.
func (w Waveform) Clone() Waveform {
	out := Waveform{SampleRate: w.SampleRate, Channels: make([][]float64, len(w.Channels))}
	for c, ch := range w.Channels {
		out.Channels[c] = append([]float64(nil), ch...)
	}
	return out
}
