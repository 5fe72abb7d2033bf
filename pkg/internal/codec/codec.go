package codec

import (
	"fmt"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// pcmScale maps a signed 16-bit sample onto [-1, 1].
const pcmScale = 32767.0

// NewDecoder returns the PCM decoder for format. sampleRate and channels are only used by the
// raw PCM decoder, which has no header to read them from.
func NewDecoder(format types.AudioFormat, sampleRate, channels int) (types.Decoder[types.PCM], error) {
	switch format {
	case types.MP3Format:
		return NewMP3Decoder(), nil
	case types.WAVFormat:
		return NewWAVDecoder(), nil
	case types.PCMFormat:
		return NewRawPCMDecoder(sampleRate, channels), nil
	default:
		return nil, fmt.Errorf("codec: unsupported audio format %q", format)
	}
}

// ToWaveform de-interleaves p into a channel-major waveform scaled by 1/32767.
func ToWaveform(p types.PCM) types.Waveform {
	frames := p.Frames()
	channels := make([][]float64, p.Channels)
	for c := range channels {
		channels[c] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		base := i * p.Channels
		for c := 0; c < p.Channels; c++ {
			channels[c][i] = float64(p.Samples[base+c]) / pcmScale
		}
	}
	return types.Waveform{SampleRate: p.SampleRate, Channels: channels}
}
