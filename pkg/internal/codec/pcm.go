package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// RawPCMDecoder reads headerless signed 16-bit little-endian interleaved PCM.
type RawPCMDecoder struct {
	SampleRate int
	Channels   int
}

func NewRawPCMDecoder(sampleRate, channels int) *RawPCMDecoder {
	if channels <= 0 {
		channels = 1
	}
	return &RawPCMDecoder{SampleRate: sampleRate, Channels: channels}
}

func (d *RawPCMDecoder) Decode(r io.Reader) (types.PCM, error) {
	if d.SampleRate <= 0 {
		return types.PCM{}, fmt.Errorf("codec: raw pcm needs a sample rate")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return types.PCM{}, err
	}
	return types.PCM{SampleRate: d.SampleRate, Channels: d.Channels, Samples: bytesToInt16(data)}, nil
}

// bytesToInt16 converts s16le bytes, ignoring a trailing odd byte.
func bytesToInt16(data []byte) []int16 {
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return out
}
