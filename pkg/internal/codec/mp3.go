package codec

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// MP3Decoder decodes an MPEG-1/2 layer III stream. The decoder always yields stereo s16le.
type MP3Decoder struct{}

func NewMP3Decoder() *MP3Decoder {
	return &MP3Decoder{}
}

func (d *MP3Decoder) Decode(r io.Reader) (types.PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return types.PCM{}, fmt.Errorf("codec: mp3: %w", err)
	}
	data, err := io.ReadAll(dec)
	if err != nil {
		return types.PCM{}, fmt.Errorf("codec: mp3: %w", err)
	}
	return types.PCM{SampleRate: dec.SampleRate(), Channels: 2, Samples: bytesToInt16(data)}, nil
}
