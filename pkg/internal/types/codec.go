package types

import "io"

// Decoder deserializes one object from r.
type Decoder[T any] interface {
	Decode(io.Reader) (T, error)
}

// Encoder serializes one object to w.
type Encoder[T any] interface {
	Encode(io.Writer, T) error
}

// PCM is a block of interleaved signed 16-bit samples as produced by an audio decoder.
type PCM struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Frames returns the number of sample frames held by the block.
func (p PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// AudioFormat names the container of an encoded audio payload.
type AudioFormat string

const (
	MP3Format AudioFormat = "mp3"
	WAVFormat AudioFormat = "wav"
	PCMFormat AudioFormat = "pcm"
)
