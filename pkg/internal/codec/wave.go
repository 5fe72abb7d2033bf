package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/mjibson/go-dsp/wav"
)

const (
	wavFormatPCM  = 1
	bitsPerSample = 16
	encodeChunk   = 4096
)

// riffHeader is the canonical 44-byte RIFF/WAVE header for PCM data.
type riffHeader struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	FmtID         [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataID        [4]byte
	DataSize      uint32
}

// WAVEncoder writes a waveform as 16-bit PCM RIFF/WAVE. Samples are clamped to [-1, 1].
type WAVEncoder struct{}

// WAVDecoder reads RIFF/WAVE data into 16-bit PCM.
type WAVDecoder struct{}

func NewWAVEncoder() *WAVEncoder {
	return &WAVEncoder{}
}

func NewWAVDecoder() *WAVDecoder {
	return &WAVDecoder{}
}

func (e *WAVEncoder) Encode(w io.Writer, wave types.Waveform) error {
	channels := wave.NumChannels()
	if channels == 0 {
		return errors.New("codec: waveform has no channels")
	}
	if wave.SampleRate <= 0 {
		return fmt.Errorf("codec: invalid sample rate %d", wave.SampleRate)
	}
	frames := wave.Len()
	blockAlign := channels * bitsPerSample / 8
	dataSize := frames * blockAlign
	if uint64(dataSize)+36 > math.MaxUint32 {
		return fmt.Errorf("codec: %d frames exceed the RIFF size limit", frames)
	}

	h := riffHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(36 + dataSize),
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   wavFormatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(wave.SampleRate),
		ByteRate:      uint32(wave.SampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: bitsPerSample,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      uint32(dataSize),
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return err
	}

	buf := make([]int16, 0, encodeChunk*channels)
	for start := 0; start < frames; start += encodeChunk {
		end := start + encodeChunk
		if end > frames {
			end = frames
		}
		buf = buf[:0]
		for i := start; i < end; i++ {
			for c := 0; c < channels; c++ {
				buf = append(buf, toInt16(wave.Channels[c][i]))
			}
		}
		if err := binary.Write(bw, binary.LittleEndian, buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (d *WAVDecoder) Decode(r io.Reader) (types.PCM, error) {
	wr, err := wav.New(r)
	if err != nil {
		return types.PCM{}, fmt.Errorf("codec: wav: %w", err)
	}
	channels := int(wr.NumChannels)
	if channels == 0 {
		return types.PCM{}, errors.New("codec: wav: no channels")
	}

	// ReadSamples fails with io.ErrUnexpectedEOF when asked for more than remains, so the last
	// request is trimmed to the reported sample count.
	remaining := wr.Samples
	samples := make([]int16, 0, remaining)
	for remaining > 0 {
		n := encodeChunk * channels
		if n > remaining {
			n = remaining
		}
		raw, err := wr.ReadSamples(n)
		if err != nil && !errors.Is(err, io.EOF) {
			return types.PCM{}, fmt.Errorf("codec: wav: %w", err)
		}
		block, convErr := wavSamples(raw)
		if convErr != nil {
			return types.PCM{}, convErr
		}
		samples = append(samples, block...)
		remaining -= len(block)
		if err != nil || len(block) == 0 {
			break
		}
	}
	samples = samples[:len(samples)-len(samples)%channels]

	return types.PCM{SampleRate: int(wr.SampleRate), Channels: channels, Samples: samples}, nil
}

// wavSamples converts one block returned by the wav reader to signed 16-bit samples.
func wavSamples(raw interface{}) ([]int16, error) {
	switch s := raw.(type) {
	case nil:
		return nil, nil
	case []int16:
		return s, nil
	case []uint8:
		out := make([]int16, len(s))
		for i, v := range s {
			out[i] = int16(int(v)-128) << 8
		}
		return out, nil
	case []float32:
		out := make([]int16, len(s))
		for i, v := range s {
			out[i] = toInt16(float64(v))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("codec: wav: unsupported sample type %T", raw)
	}
}

func toInt16(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}
	return int16(math.Round(v * pcmScale))
}
