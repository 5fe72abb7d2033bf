package codec_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/joeydtaylor/meditation/pkg/internal/codec"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

type sessionEvent struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func TestJSONEncodingDecoding(t *testing.T) {
	in := sessionEvent{ID: "abc", Path: "output/x.wav"}

	var buf bytes.Buffer
	if err := codec.NewJSONEncoder[sessionEvent]().Encode(&buf, in); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	out, err := codec.NewJSONDecoder[sessionEvent]().Decode(&buf)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestWAVEncoder_Header(t *testing.T) {
	wave := types.NewStereo(types.SampleRate, 10)

	var buf bytes.Buffer
	if err := codec.NewWAVEncoder().Encode(&buf, wave); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	b := buf.Bytes()
	if len(b) != 44+10*4 {
		t.Fatalf("expected %d bytes, got %d", 44+10*4, len(b))
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[12:16]) != "fmt " || string(b[36:40]) != "data" {
		t.Fatalf("malformed chunk ids: %q", b[:40])
	}
	if got := binary.LittleEndian.Uint32(b[4:8]); got != uint32(36+40) {
		t.Errorf("riff size: expected 76, got %d", got)
	}
	if got := binary.LittleEndian.Uint16(b[22:24]); got != 2 {
		t.Errorf("channels: expected 2, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(b[24:28]); got != types.SampleRate {
		t.Errorf("sample rate: expected %d, got %d", types.SampleRate, got)
	}
	if got := binary.LittleEndian.Uint16(b[34:36]); got != 16 {
		t.Errorf("bits per sample: expected 16, got %d", got)
	}
}

func TestWAV_RoundTrip(t *testing.T) {
	n := 10000
	left := make([]float64, n)
	right := make([]float64, n)
	for i := range left {
		left[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/types.SampleRate)
		right[i] = -left[i]
	}
	right[0] = 3
	right[1] = -3
	in := types.Waveform{SampleRate: types.SampleRate, Channels: [][]float64{left, right}}

	var buf bytes.Buffer
	if err := codec.NewWAVEncoder().Encode(&buf, in); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	pcm, err := codec.NewWAVDecoder().Decode(&buf)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if pcm.SampleRate != types.SampleRate || pcm.Channels != 2 || pcm.Frames() != n {
		t.Fatalf("expected %d stereo frames at %d Hz, got %d x %d at %d Hz", n, types.SampleRate, pcm.Frames(), pcm.Channels, pcm.SampleRate)
	}

	out := codec.ToWaveform(pcm)
	if out.Channels[1][0] != 1 || out.Channels[1][1] != -1 {
		t.Errorf("expected clamped samples, got %v %v", out.Channels[1][0], out.Channels[1][1])
	}
	for i := 2; i < n; i++ {
		if math.Abs(out.Channels[0][i]-left[i]) > 1.0/32767 || math.Abs(out.Channels[1][i]-right[i]) > 1.0/32767 {
			t.Fatalf("frame %d: quantization error too large", i)
		}
	}
}

func TestWAVDecoder_PartialFinalBlock(t *testing.T) {
	for _, tc := range []struct {
		frames   int
		channels int
	}{
		{1, 2}, {100, 2}, {4095, 2}, {4096, 2}, {4097, 2}, {8193, 1}, {22050, 2},
	} {
		in := types.Waveform{SampleRate: 24000, Channels: make([][]float64, tc.channels)}
		for c := range in.Channels {
			in.Channels[c] = make([]float64, tc.frames)
			for i := range in.Channels[c] {
				in.Channels[c][i] = float64((i+c)%7-3) / 8
			}
		}

		var buf bytes.Buffer
		if err := codec.NewWAVEncoder().Encode(&buf, in); err != nil {
			t.Fatalf("%d frames: Encode error: %v", tc.frames, err)
		}
		pcm, err := codec.NewWAVDecoder().Decode(&buf)
		if err != nil {
			t.Fatalf("%d frames: Decode error: %v", tc.frames, err)
		}
		if pcm.Frames() != tc.frames || pcm.Channels != tc.channels || pcm.SampleRate != 24000 {
			t.Fatalf("%d frames: got %d x %d at %d Hz", tc.frames, pcm.Frames(), pcm.Channels, pcm.SampleRate)
		}
		out := codec.ToWaveform(pcm)
		last := tc.frames - 1
		for c := range out.Channels {
			if math.Abs(out.Channels[c][last]-in.Channels[c][last]) > 1.0/32767 {
				t.Fatalf("%d frames: last sample of channel %d is %v, want %v", tc.frames, c, out.Channels[c][last], in.Channels[c][last])
			}
		}
	}
}

func TestWAVEncoder_Rejects(t *testing.T) {
	var buf bytes.Buffer
	if err := codec.NewWAVEncoder().Encode(&buf, types.Waveform{SampleRate: types.SampleRate}); err == nil {
		t.Errorf("expected error for waveform without channels")
	}
	if err := codec.NewWAVEncoder().Encode(&buf, types.NewMono(0, []float64{0})); err == nil {
		t.Errorf("expected error for zero sample rate")
	}
}

func TestRawPCMDecoder(t *testing.T) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, []int16{32767, -32767, 0, 16384}); err != nil {
		t.Fatal(err)
	}
	dec, err := codec.NewDecoder(types.PCMFormat, 24000, 1)
	if err != nil {
		t.Fatalf("NewDecoder error: %v", err)
	}
	pcm, err := dec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	w := codec.ToWaveform(pcm)
	if w.SampleRate != 24000 || !w.IsMono() || w.Len() != 4 {
		t.Fatalf("unexpected waveform shape: rate %d, %d channels, %d frames", w.SampleRate, w.NumChannels(), w.Len())
	}
	if w.Channels[0][0] != 1 || w.Channels[0][1] != -1 || w.Channels[0][2] != 0 {
		t.Errorf("unexpected scaling: %v", w.Channels[0])
	}
}

func TestNewDecoder(t *testing.T) {
	for _, f := range []types.AudioFormat{types.MP3Format, types.WAVFormat, types.PCMFormat} {
		if _, err := codec.NewDecoder(f, types.SampleRate, 1); err != nil {
			t.Errorf("format %s: unexpected error %v", f, err)
		}
	}
	if _, err := codec.NewDecoder("ogg", types.SampleRate, 1); err == nil {
		t.Errorf("expected error for unsupported format")
	}
}

func TestDecoders_RejectGarbage(t *testing.T) {
	garbage := []byte("this is not audio at all")
	if _, err := codec.NewWAVDecoder().Decode(bytes.NewReader(garbage)); err == nil {
		t.Errorf("expected wav decode error")
	}
	if _, err := codec.NewMP3Decoder().Decode(bytes.NewReader(garbage)); err == nil {
		t.Errorf("expected mp3 decode error")
	}
}
