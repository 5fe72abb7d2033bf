package mixer_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/meditation/pkg/internal/mixer"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

func stereo(l, r []float64) types.Waveform {
	return types.Waveform{SampleRate: types.SampleRate, Channels: [][]float64{l, r}}
}

func TestFit_PadsAndTruncates(t *testing.T) {
	w := stereo([]float64{1, 2, 3}, []float64{4, 5, 6})

	padded := mixer.Fit(w, 5)
	if padded.Len() != 5 {
		t.Fatalf("expected 5 frames, got %d", padded.Len())
	}
	if padded.Channels[1][2] != 6 || padded.Channels[1][4] != 0 {
		t.Fatalf("unexpected padded channel: %v", padded.Channels[1])
	}

	cut := mixer.Fit(w, 2)
	if cut.Len() != 2 || cut.Channels[0][1] != 2 {
		t.Fatalf("unexpected truncated channel: %v", cut.Channels[0])
	}
}

func TestBlend_VoiceOverBed(t *testing.T) {
	voice := stereo([]float64{0.5, 0}, []float64{0, 0.5})
	bed := stereo([]float64{1, 1}, []float64{1, 1})

	out, err := mixer.Blend(voice, 0.3, bed)
	if err != nil {
		t.Fatalf("Blend error: %v", err)
	}
	if math.Abs(out.Channels[0][0]-0.8) > 1e-12 || math.Abs(out.Channels[1][0]-0.3) > 1e-12 {
		t.Fatalf("unexpected blend: %v", out.Channels)
	}
	if voice.Channels[0][0] != 0.5 {
		t.Fatalf("Blend must not mutate its inputs")
	}
}

func TestAddScaled_RejectsMismatch(t *testing.T) {
	dst := stereo(make([]float64, 3), make([]float64, 3))
	if err := mixer.AddScaled(dst, 1, stereo(make([]float64, 2), make([]float64, 2))); err == nil {
		t.Fatalf("expected length mismatch error")
	}
	if err := mixer.AddScaled(dst, 1, types.NewMono(types.SampleRate, make([]float64, 3))); err == nil {
		t.Fatalf("expected channel mismatch error")
	}
}

func TestNormalize_PeakAndIdempotence(t *testing.T) {
	w := stereo([]float64{0.1, -0.7, 0.3}, []float64{0.2, 0.35, -0.05})

	if !mixer.Normalize(w) {
		t.Fatalf("expected normalization to apply")
	}
	if got := mixer.Peak(w); got != 1.0 {
		t.Fatalf("expected peak 1.0, got %v", got)
	}
	if w.Channels[0][1] != -1.0 {
		t.Fatalf("expected the negative peak to map to -1, got %v", w.Channels[0][1])
	}

	before := w.Clone()
	mixer.Normalize(w)
	for c := range w.Channels {
		for i := range w.Channels[c] {
			if w.Channels[c][i] != before.Channels[c][i] {
				t.Fatalf("second normalization changed sample %d/%d", c, i)
			}
		}
	}
}

func TestNormalize_SilentBufferIsLeftAlone(t *testing.T) {
	w := stereo(make([]float64, 4), make([]float64, 4))
	if mixer.Normalize(w) {
		t.Fatalf("expected silent buffer to be skipped")
	}
	for _, ch := range w.Channels {
		for _, v := range ch {
			if v != 0 || math.IsNaN(v) {
				t.Fatalf("silent buffer was modified: %v", ch)
			}
		}
	}
}

func TestDuplicateToStereo_Independent(t *testing.T) {
	w := mixer.DuplicateToStereo(types.NewMono(types.SampleRate, []float64{1, 2}))
	if w.NumChannels() != 2 {
		t.Fatalf("expected 2 channels, got %d", w.NumChannels())
	}
	w.Channels[1][0] = 9
	if w.Channels[0][0] != 1 {
		t.Fatalf("channels must not alias")
	}
}
