package analysis_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/meditation/pkg/internal/analysis"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

func sine(freq, amp float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/types.SampleRate)
	}
	return out
}

func TestSummarize_DominantFrequency(t *testing.T) {
	w := types.NewMono(types.SampleRate, sine(11, 1, 10*types.SampleRate))
	s := analysis.Summarize(w)

	if math.Abs(s.DominantFrequency-11) > 0.1 {
		t.Errorf("expected dominant frequency near 11 Hz, got %v", s.DominantFrequency)
	}
	if math.Abs(s.Peak-1) > 1e-6 {
		t.Errorf("expected peak 1, got %v", s.Peak)
	}
	if math.Abs(s.RMS-1/math.Sqrt2) > 1e-3 {
		t.Errorf("expected rms 0.707, got %v", s.RMS)
	}
	if s.Frames != 10*types.SampleRate || math.Abs(s.Seconds-10) > 1e-9 {
		t.Errorf("unexpected length %d frames, %v s", s.Frames, s.Seconds)
	}
}

func TestSummarize_AveragesChannels(t *testing.T) {
	n := 1 << 14
	w := types.Waveform{SampleRate: types.SampleRate, Channels: [][]float64{sine(440, 0.8, n), sine(440, 0.4, n)}}
	s := analysis.SummarizeWindow(w, 0)

	bin := float64(types.SampleRate) / float64(n)
	if math.Abs(s.DominantFrequency-440) > bin {
		t.Errorf("expected 440 Hz within one bin, got %v", s.DominantFrequency)
	}
	if math.Abs(s.Peak-0.8) > 1e-3 {
		t.Errorf("expected peak 0.8, got %v", s.Peak)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := analysis.Summarize(types.Waveform{SampleRate: types.SampleRate})
	if s.Frames != 0 || s.Peak != 0 || s.DominantFrequency != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}
