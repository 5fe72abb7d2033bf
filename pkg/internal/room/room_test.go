package room_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/joeydtaylor/meditation/pkg/internal/room"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"gonum.org/v1/gonum/spatial/r3"
)

func directConvolve(x, h []float64) []float64 {
	out := make([]float64, len(x)+len(h)-1)
	for i, xv := range x {
		for j, hv := range h {
			out[i+j] += xv * hv
		}
	}
	return out
}

func TestConvolve_MatchesDirectAcrossBlocks(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	x := make([]float64, 10000)
	h := make([]float64, 300)
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}
	for i := range h {
		h[i] = rng.Float64()*2 - 1
	}

	got := room.Convolve(x, h)
	want := directConvolve(x, h)
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-8 {
			t.Fatalf("sample %d: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestConvolve_Empty(t *testing.T) {
	if out := room.Convolve(nil, []float64{1}); out != nil {
		t.Fatalf("expected nil for empty input, got %v", out)
	}
}

func TestComputeRIR_DirectPathPeak(t *testing.T) {
	cfg := types.DefaultRoomConfig()
	cfg.MaxOrder = 0

	r, err := room.New(cfg, types.SampleRate)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	src := r3.Vec{X: 1, Y: 2.5, Z: 1.2}
	if err := r.AddSource(src, []float64{1}); err != nil {
		t.Fatalf("AddSource error: %v", err)
	}
	if err := r.AddMicArray(cfg.Mics); err != nil {
		t.Fatalf("AddMicArray error: %v", err)
	}
	if err := r.ComputeRIR(); err != nil {
		t.Fatalf("ComputeRIR error: %v", err)
	}

	mic := r.Mics()[1]
	dist := r3.Norm(r3.Sub(src, mic))
	delay := dist / cfg.SoundSpeed * types.SampleRate
	wantPeak := int(math.Round(delay)) + (cfg.FractionalLen-1)/2

	rir := r.RIR(1, 0)
	peak := 0
	for i, v := range rir {
		if v > rir[peak] {
			peak = i
		}
	}
	if peak != wantPeak {
		t.Fatalf("expected direct path peak at %d, got %d", wantPeak, peak)
	}
	if rir[peak] <= 0 || rir[peak] > 1/(4*math.Pi*dist)+1e-9 {
		t.Fatalf("unexpected direct path gain %v", rir[peak])
	}
}

func TestSimulate_LengthAndSilenceBeforeArrival(t *testing.T) {
	cfg := types.DefaultRoomConfig()
	r, err := room.New(cfg, types.SampleRate)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	signal := make([]float64, 2048)
	signal[0] = 1
	if err := r.AddSource(r3.Vec{X: 0, Y: 2.5, Z: 2}, signal); err != nil {
		t.Fatalf("AddSource error: %v", err)
	}
	if err := r.AddMicArray(cfg.Mics); err != nil {
		t.Fatalf("AddMicArray error: %v", err)
	}

	out, err := r.Simulate()
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 microphones, got %d", len(out))
	}
	want := 0
	for m := range out {
		if n := len(signal) + len(r.RIR(m, 0)) - 1; n > want {
			want = n
		}
	}
	for m, ch := range out {
		if len(ch) != want {
			t.Fatalf("mic %d: expected %d samples, got %d", m, want, len(ch))
		}
	}
	if math.Abs(out[0][0]) > 1e-9 {
		t.Fatalf("expected silence before the direct path arrives, got %v", out[0][0])
	}
}

func TestRoom_Errors(t *testing.T) {
	cfg := types.DefaultRoomConfig()

	bad := cfg
	bad.Absorption = 1
	if _, err := room.New(bad, types.SampleRate); !errors.Is(err, room.ErrInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}

	r, _ := room.New(cfg, types.SampleRate)
	if err := r.AddSource(r3.Vec{X: 6, Y: 1, Z: 1}, []float64{1}); !errors.Is(err, room.ErrOutsideRoom) {
		t.Fatalf("expected outside room, got %v", err)
	}
	if _, err := r.Simulate(); !errors.Is(err, room.ErrNoSources) {
		t.Fatalf("expected no sources, got %v", err)
	}
	if err := r.AddSource(r3.Vec{X: 1, Y: 1, Z: 1}, []float64{1}); err != nil {
		t.Fatalf("AddSource error: %v", err)
	}
	if _, err := r.Simulate(); !errors.Is(err, room.ErrNoMics) {
		t.Fatalf("expected no mics, got %v", err)
	}
}

func TestComputeRIR_CoincidentSource(t *testing.T) {
	cfg := types.DefaultRoomConfig()
	r, _ := room.New(cfg, types.SampleRate)
	mics := cfg.Mics
	mics.Count = 1
	mics.Radius = 0

	if err := r.AddSource(r3.Vec{X: mics.CenterX, Y: mics.CenterY, Z: mics.Height}, []float64{1}); err != nil {
		t.Fatalf("AddSource error: %v", err)
	}
	if err := r.AddMicArray(mics); err != nil {
		t.Fatalf("AddMicArray error: %v", err)
	}
	if err := r.ComputeRIR(); !errors.Is(err, room.ErrCoincident) {
		t.Fatalf("expected coincident error, got %v", err)
	}
}
