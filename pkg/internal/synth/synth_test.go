package synth_test

import (
	"errors"
	"math"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/joeydtaylor/meditation/pkg/internal/synth"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTone_AlphaMidpoint(t *testing.T) {
	s := synth.NewSynthesizer()

	w, err := s.Tone("alpha", 2)
	if err != nil {
		t.Fatalf("Tone error: %v", err)
	}
	if !w.IsMono() || w.Len() != 2*types.SampleRate {
		t.Fatalf("expected mono with %d frames, got %d channels x %d", 2*types.SampleRate, w.NumChannels(), w.Len())
	}

	n := w.Len()
	step := 2.0 / float64(n-1)
	for _, i := range []int{0, 1000, 20000, n - 1} {
		want := math.Sin(2 * math.Pi * 11 * float64(i) * step)
		if math.Abs(w.Channels[0][i]-want) > 1e-9 {
			t.Fatalf("sample %d: want %v, got %v", i, want, w.Channels[0][i])
		}
	}
}

func TestTone_UnknownBand(t *testing.T) {
	s := synth.NewSynthesizer()

	_, err := s.Tone("epsilon", 1)
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if !strings.Contains(err.Error(), "epsilon") {
		t.Fatalf("error should name the band: %v", err)
	}
}

func TestTone_NonPositiveDuration(t *testing.T) {
	s := synth.NewSynthesizer()

	_, err := s.Tone("alpha", -1)
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if msg := err.Error(); strings.Contains(msg, "unknown") || !strings.Contains(msg, "must be positive") {
		t.Fatalf("unexpected duration message: %v", msg)
	}
}

func TestSpecial_AllPresetsNormalized(t *testing.T) {
	s := synth.NewSynthesizer(synth.WithSeed(7))

	for _, name := range []string{types.CrystalBowls, types.OmChant, types.WindChimes} {
		w, err := s.Special(name, 3)
		if err != nil {
			t.Fatalf("%s: Special error: %v", name, err)
		}
		if w.Len() != 3*types.SampleRate {
			t.Fatalf("%s: expected %d frames, got %d", name, 3*types.SampleRate, w.Len())
		}
		if peak := w.Peak(); peak != 1.0 {
			t.Fatalf("%s: expected peak exactly 1.0, got %v", name, peak)
		}
	}
}

func TestSpecial_UnknownSound(t *testing.T) {
	s := synth.NewSynthesizer()

	w, err := s.Special("gong", 1)
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	var iae *types.InvalidArgumentError
	if !errors.As(err, &iae) || iae.Value != "gong" {
		t.Fatalf("expected error naming gong, got %v", err)
	}
	if w.Len() != 0 {
		t.Fatalf("expected no audio on error")
	}
}

func TestSpecial_DefaultDuration(t *testing.T) {
	s := synth.NewSynthesizer()

	w, err := s.Special(types.OmChant, 0)
	if err != nil {
		t.Fatalf("Special error: %v", err)
	}
	if w.Len() != 4*types.SampleRate {
		t.Fatalf("expected default 4s, got %d frames", w.Len())
	}
}

func TestSpecial_ChimesSeedIsReproducible(t *testing.T) {
	a, err := synth.NewSynthesizer(synth.WithSeed(42)).Special(types.WindChimes, 2.5)
	if err != nil {
		t.Fatalf("Special error: %v", err)
	}
	b, err := synth.NewSynthesizer(synth.WithSeed(42)).Special(types.WindChimes, 2.5)
	if err != nil {
		t.Fatalf("Special error: %v", err)
	}
	for i := range a.Channels[0] {
		if a.Channels[0][i] != b.Channels[0][i] {
			t.Fatalf("sample %d differs between equal seeds", i)
		}
	}
}

func TestSpecial_ShortChimesStaySilent(t *testing.T) {
	logger := &countingLogger{level: types.DebugLevel}
	s := synth.NewSynthesizer(synth.WithSeed(1), synth.WithLogger(logger))

	w, err := s.Special(types.WindChimes, 0.5)
	if err != nil {
		t.Fatalf("Special error: %v", err)
	}
	for _, v := range w.Channels[0] {
		if v != 0 {
			t.Fatalf("expected silence, got %v", v)
		}
	}
	if atomic.LoadInt32(&logger.warn) == 0 {
		t.Fatalf("expected a warning for the silent preset")
	}
}

func TestWithPresets_Override(t *testing.T) {
	s := synth.NewSynthesizer(synth.WithPresets(types.PresetTable{
		"drone": {Name: "drone", Kind: types.ChantPreset, BaseFreq: 110, Harmonics: []float64{2}, Duration: 1, Position: r3.Vec{X: 1, Y: 1, Z: 1}},
	}))

	if _, err := s.Special("drone", 0.5); err != nil {
		t.Fatalf("expected custom preset, got %v", err)
	}
	if _, err := s.Special(types.CrystalBowls, 0.5); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("expected built-in preset to be replaced, got %v", err)
	}
}

type countingLogger struct {
	level types.LogLevel
	debug int32
	info  int32
	warn  int32
	err   int32
}

func (l *countingLogger) GetLevel() types.LogLevel   { return l.level }
func (l *countingLogger) SetLevel(lvl types.LogLevel) { l.level = lvl }
func (l *countingLogger) Debug(string, ...interface{}) {
	atomic.AddInt32(&l.debug, 1)
}
func (l *countingLogger) Info(string, ...interface{}) {
	atomic.AddInt32(&l.info, 1)
}
func (l *countingLogger) Warn(string, ...interface{}) {
	atomic.AddInt32(&l.warn, 1)
}
func (l *countingLogger) Error(string, ...interface{}) {
	atomic.AddInt32(&l.err, 1)
}
func (l *countingLogger) DPanic(string, ...interface{})             {}
func (l *countingLogger) Panic(string, ...interface{})              {}
func (l *countingLogger) Fatal(string, ...interface{})              {}
func (l *countingLogger) Flush() error                              { return nil }
func (l *countingLogger) AddSink(string, types.SinkConfig) error    { return nil }
func (l *countingLogger) RemoveSink(string) error                   { return nil }
func (l *countingLogger) ListSinks() ([]string, error)              { return nil, nil }
