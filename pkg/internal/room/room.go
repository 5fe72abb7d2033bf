// Package room simulates a rectangular room with the image-source method. Sources and
// microphones are placed in the room, an impulse response is computed for every
// source/microphone pair and the source signals are convolved with them.
//
// A Room accumulates sources; callers that need independent renders build a new Room each time.
package room

import (
	"errors"
	"fmt"
	"math"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	ErrNoSources     = errors.New("room has no sources")
	ErrNoMics        = errors.New("room has no microphones")
	ErrOutsideRoom   = errors.New("position outside room")
	ErrCoincident    = errors.New("source coincides with microphone")
	ErrInvalidConfig = errors.New("invalid room configuration")
)

type source struct {
	pos    r3.Vec
	signal []float64
}

// Room is a shoebox room with sources, microphones and their impulse responses.
type Room struct {
	cfg        types.RoomConfig
	sampleRate int
	beta       float64
	sources    []source
	mics       []r3.Vec
	rirs       [][][]float64 // [mic][source]
}

// New validates cfg and returns an empty room.
func New(cfg types.RoomConfig, sampleRate int) (*Room, error) {
	d := cfg.Dimensions
	switch {
	case d.X <= 0 || d.Y <= 0 || d.Z <= 0:
		return nil, fmt.Errorf("%w: dimensions %v", ErrInvalidConfig, d)
	case cfg.Absorption < 0 || cfg.Absorption >= 1:
		return nil, fmt.Errorf("%w: absorption %v", ErrInvalidConfig, cfg.Absorption)
	case cfg.MaxOrder < 0:
		return nil, fmt.Errorf("%w: max order %d", ErrInvalidConfig, cfg.MaxOrder)
	case cfg.SoundSpeed <= 0:
		return nil, fmt.Errorf("%w: sound speed %v", ErrInvalidConfig, cfg.SoundSpeed)
	case cfg.FractionalLen < 1 || cfg.FractionalLen%2 == 0:
		return nil, fmt.Errorf("%w: fractional delay length %d", ErrInvalidConfig, cfg.FractionalLen)
	case sampleRate <= 0:
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, sampleRate)
	}
	return &Room{
		cfg:        cfg,
		sampleRate: sampleRate,
		beta:       math.Sqrt(1 - cfg.Absorption),
	}, nil
}

// AddSource places a source emitting signal at pos. Positions on a wall are allowed.
func (r *Room) AddSource(pos r3.Vec, signal []float64) error {
	if !r.inside(pos) {
		return fmt.Errorf("%w: source at %v", ErrOutsideRoom, pos)
	}
	r.sources = append(r.sources, source{pos: pos, signal: signal})
	r.rirs = nil
	return nil
}

// AddMicArray places a circular array of microphones in the horizontal plane.
func (r *Room) AddMicArray(arr types.MicArray) error {
	if arr.Count < 1 {
		return fmt.Errorf("%w: microphone count %d", ErrInvalidConfig, arr.Count)
	}
	mics := make([]r3.Vec, arr.Count)
	for m := range mics {
		phi := arr.Phi0 + 2*math.Pi*float64(m)/float64(arr.Count)
		mics[m] = r3.Vec{
			X: arr.CenterX + arr.Radius*math.Cos(phi),
			Y: arr.CenterY + arr.Radius*math.Sin(phi),
			Z: arr.Height,
		}
		if !r.inside(mics[m]) {
			return fmt.Errorf("%w: microphone at %v", ErrOutsideRoom, mics[m])
		}
	}
	r.mics = append(r.mics, mics...)
	r.rirs = nil
	return nil
}

// Mics returns the microphone positions.
func (r *Room) Mics() []r3.Vec { return append([]r3.Vec(nil), r.mics...) }

// ComputeRIR builds the impulse response of every source/microphone pair.
func (r *Room) ComputeRIR() error {
	if len(r.sources) == 0 {
		return ErrNoSources
	}
	if len(r.mics) == 0 {
		return ErrNoMics
	}
	rirs := make([][][]float64, len(r.mics))
	for m, mic := range r.mics {
		rirs[m] = make([][]float64, len(r.sources))
		for s, src := range r.sources {
			rir, err := r.impulseResponse(src.pos, mic)
			if err != nil {
				return err
			}
			rirs[m][s] = rir
		}
	}
	r.rirs = rirs
	return nil
}

// RIR returns the impulse response between source s and microphone m.
func (r *Room) RIR(m, s int) []float64 {
	if m >= len(r.rirs) || s >= len(r.rirs[m]) {
		return nil
	}
	return r.rirs[m][s]
}

// Simulate convolves every source with its impulse responses and sums them per microphone.
// Each output channel is as long as the longest source signal plus impulse response, minus one.
func (r *Room) Simulate() ([][]float64, error) {
	if r.rirs == nil {
		if err := r.ComputeRIR(); err != nil {
			return nil, err
		}
	}

	n := 0
	for m := range r.mics {
		for s, src := range r.sources {
			if l := len(src.signal) + len(r.rirs[m][s]) - 1; l > n {
				n = l
			}
		}
	}

	out := make([][]float64, len(r.mics))
	for m := range r.mics {
		out[m] = make([]float64, n)
		for s, src := range r.sources {
			y := Convolve(src.signal, r.rirs[m][s])
			for i, v := range y {
				out[m][i] += v
			}
		}
	}
	return out, nil
}

func (r *Room) inside(p r3.Vec) bool {
	d := r.cfg.Dimensions
	return p.X >= 0 && p.X <= d.X && p.Y >= 0 && p.Y <= d.Y && p.Z >= 0 && p.Z <= d.Z
}
