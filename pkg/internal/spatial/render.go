package spatial

import (
	"context"
	"errors"
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/room"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/logschema"
	"gonum.org/v1/gonum/spatial/r3"
)

// Render places channel 0 of wave at position, records it with the room's microphone array
// and returns one channel per microphone. The output keeps the input length unless the room
// config asks for the reverberant tail. A non-nil movement sweeps the result along its
// trajectory.
func (r *Renderer) Render(ctx context.Context, wave types.Waveform, position r3.Vec, movement *types.Movement) (types.Waveform, error) {
	if err := ctx.Err(); err != nil {
		return types.Waveform{}, err
	}
	if wave.NumChannels() == 0 || wave.Len() == 0 {
		return types.Waveform{}, &types.RenderError{Op: "input", Err: errors.New("empty waveform")}
	}
	if movement != nil {
		if err := validateMovement(*movement); err != nil {
			return types.Waveform{}, err
		}
	}

	start := time.Now()
	stereo := wave.Stereo()

	rm, err := room.New(r.room, r.sampleRate)
	if err != nil {
		return types.Waveform{}, &types.RenderError{Op: "room", Err: err}
	}
	if err := rm.AddSource(position, stereo.Channels[0]); err != nil {
		return types.Waveform{}, &types.RenderError{Op: "source", Err: err}
	}
	if err := rm.AddMicArray(r.room.Mics); err != nil {
		return types.Waveform{}, &types.RenderError{Op: "microphones", Err: err}
	}
	if err := rm.ComputeRIR(); err != nil {
		r.NotifyLoggers(types.ErrorLevel, "Render: impulse response failed", "component", r.componentMetadata, logschema.FieldPosition, position, logschema.FieldError, err)
		return types.Waveform{}, &types.RenderError{Op: "rir", Err: err}
	}
	channels, err := rm.Simulate()
	if err != nil {
		return types.Waveform{}, &types.RenderError{Op: "simulate", Err: err}
	}

	switch {
	case len(channels) == 1:
		right := append([]float64(nil), channels[0]...)
		channels = append(channels, right)
	case len(channels) > 2:
		channels = channels[:2]
	}
	if !r.room.KeepTail {
		n := wave.Len()
		for c := range channels {
			channels[c] = channels[c][:n]
		}
	}

	out := types.Waveform{SampleRate: r.sampleRate, Channels: channels}
	if movement != nil {
		if err := Sweep(out, *movement, r.blockSize); err != nil {
			return types.Waveform{}, err
		}
	}

	r.NotifyLoggers(types.DebugLevel, "Render: placed source",
		"component", r.componentMetadata,
		logschema.FieldPosition, position,
		logschema.FieldFrames, out.Len(),
		"moving", movement != nil,
		logschema.FieldElapsed, time.Since(start),
	)
	return out, nil
}

func validateMovement(m types.Movement) error {
	switch m.Pattern {
	case types.CircularMovement, types.SpiralMovement:
		return nil
	default:
		return &types.InvalidArgumentError{Kind: "movement pattern", Value: string(m.Pattern)}
	}
}
