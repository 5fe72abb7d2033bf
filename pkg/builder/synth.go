package builder

import (
	"github.com/joeydtaylor/meditation/pkg/internal/spatial"
	"github.com/joeydtaylor/meditation/pkg/internal/synth"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

type Waveform = types.Waveform

type SynthesizerOption = types.Option[*synth.Synthesizer]

type RendererOption = types.Option[*spatial.Renderer]

type Movement = types.Movement

type RoomConfig = types.RoomConfig

type PresetTable = types.PresetTable

// Special sound names.
const (
	CrystalBowls = types.CrystalBowls
	OmChant      = types.OmChant
	WindChimes   = types.WindChimes
)

// Movement patterns.
const (
	CircularMovement = types.CircularMovement
	SpiralMovement   = types.SpiralMovement
)

// ErrInvalidArgument matches every unknown sound, band or movement pattern error.
var ErrInvalidArgument = types.ErrInvalidArgument

func DefaultRoomConfig() RoomConfig {
	return types.DefaultRoomConfig()
}

func DefaultPresets() PresetTable {
	return types.DefaultPresets()
}

func NewSynthesizer(options ...SynthesizerOption) types.Synthesizer {
	return synth.NewSynthesizer(options...)
}

func SynthesizerWithLogger(l ...types.Logger) SynthesizerOption {
	return synth.WithLogger(l...)
}

func SynthesizerWithSeed(seed uint64) SynthesizerOption {
	return synth.WithSeed(seed)
}

func SynthesizerWithPresets(presets PresetTable) SynthesizerOption {
	return synth.WithPresets(presets)
}

func NewRenderer(options ...RendererOption) types.Renderer {
	return spatial.NewRenderer(options...)
}

func RendererWithLogger(l ...types.Logger) RendererOption {
	return spatial.WithLogger(l...)
}

func RendererWithRoomConfig(cfg RoomConfig) RendererOption {
	return spatial.WithRoomConfig(cfg)
}
