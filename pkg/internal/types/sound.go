package types

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Band is a named brainwave frequency range.
type Band struct {
	Name string
	Low  float64
	High float64
}

// Midpoint returns the representative frequency of the band.
func (b Band) Midpoint() float64 { return (b.Low + b.High) / 2 }

// DefaultBands returns the five brainwave bands keyed by name.
func DefaultBands() map[string]Band {
	return map[string]Band{
		"gamma": {Name: "gamma", Low: 30, High: 50},
		"beta":  {Name: "beta", Low: 14, High: 30},
		"alpha": {Name: "alpha", Low: 8, High: 14},
		"theta": {Name: "theta", Low: 4, High: 8},
		"delta": {Name: "delta", Low: 0.5, High: 4},
	}
}

// PresetKind selects the generator used for a special sound.
type PresetKind int

const (
	BowlsPreset PresetKind = iota // Sum of sines with 2nd and 3rd harmonics.
	ChantPreset                   // Base frequency plus integer harmonics.
	ChimesPreset                  // Randomly timed decaying bursts.
)

// Names of the built-in special sounds.
const (
	CrystalBowls = "crystal_bowls"
	OmChant      = "om_chant"
	WindChimes   = "wind_chimes"
)

// Preset describes one special sound.
type Preset struct {
	Name        string
	Kind        PresetKind
	Frequencies []float64 // Bowl or chime frequencies.
	BaseFreq    float64   // Chant fundamental.
	Harmonics   []float64 // Chant harmonic multipliers.
	Duration    float64   // Default duration in seconds.
	Position    r3.Vec    // Position in the virtual room, metres.
}

// PresetTable maps sound identifiers to presets.
type PresetTable map[string]Preset

// DefaultPresets returns the three built-in special sounds.
func DefaultPresets() PresetTable {
	return PresetTable{
		CrystalBowls: {
			Name:        CrystalBowls,
			Kind:        BowlsPreset,
			Frequencies: []float64{396, 417, 528, 639, 741, 852},
			Duration:    3.0,
			Position:    r3.Vec{X: 2.5, Y: 2.5, Z: 1.5},
		},
		OmChant: {
			Name:      OmChant,
			Kind:      ChantPreset,
			BaseFreq:  136.1,
			Harmonics: []float64{2, 3, 4},
			Duration:  4.0,
			Position:  r3.Vec{X: 2.5, Y: 0, Z: 1.5},
		},
		WindChimes: {
			Name:        WindChimes,
			Kind:        ChimesPreset,
			Frequencies: []float64{1318.51, 1174.66, 880, 987.77, 783.99},
			Duration:    2.0,
			Position:    r3.Vec{X: 0, Y: 2.5, Z: 2},
		},
	}
}

// MovementPattern names a trajectory shape.
type MovementPattern string

const (
	CircularMovement MovementPattern = "circular"
	SpiralMovement   MovementPattern = "spiral"
)

// Movement is a time-parameterised trajectory applied to a rendered signal.
type Movement struct {
	Pattern MovementPattern
	Speed   float64
}

// Session is the end product of one generation run.
type Session struct {
	ID       uuid.UUID
	Wave     Waveform
	Path     string
	Duration float64
	Band     string
	Sounds   []string
	Voiced   bool
}
