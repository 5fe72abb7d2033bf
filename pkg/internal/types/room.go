package types

import "gonum.org/v1/gonum/spatial/r3"

// MicArray is a circular microphone array in the horizontal plane.
type MicArray struct {
	CenterX float64
	CenterY float64
	Height  float64
	Count   int
	Radius  float64
	Phi0    float64
}

// RoomConfig describes the virtual shoebox room used for spatial rendering.
type RoomConfig struct {
	Dimensions    r3.Vec  // Room size in metres.
	Absorption    float64 // Energy absorption of every wall, 0..1.
	MaxOrder      int     // Maximum image-source reflection order.
	SoundSpeed    float64 // Metres per second.
	FractionalLen int     // Taps of the fractional-delay filter; odd.
	Mics          MicArray
	KeepTail      bool // Keep the reverberant tail instead of trimming to the input length.
}

// DefaultRoomConfig returns the 5m x 5m x 3m room with a two-microphone array at its centre.
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		Dimensions:    r3.Vec{X: 5, Y: 5, Z: 3},
		Absorption:    0.2,
		MaxOrder:      3,
		SoundSpeed:    343,
		FractionalLen: 81,
		Mics: MicArray{
			CenterX: 2.5,
			CenterY: 2.5,
			Height:  1.2,
			Count:   2,
			Radius:  0.0875,
			Phi0:    0,
		},
	}
}
