package spatial

import "github.com/joeydtaylor/meditation/pkg/internal/types"

// WithLogger registers loggers for the renderer.
func WithLogger(l ...types.Logger) types.Option[*Renderer] {
	return func(r *Renderer) {
		r.ConnectLogger(l...)
	}
}

// WithRoomConfig replaces the room geometry.
func WithRoomConfig(cfg types.RoomConfig) types.Option[*Renderer] {
	return func(r *Renderer) {
		r.room = cfg
	}
}

// WithSampleRate overrides the rate used for impulse responses and trajectories.
func WithSampleRate(rate int) types.Option[*Renderer] {
	return func(r *Renderer) {
		if rate > 0 {
			r.sampleRate = rate
		}
	}
}

// WithBlockSize sets how many frames the movement warp processes at a time.
func WithBlockSize(n int) types.Option[*Renderer] {
	return func(r *Renderer) {
		if n > 0 {
			r.blockSize = n
		}
	}
}
