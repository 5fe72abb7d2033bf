// Package spatial places signals in the virtual room and optionally sweeps them along a
// trajectory. Every Render call builds its own room so no source or reverberant tail survives
// from one call to the next.
package spatial

import (
	"sync"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
)

const defaultBlockSize = 8192

// Renderer renders mono or stereo input to stereo through a simulated room.
type Renderer struct {
	componentMetadata types.ComponentMetadata
	sampleRate        int
	room              types.RoomConfig
	blockSize         int
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewRenderer creates a renderer for the default room at 44100 Hz.
func NewRenderer(options ...types.Option[*Renderer]) *Renderer {
	r := &Renderer{
		componentMetadata: types.ComponentMetadata{
			Type: "RENDERER",
			ID:   utils.GenerateUniqueHash(),
		},
		sampleRate: types.SampleRate,
		room:       types.DefaultRoomConfig(),
		blockSize:  defaultBlockSize,
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// GetComponentMetadata returns the renderer metadata.
func (r *Renderer) GetComponentMetadata() types.ComponentMetadata {
	return r.componentMetadata
}

// SetComponentMetadata updates the renderer name and id.
func (r *Renderer) SetComponentMetadata(name string, id string) {
	r.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: r.componentMetadata.Type}
}

// RoomConfig returns the room every render is built from.
func (r *Renderer) RoomConfig() types.RoomConfig { return r.room }
