// Package sensor provides callback hooks for session telemetry. Components invoke the hooks as
// a session moves through its stages; callers register functions to observe them.
package sensor

import (
	"sync"
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
)

// Stage names reported by the composer.
const (
	StageBed       = "bed"
	StageVoice     = "voice"
	StageNormalize = "normalize"
	StageWrite     = "write"
	StagePublish   = "publish"
)

// Sensor holds the registered callbacks.
type Sensor struct {
	componentMetadata types.ComponentMetadata

	OnStageStart     []func(types.ComponentMetadata, string)
	OnStageComplete  []func(types.ComponentMetadata, string, time.Duration)
	OnError          []func(types.ComponentMetadata, string, error)
	OnSilentMix      []func(types.ComponentMetadata)
	OnSessionWritten []func(types.ComponentMetadata, string)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// GetComponentMetadata returns the sensor metadata.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

func snapshotCallbacks[T any](mu *sync.Mutex, callbacks []T) []T {
	mu.Lock()
	out := append([]T(nil), callbacks...)
	mu.Unlock()
	return out
}
