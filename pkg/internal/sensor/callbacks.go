package sensor

import (
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/logschema"
)

// RegisterOnStageStart registers callbacks invoked when a stage begins.
func (s *Sensor) RegisterOnStageStart(callback ...func(types.ComponentMetadata, string)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnStageStart = append(s.OnStageStart, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnStageStart invokes registered stage start callbacks.
func (s *Sensor) InvokeOnStageStart(c types.ComponentMetadata, stage string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnStageStart) {
		if cb == nil {
			continue
		}
		cb(c, stage)
	}
	s.NotifyLoggers(types.DebugLevel, "InvokeOnStageStart", "component", s.componentMetadata, "target", c, logschema.FieldStage, stage)
}

// RegisterOnStageComplete registers callbacks invoked when a stage succeeds.
func (s *Sensor) RegisterOnStageComplete(callback ...func(types.ComponentMetadata, string, time.Duration)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnStageComplete = append(s.OnStageComplete, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnStageComplete invokes registered stage completion callbacks.
func (s *Sensor) InvokeOnStageComplete(c types.ComponentMetadata, stage string, elapsed time.Duration) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnStageComplete) {
		if cb == nil {
			continue
		}
		cb(c, stage, elapsed)
	}
	s.NotifyLoggers(types.DebugLevel, "InvokeOnStageComplete", "component", s.componentMetadata, "target", c, logschema.FieldStage, stage, logschema.FieldElapsed, elapsed)
}

// RegisterOnError registers callbacks invoked when a stage fails.
func (s *Sensor) RegisterOnError(callback ...func(types.ComponentMetadata, string, error)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnError = append(s.OnError, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnError invokes registered error callbacks.
func (s *Sensor) InvokeOnError(c types.ComponentMetadata, stage string, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnError) {
		if cb == nil {
			continue
		}
		cb(c, stage, err)
	}
	s.NotifyLoggers(types.DebugLevel, "InvokeOnError", "component", s.componentMetadata, "target", c, logschema.FieldStage, stage, logschema.FieldError, err)
}

// RegisterOnSilentMix registers callbacks invoked when a mix is too quiet to normalize.
func (s *Sensor) RegisterOnSilentMix(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnSilentMix = append(s.OnSilentMix, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnSilentMix invokes registered silent mix callbacks.
func (s *Sensor) InvokeOnSilentMix(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSilentMix) {
		if cb == nil {
			continue
		}
		cb(c)
	}
}

// RegisterOnSessionWritten registers callbacks invoked with the path of a written session.
func (s *Sensor) RegisterOnSessionWritten(callback ...func(types.ComponentMetadata, string)) {
	if len(callback) == 0 {
		return
	}
	s.callbackLock.Lock()
	s.OnSessionWritten = append(s.OnSessionWritten, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnSessionWritten invokes registered session written callbacks.
func (s *Sensor) InvokeOnSessionWritten(c types.ComponentMetadata, path string) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSessionWritten) {
		if cb == nil {
			continue
		}
		cb(c, path)
	}
}
