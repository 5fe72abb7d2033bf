package sensor

import (
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(logger...)
	}
}

// WithOnStageStartFunc registers callbacks for stage starts.
func WithOnStageStartFunc(callback ...func(types.ComponentMetadata, string)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnStageStart(callback...)
	}
}

// WithOnStageCompleteFunc registers callbacks for stage completions.
func WithOnStageCompleteFunc(callback ...func(types.ComponentMetadata, string, time.Duration)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnStageComplete(callback...)
	}
}

// WithOnErrorFunc registers callbacks for stage failures.
func WithOnErrorFunc(callback ...func(types.ComponentMetadata, string, error)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnError(callback...)
	}
}

// WithOnSilentMixFunc registers callbacks for silent mixes.
func WithOnSilentMixFunc(callback ...func(types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSilentMix(callback...)
	}
}

// WithOnSessionWrittenFunc registers callbacks for written sessions.
func WithOnSessionWrittenFunc(callback ...func(types.ComponentMetadata, string)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSessionWritten(callback...)
	}
}
