package builder

import (
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/composer"
	"github.com/joeydtaylor/meditation/pkg/internal/sensor"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

type Sensor = types.Sensor

type SensorOption = types.Option[types.Sensor]

type ComponentMetadata = types.ComponentMetadata

const (
	StageBed       = sensor.StageBed
	StageVoice     = sensor.StageVoice
	StageNormalize = sensor.StageNormalize
	StageWrite     = sensor.StageWrite
	StagePublish   = sensor.StagePublish
)

// NewSensor creates a sensor observing session stages.
func NewSensor(options ...SensorOption) Sensor {
	return sensor.NewSensor(options...)
}

func SensorWithLogger(l ...types.Logger) SensorOption {
	return sensor.WithLogger(l...)
}

func SensorWithOnStageStartFunc(callback ...func(ComponentMetadata, string)) SensorOption {
	return sensor.WithOnStageStartFunc(callback...)
}

func SensorWithOnStageCompleteFunc(callback ...func(ComponentMetadata, string, time.Duration)) SensorOption {
	return sensor.WithOnStageCompleteFunc(callback...)
}

func SensorWithOnErrorFunc(callback ...func(ComponentMetadata, string, error)) SensorOption {
	return sensor.WithOnErrorFunc(callback...)
}

func SensorWithOnSilentMixFunc(callback ...func(ComponentMetadata)) SensorOption {
	return sensor.WithOnSilentMixFunc(callback...)
}

func SensorWithOnSessionWrittenFunc(callback ...func(ComponentMetadata, string)) SensorOption {
	return sensor.WithOnSessionWrittenFunc(callback...)
}

func ComposerWithSensor(s ...Sensor) ComposerOption {
	return composer.WithSensor(s...)
}
