package types

import (
	"context"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Synthesizer produces the mono source material of a session.
type Synthesizer interface {
	Tone(band string, duration float64) (Waveform, error)
	Special(name string, duration float64) (Waveform, error)
	Preset(name string) (Preset, error)
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
}

// Renderer places a signal in the virtual room and returns stereo.
type Renderer interface {
	Render(ctx context.Context, wave Waveform, position r3.Vec, movement *Movement) (Waveform, error)
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
}

// VoiceSynthesizer turns a guidance script into a positioned stereo voice track.
type VoiceSynthesizer interface {
	Synthesize(ctx context.Context, script string) (Waveform, error)
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
}

// SessionWriter persists a finished waveform and returns the path written.
type SessionWriter interface {
	Write(wave Waveform, name string) (string, error)
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
}

// Publisher announces a written session to downstream systems.
type Publisher interface {
	Publish(ctx context.Context, session Session) error
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
}

// Speech is an encoded utterance returned by a text-to-speech engine. SampleRate is
// authoritative only for headerless PCM; containers carry their own rate.
type Speech struct {
	Data       []byte
	Format     AudioFormat
	SampleRate int
}

// SpeechEngine converts text in the given language to encoded speech.
type SpeechEngine interface {
	Synthesize(ctx context.Context, text, lang string) (Speech, error)
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
}

// Sensor receives callbacks as a session moves through its stages.
type Sensor interface {
	InvokeOnStageStart(c ComponentMetadata, stage string)
	InvokeOnStageComplete(c ComponentMetadata, stage string, elapsed time.Duration)
	InvokeOnError(c ComponentMetadata, stage string, err error)
	InvokeOnSilentMix(c ComponentMetadata)
	InvokeOnSessionWritten(c ComponentMetadata, path string)
	RegisterOnStageStart(callback ...func(ComponentMetadata, string))
	RegisterOnStageComplete(callback ...func(ComponentMetadata, string, time.Duration))
	RegisterOnError(callback ...func(ComponentMetadata, string, error))
	RegisterOnSilentMix(callback ...func(ComponentMetadata))
	RegisterOnSessionWritten(callback ...func(ComponentMetadata, string))
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
}
