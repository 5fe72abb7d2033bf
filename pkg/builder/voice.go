package builder

import (
	"net/http"
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/tts"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/voice"
)

type SpeechEngine = types.SpeechEngine

type PollyAPI = tts.PollyAPI

type GoogleSpeechOption = types.Option[*tts.GoogleEngine]

type PollySpeechOption = types.Option[*tts.PollyEngine]

type VoiceOption = types.Option[*voice.Synthesizer]

func NewGoogleSpeechEngine(options ...GoogleSpeechOption) types.SpeechEngine {
	return tts.NewGoogleEngine(options...)
}

func GoogleSpeechWithLogger(l ...types.Logger) GoogleSpeechOption {
	return tts.WithGoogleLogger(l...)
}

func GoogleSpeechWithEndpoint(endpoint string) GoogleSpeechOption {
	return tts.WithEndpoint(endpoint)
}

func GoogleSpeechWithHTTPClient(c *http.Client) GoogleSpeechOption {
	return tts.WithHTTPClient(c)
}

func GoogleSpeechWithRetry(maxRetries uint64, initial time.Duration) GoogleSpeechOption {
	return tts.WithGoogleRetry(maxRetries, initial)
}

func NewPollySpeechEngine(client PollyAPI, options ...PollySpeechOption) types.SpeechEngine {
	return tts.NewPollyEngine(client, options...)
}

func PollySpeechWithLogger(l ...types.Logger) PollySpeechOption {
	return tts.WithPollyLogger(l...)
}

func PollySpeechWithVoice(v string) PollySpeechOption {
	return tts.WithVoice(v)
}

func PollySpeechWithNeural() PollySpeechOption {
	return tts.WithNeural()
}

func NewVoiceSynthesizer(engine types.SpeechEngine, renderer types.Renderer, options ...VoiceOption) types.VoiceSynthesizer {
	return voice.NewSynthesizer(engine, renderer, options...)
}

func VoiceWithLogger(l ...types.Logger) VoiceOption {
	return voice.WithLogger(l...)
}

// VoiceWithPauseMarkers strips bracketed pause markers before speaking when strip is true.
func VoiceWithPauseMarkers(strip bool) VoiceOption {
	return voice.WithPauseMarkers(strip)
}

func VoiceWithLanguage(lang string) VoiceOption {
	return voice.WithLanguage(lang)
}
