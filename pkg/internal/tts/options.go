package tts

import (
	"net/http"
	"time"

	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// WithGoogleLogger registers loggers for the Google engine.
func WithGoogleLogger(l ...types.Logger) types.Option[*GoogleEngine] {
	return func(g *GoogleEngine) {
		g.ConnectLogger(l...)
	}
}

// WithEndpoint points the Google engine at another URL.
func WithEndpoint(endpoint string) types.Option[*GoogleEngine] {
	return func(g *GoogleEngine) {
		if endpoint != "" {
			g.endpoint = endpoint
		}
	}
}

// WithHTTPClient replaces the HTTP client used by the Google engine.
func WithHTTPClient(c *http.Client) types.Option[*GoogleEngine] {
	return func(g *GoogleEngine) {
		if c != nil {
			g.client = c
		}
	}
}

// WithGoogleRetry sets the retry budget and the first backoff interval.
func WithGoogleRetry(maxRetries uint64, initial time.Duration) types.Option[*GoogleEngine] {
	return func(g *GoogleEngine) {
		g.retry.maxRetries = maxRetries
		if initial > 0 {
			g.retry.initialInterval = initial
		}
	}
}

// WithPollyLogger registers loggers for the Polly engine.
func WithPollyLogger(l ...types.Logger) types.Option[*PollyEngine] {
	return func(p *PollyEngine) {
		p.ConnectLogger(l...)
	}
}

// WithVoice selects the Polly voice.
func WithVoice(voice string) types.Option[*PollyEngine] {
	return func(p *PollyEngine) {
		if voice != "" {
			p.voice = pollytypes.VoiceId(voice)
		}
	}
}

// WithNeural switches Polly to the neural engine.
func WithNeural() types.Option[*PollyEngine] {
	return func(p *PollyEngine) {
		p.engine = pollytypes.EngineNeural
	}
}

// WithPollyRetry sets the retry budget and the first backoff interval.
func WithPollyRetry(maxRetries uint64, initial time.Duration) types.Option[*PollyEngine] {
	return func(p *PollyEngine) {
		p.retry.maxRetries = maxRetries
		if initial > 0 {
			p.retry.initialInterval = initial
		}
	}
}
