package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
)

const (
	// DefaultGoogleEndpoint is the public Translate speech endpoint.
	DefaultGoogleEndpoint = "https://translate.google.com/translate_tts"
	googleChunkSize       = 100
	googleSampleRate      = 24000
	defaultRequestTimeout = 30 * time.Second
	userAgent             = "Mozilla/5.0 (compatible; meditation-tts)"
)

// GoogleEngine fetches speech from the Google Translate TTS endpoint. Long text is sent in
// chunks of at most 100 characters and the returned MP3 streams are concatenated.
type GoogleEngine struct {
	notifier
	componentMetadata types.ComponentMetadata
	client            *http.Client
	endpoint          string
	retry             retryPolicy
}

// NewGoogleEngine creates an engine against DefaultGoogleEndpoint.
func NewGoogleEngine(options ...types.Option[*GoogleEngine]) *GoogleEngine {
	g := &GoogleEngine{
		componentMetadata: types.ComponentMetadata{
			Type: "GOOGLE_TTS",
			ID:   utils.GenerateUniqueHash(),
		},
		client:   &http.Client{Timeout: defaultRequestTimeout},
		endpoint: DefaultGoogleEndpoint,
		retry:    defaultRetryPolicy(),
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// GetComponentMetadata returns the engine metadata.
func (g *GoogleEngine) GetComponentMetadata() types.ComponentMetadata {
	return g.componentMetadata
}

// Synthesize returns MP3 speech for text.
func (g *GoogleEngine) Synthesize(ctx context.Context, text, lang string) (types.Speech, error) {
	chunks := splitText(text, googleChunkSize)
	if len(chunks) == 0 {
		return types.Speech{}, ErrEmptyText
	}
	if lang == "" {
		lang = "en"
	}

	var out bytes.Buffer
	for i, chunk := range chunks {
		var data []byte
		op := func() error {
			var err error
			data, err = g.fetch(ctx, chunk, lang, i, len(chunks))
			return err
		}
		notify := func(err error, wait time.Duration) {
			g.NotifyLoggers(types.WarnLevel, "Synthesize: retrying speech request",
				"component", g.componentMetadata,
				"chunk", i,
				"wait", wait.String(),
				"error", err,
			)
		}
		if err := g.retry.do(ctx, op, notify); err != nil {
			g.NotifyLoggers(types.ErrorLevel, "Synthesize: speech request failed", "component", g.componentMetadata, "chunk", i, "error", err)
			return types.Speech{}, fmt.Errorf("tts: google chunk %d/%d: %w", i+1, len(chunks), err)
		}
		out.Write(data)
	}

	g.NotifyLoggers(types.DebugLevel, "Synthesize: speech received",
		"component", g.componentMetadata,
		"chunks", len(chunks),
		"bytes", out.Len(),
	)
	return types.Speech{Data: out.Bytes(), Format: types.MP3Format, SampleRate: googleSampleRate}, nil
}

func (g *GoogleEngine) fetch(ctx context.Context, chunk, lang string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("q", chunk)
	q.Set("tl", lang)
	q.Set("client", "tw-ob")
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &types.RetryableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return nil, &types.RetryableError{Err: fmt.Errorf("speech endpoint returned status %d", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("speech endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.RetryableError{Err: err}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("speech endpoint returned an empty body")
	}
	return data, nil
}
