package tts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
)

const (
	pollyChunkSize  = 1500
	pollySampleRate = 22050
)

// PollyAPI is the subset of the Polly client the engine calls.
type PollyAPI interface {
	SynthesizeSpeech(ctx context.Context, params *polly.SynthesizeSpeechInput, optFns ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
}

// PollyEngine synthesizes speech with AWS Polly as 22.05 kHz MP3.
type PollyEngine struct {
	notifier
	componentMetadata types.ComponentMetadata
	client            PollyAPI
	voice             pollytypes.VoiceId
	engine            pollytypes.Engine
	retry             retryPolicy
}

// NewPollyEngine creates an engine that speaks with the Joanna voice on the standard engine.
func NewPollyEngine(client PollyAPI, options ...types.Option[*PollyEngine]) *PollyEngine {
	p := &PollyEngine{
		componentMetadata: types.ComponentMetadata{
			Type: "POLLY_TTS",
			ID:   utils.GenerateUniqueHash(),
		},
		client: client,
		voice:  pollytypes.VoiceIdJoanna,
		engine: pollytypes.EngineStandard,
		retry:  defaultRetryPolicy(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// GetComponentMetadata returns the engine metadata.
func (p *PollyEngine) GetComponentMetadata() types.ComponentMetadata {
	return p.componentMetadata
}

// Synthesize returns MP3 speech for text. A full language code such as "en-GB" is passed to
// Polly; a bare "en" leaves the choice to the voice.
func (p *PollyEngine) Synthesize(ctx context.Context, text, lang string) (types.Speech, error) {
	if p.client == nil {
		return types.Speech{}, errors.New("tts: polly client is nil")
	}
	chunks := splitText(text, pollyChunkSize)
	if len(chunks) == 0 {
		return types.Speech{}, ErrEmptyText
	}

	var out bytes.Buffer
	for i, chunk := range chunks {
		in := &polly.SynthesizeSpeechInput{
			OutputFormat: pollytypes.OutputFormatMp3,
			Text:         aws.String(chunk),
			TextType:     pollytypes.TextTypeText,
			VoiceId:      p.voice,
			Engine:       p.engine,
			SampleRate:   aws.String(strconv.Itoa(pollySampleRate)),
		}
		if strings.Contains(lang, "-") {
			in.LanguageCode = pollytypes.LanguageCode(lang)
		}

		var data []byte
		op := func() error {
			var err error
			data, err = p.synthesizeChunk(ctx, in)
			return err
		}
		notify := func(err error, wait time.Duration) {
			p.NotifyLoggers(types.WarnLevel, "Synthesize: retrying Polly request",
				"component", p.componentMetadata,
				"chunk", i,
				"wait", wait.String(),
				"error", err,
			)
		}
		if err := p.retry.do(ctx, op, notify); err != nil {
			p.NotifyLoggers(types.ErrorLevel, "Synthesize: Polly request failed", "component", p.componentMetadata, "chunk", i, "error", err)
			return types.Speech{}, fmt.Errorf("tts: polly chunk %d/%d: %w", i+1, len(chunks), err)
		}
		out.Write(data)
	}

	p.NotifyLoggers(types.DebugLevel, "Synthesize: speech received",
		"component", p.componentMetadata,
		"voice", string(p.voice),
		"chunks", len(chunks),
		"bytes", out.Len(),
	)
	return types.Speech{Data: out.Bytes(), Format: types.MP3Format, SampleRate: pollySampleRate}, nil
}

func (p *PollyEngine) synthesizeChunk(ctx context.Context, in *polly.SynthesizeSpeechInput) ([]byte, error) {
	resp, err := p.client.SynthesizeSpeech(ctx, in)
	if err != nil {
		if isTransient(err) {
			return nil, &types.RetryableError{Err: err}
		}
		return nil, err
	}
	if resp.AudioStream == nil {
		return nil, errors.New("polly returned no audio stream")
	}
	defer resp.AudioStream.Close()

	data, err := io.ReadAll(resp.AudioStream)
	if err != nil {
		return nil, &types.RetryableError{Err: err}
	}
	return data, nil
}

// isTransient classifies AWS errors by message, matching throttling and server-side failures.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "throttl"),
		strings.Contains(msg, "too many requests"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "tempor"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "service unavailable"),
		strings.Contains(msg, "serviceunavailable"),
		strings.Contains(msg, "internalerror"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "500"):
		return true
	default:
		return false
	}
}
