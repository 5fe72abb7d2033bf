// Package publisher announces finished sessions: the WAV file is uploaded to S3 and a
// "session generated" event is written to Kafka. Either side is skipped when unconfigured.
package publisher

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeydtaylor/meditation/pkg/internal/codec"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
	"github.com/segmentio/kafka-go"
)

const (
	defaultMaxAttempts = 3
	wavContentType     = "audio/wav"
	eventContentType   = "application/json"
)

// S3API is the subset of the S3 client used for uploads.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// MessageWriter is the subset of *kafka.Writer used for events.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Event is the payload of a "session generated" message.
type Event struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	ObjectURI   string    `json:"object_uri,omitempty"`
	Band        string    `json:"band"`
	Sounds      []string  `json:"sounds"`
	Voiced      bool      `json:"voiced"`
	Seconds     float64   `json:"seconds"`
	Frames      int       `json:"frames"`
	Channels    int       `json:"channels"`
	SampleRate  int       `json:"sample_rate"`
	PublishedAt time.Time `json:"published_at"`
}

// Publisher uploads and announces sessions.
type Publisher struct {
	componentMetadata types.ComponentMetadata
	s3Client          S3API
	bucket            string
	prefix            string
	events            MessageWriter
	topic             string
	encoder           types.Encoder[Event]
	now               func() time.Time
	maxAttempts       int
	baseBackoff       time.Duration
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewPublisher creates a publisher with nothing configured; Publish is a no-op until an S3
// destination or an event writer is set.
func NewPublisher(options ...types.Option[*Publisher]) *Publisher {
	p := &Publisher{
		componentMetadata: types.ComponentMetadata{
			Type: "PUBLISHER",
			ID:   utils.GenerateUniqueHash(),
		},
		encoder:     codec.NewJSONEncoder[Event](),
		now:         time.Now,
		maxAttempts: defaultMaxAttempts,
		baseBackoff: 200 * time.Millisecond,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// GetComponentMetadata returns the publisher metadata.
func (p *Publisher) GetComponentMetadata() types.ComponentMetadata {
	return p.componentMetadata
}

// Enabled reports whether Publish does anything.
func (p *Publisher) Enabled() bool {
	return p.uploads() || p.events != nil
}

func (p *Publisher) uploads() bool {
	return p.s3Client != nil && p.bucket != ""
}

// Publish uploads the session file and then emits the event. The first failure is returned.
func (p *Publisher) Publish(ctx context.Context, session types.Session) error {
	if !p.Enabled() {
		p.NotifyLoggers(types.DebugLevel, "Publish: no destinations configured", "component", p.componentMetadata)
		return nil
	}

	var uri string
	if p.uploads() {
		var err error
		uri, err = p.upload(ctx, session)
		if err != nil {
			return err
		}
	}
	if p.events != nil {
		if err := p.announce(ctx, session, uri); err != nil {
			return err
		}
	}
	return nil
}
