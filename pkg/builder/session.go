package builder

import (
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/composer"
	"github.com/joeydtaylor/meditation/pkg/internal/publisher"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/writer"
)

type Session = types.Session

type SessionRequest = composer.Request

type Composer = composer.Composer

type Publisher = types.Publisher

type ComposerOption = types.Option[*composer.Composer]

type SessionWriterOption = types.Option[*writer.Writer]

type PublisherOption = types.Option[*publisher.Publisher]

func NewComposer(synth types.Synthesizer, renderer types.Renderer, options ...ComposerOption) *Composer {
	return composer.NewComposer(synth, renderer, options...)
}

func ComposerWithLogger(l ...types.Logger) ComposerOption {
	return composer.WithLogger(l...)
}

func ComposerWithVoice(v types.VoiceSynthesizer) ComposerOption {
	return composer.WithVoice(v)
}

func ComposerWithWriter(w types.SessionWriter) ComposerOption {
	return composer.WithWriter(w)
}

func ComposerWithPublisher(p types.Publisher) ComposerOption {
	return composer.WithPublisher(p)
}

func ComposerWithMovement(m Movement) ComposerOption {
	return composer.WithMovement(m)
}

func NewSessionWriter(options ...SessionWriterOption) types.SessionWriter {
	return writer.NewWriter(options...)
}

func SessionWriterWithLogger(l ...types.Logger) SessionWriterOption {
	return writer.WithLogger(l...)
}

func SessionWriterWithDirectory(dir string) SessionWriterOption {
	return writer.WithDirectory(dir)
}

func SessionWriterWithClock(now func() time.Time) SessionWriterOption {
	return writer.WithClock(now)
}

func NewPublisher(options ...PublisherOption) types.Publisher {
	return publisher.NewPublisher(options...)
}

func PublisherWithLogger(l ...types.Logger) PublisherOption {
	return publisher.WithLogger(l...)
}

// PublisherWithS3 uploads session files to bucket under prefix. client is usually NewS3Client.
func PublisherWithS3(client publisher.S3API, bucket, prefix string) PublisherOption {
	return publisher.WithS3(client, bucket, prefix)
}

// PublisherWithKafka emits session events through w, usually NewKafkaGoWriter.
func PublisherWithKafka(w publisher.MessageWriter) PublisherOption {
	return publisher.WithEvents(w, "")
}
