package publisher

import (
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// WithLogger registers loggers for the publisher.
func WithLogger(l ...types.Logger) types.Option[*Publisher] {
	return func(p *Publisher) {
		p.ConnectLogger(l...)
	}
}

// WithS3 enables uploads to bucket under prefix.
func WithS3(client S3API, bucket, prefix string) types.Option[*Publisher] {
	return func(p *Publisher) {
		p.s3Client = client
		p.bucket = bucket
		p.prefix = prefix
	}
}

// WithEvents enables the session event. topic is set on each message and must be empty when
// the writer already has a topic.
func WithEvents(w MessageWriter, topic string) types.Option[*Publisher] {
	return func(p *Publisher) {
		p.events = w
		p.topic = topic
	}
}

// WithClock replaces the clock used for event timestamps.
func WithClock(now func() time.Time) types.Option[*Publisher] {
	return func(p *Publisher) {
		if now != nil {
			p.now = now
		}
	}
}

// WithRetry sets the upload attempt budget and the first backoff interval.
func WithRetry(maxAttempts int, base time.Duration) types.Option[*Publisher] {
	return func(p *Publisher) {
		if maxAttempts > 0 {
			p.maxAttempts = maxAttempts
		}
		if base > 0 {
			p.baseBackoff = base
		}
	}
}
