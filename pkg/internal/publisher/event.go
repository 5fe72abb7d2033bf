package publisher

import (
	"bytes"
	"context"
	"fmt"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/logschema"
	"github.com/segmentio/kafka-go"
)

// NewEvent builds the event payload for session.
func (p *Publisher) NewEvent(session types.Session, uri string) Event {
	return Event{
		ID:          session.ID.String(),
		Path:        session.Path,
		ObjectURI:   uri,
		Band:        session.Band,
		Sounds:      append([]string{}, session.Sounds...),
		Voiced:      session.Voiced,
		Seconds:     session.Wave.Duration(),
		Frames:      session.Wave.Len(),
		Channels:    session.Wave.NumChannels(),
		SampleRate:  session.Wave.SampleRate,
		PublishedAt: p.now().UTC(),
	}
}

func (p *Publisher) announce(ctx context.Context, session types.Session, uri string) error {
	var buf bytes.Buffer
	if err := p.encoder.Encode(&buf, p.NewEvent(session, uri)); err != nil {
		return fmt.Errorf("publisher: encode event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(session.ID.String()),
		Value: bytes.TrimRight(buf.Bytes(), "\n"),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte(eventContentType)},
			{Key: "session-id", Value: []byte(session.ID.String())},
		},
	}
	if p.topic != "" {
		msg.Topic = p.topic
	}

	if err := p.events.WriteMessages(ctx, msg); err != nil {
		p.NotifyLoggers(types.ErrorLevel, "Publish: event write failed", "component", p.componentMetadata, "topic", p.topic, "error", err)
		return fmt.Errorf("publisher: write event: %w", err)
	}
	p.NotifyLoggers(types.InfoLevel, "Publish: event written", "component", p.componentMetadata, "topic", p.topic, logschema.FieldSessionID, session.ID.String())
	return nil
}
