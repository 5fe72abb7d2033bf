package writer

import (
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// WithLogger registers loggers for the writer.
func WithLogger(l ...types.Logger) types.Option[*Writer] {
	return func(w *Writer) {
		w.ConnectLogger(l...)
	}
}

// WithDirectory sets the output directory.
func WithDirectory(dir string) types.Option[*Writer] {
	return func(w *Writer) {
		if dir != "" {
			w.dir = dir
		}
	}
}

// WithClock replaces the clock used for file name timestamps.
func WithClock(now func() time.Time) types.Option[*Writer] {
	return func(w *Writer) {
		if now != nil {
			w.now = now
		}
	}
}

// WithEncoder replaces the waveform encoder.
func WithEncoder(enc types.Encoder[types.Waveform]) types.Option[*Writer] {
	return func(w *Writer) {
		if enc != nil {
			w.encoder = enc
		}
	}
}
