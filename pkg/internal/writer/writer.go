// Package writer persists finished sessions as timestamped WAV files.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/codec"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/internal/utils"
)

const (
	// DefaultDirectory is relative to the working directory.
	DefaultDirectory = "output"
	timestampLayout  = "20060102_150405"
)

// Writer writes waveforms to <dir>/<YYYYMMDD_HHMMSS>_<name>. Writes are not atomic.
type Writer struct {
	componentMetadata types.ComponentMetadata
	dir               string
	encoder           types.Encoder[types.Waveform]
	now               func() time.Time
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewWriter creates a 16-bit PCM WAV writer under DefaultDirectory.
func NewWriter(options ...types.Option[*Writer]) *Writer {
	w := &Writer{
		componentMetadata: types.ComponentMetadata{
			Type: "SESSION_WRITER",
			ID:   utils.GenerateUniqueHash(),
		},
		dir:     DefaultDirectory,
		encoder: codec.NewWAVEncoder(),
		now:     time.Now,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// GetComponentMetadata returns the writer metadata.
func (w *Writer) GetComponentMetadata() types.ComponentMetadata {
	return w.componentMetadata
}

// Directory returns the output directory.
func (w *Writer) Directory() string { return w.dir }

// Write encodes wave to a new timestamped file and returns its path. The directory is created
// on demand.
func (w *Writer) Write(wave types.Waveform, name string) (string, error) {
	if name == "" {
		return "", errors.New("writer: empty file name")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("writer: create %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, w.now().Format(timestampLayout)+"_"+name)
	if err := w.writeFile(path, wave); err != nil {
		w.NotifyLoggers(types.ErrorLevel, "Write: failed", "component", w.componentMetadata, "path", path, "error", err)
		return "", fmt.Errorf("writer: %s: %w", path, err)
	}

	w.NotifyLoggers(types.InfoLevel, "Write: session saved",
		"component", w.componentMetadata,
		"path", path,
		"frames", wave.Len(),
		"channels", wave.NumChannels(),
	)
	return path, nil
}

func (w *Writer) writeFile(path string, wave types.Waveform) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return w.encoder.Encode(f, wave)
}
