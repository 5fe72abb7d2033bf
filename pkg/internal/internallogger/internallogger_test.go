package internallogger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joeydtaylor/meditation/pkg/internal/internallogger"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/logschema"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewLogger_DefaultLevel(t *testing.T) {
	logger := internallogger.NewLogger()
	if got := logger.GetLevel(); got != types.InfoLevel {
		t.Fatalf("expected InfoLevel, got %v", got)
	}
}

func TestNewLogger_WithLevel(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"))
	if got := logger.GetLevel(); got != types.DebugLevel {
		t.Fatalf("expected DebugLevel, got %v", got)
	}

	logger = internallogger.NewLogger(internallogger.LoggerWithLevel(" WARNING "))
	if got := logger.GetLevel(); got != types.WarnLevel {
		t.Fatalf("expected WarnLevel for WARNING, got %v", got)
	}

	logger = internallogger.NewLogger(internallogger.LoggerWithLevel("unknown"))
	if got := logger.GetLevel(); got != types.InfoLevel {
		t.Fatalf("expected InfoLevel on unknown level, got %v", got)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	logger := internallogger.NewLogger()
	logger.SetLevel(types.ErrorLevel)
	if got := logger.GetLevel(); got != types.ErrorLevel {
		t.Fatalf("expected ErrorLevel, got %v", got)
	}
}

func TestLogger_AddRemoveListSinks(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"))

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "app.log")

	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{"path": path}}); err != nil {
		t.Fatalf("AddSink(file) error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}

	if err := logger.AddSink("stdout", types.SinkConfig{Type: "stdout"}); err != nil {
		t.Fatalf("AddSink(stdout) error: %v", err)
	}

	sinks, err := logger.ListSinks()
	if err != nil {
		t.Fatalf("ListSinks error: %v", err)
	}
	if len(sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(sinks))
	}

	if err := logger.RemoveSink("stdout"); err != nil {
		t.Fatalf("RemoveSink error: %v", err)
	}
	if err := logger.RemoveSink("missing"); err == nil {
		t.Fatalf("expected error removing missing sink")
	}
}

func TestLogger_AddSinkInvalidConfig(t *testing.T) {
	logger := internallogger.NewLogger()

	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{}}); err == nil {
		t.Fatalf("expected error for missing file path")
	}
	if err := logger.AddSink("network", types.SinkConfig{Type: "network"}); err == nil {
		t.Fatalf("expected error for unsupported sink type")
	}
}

func TestLogger_LogHandlesOddKeys(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"))

	logger.Log(types.InfoLevel, "odd keys", "key", "value", "orphan")
	logger.Log(types.InfoLevel, "non-string key", 123, "value")
}

func TestLogger_Flush(t *testing.T) {
	logger := internallogger.NewLogger()
	if err := logger.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
}

func TestLogger_OptionsCoverage(t *testing.T) {
	logger := internallogger.NewLogger(
		internallogger.LoggerWithDevelopment(true),
		internallogger.ZapAdapterWithCallerSkip(1),
	)
	logger.Info("options")
}

func TestLogger_IsLevelEnabled(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("warn"))
	if logger.IsLevelEnabled(types.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !logger.IsLevelEnabled(types.ErrorLevel) {
		t.Fatalf("error should be enabled at warn level")
	}
}

func TestLogger_FileSinkCarriesSchema(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithoutCaller())
	path := filepath.Join(t.TempDir(), "logs", "session.log")
	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{"path": path}}); err != nil {
		t.Fatalf("AddSink(file) error: %v", err)
	}

	logger.Info("rendered", "component", types.ComponentMetadata{Type: "RENDERER", ID: "r1"}, "frames", 44100)
	if err := logger.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var rec logschema.LogRecord
	if err := json.Unmarshal(bytes.Split(bytes.TrimSpace(data), []byte("\n"))[0], &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if rec[logschema.FieldSchema] != logschema.SchemaID {
		t.Fatalf("expected schema %q, got %v", logschema.SchemaID, rec[logschema.FieldSchema])
	}
	if rec[logschema.FieldMessage] != "rendered" {
		t.Fatalf("unexpected message: %v", rec[logschema.FieldMessage])
	}
	comp, ok := rec["component"].(map[string]interface{})
	if !ok || comp["type"] != "RENDERER" {
		t.Fatalf("expected component map, got %v", rec["component"])
	}
}

func TestLogger_FlattensAudioFields(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithoutCaller())
	path := filepath.Join(t.TempDir(), "audio.log")
	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{"path": path}}); err != nil {
		t.Fatalf("AddSink(file) error: %v", err)
	}

	wave := types.NewStereo(types.SampleRate, 4410)
	logger.Info("placed",
		"wave", wave,
		"position", r3.Vec{X: 2.5, Y: 0, Z: 1.5},
		"elapsed", 1500*time.Millisecond,
	)
	if err := logger.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var rec logschema.LogRecord
	if err := json.Unmarshal(bytes.Split(bytes.TrimSpace(data), []byte("\n"))[0], &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}

	w, ok := rec["wave"].(map[string]interface{})
	if !ok || w["frames"] != float64(4410) || w["channels"] != float64(2) || w["sample_rate"] != float64(types.SampleRate) {
		t.Fatalf("expected waveform shape, got %v", rec["wave"])
	}
	pos, ok := rec["position"].([]interface{})
	if !ok || len(pos) != 3 || pos[0] != 2.5 || pos[2] != 1.5 {
		t.Fatalf("expected position triple, got %v", rec["position"])
	}
	if rec["elapsed"] != 1.5 {
		t.Fatalf("expected elapsed in seconds, got %v", rec["elapsed"])
	}
}

func TestLogger_SinkLevelAndReplace(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"), internallogger.LoggerWithoutCaller())
	path := filepath.Join(t.TempDir(), "warn.log")
	cfg := types.SinkConfig{Type: types.FileSink, Config: map[string]interface{}{"path": path, "level": "warn"}}
	if err := logger.AddSink("warn", cfg); err != nil {
		t.Fatalf("AddSink error: %v", err)
	}
	if err := logger.AddSink("warn", cfg); err != nil {
		t.Fatalf("re-adding a sink should replace it: %v", err)
	}
	if err := logger.AddSink("console", types.SinkConfig{Type: types.StderrSink, Config: map[string]interface{}{"encoding": "console"}}); err != nil {
		t.Fatalf("AddSink(stderr) error: %v", err)
	}

	logger.Debug("tone generated")
	logger.Warn("mix is silent")
	if err := logger.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	if len(lines) != 1 || !bytes.Contains(lines[0], []byte("mix is silent")) {
		t.Fatalf("expected only the warning in the sink, got %q", data)
	}

	sinks, _ := logger.ListSinks()
	if len(sinks) != 2 || sinks[0] != "console" || sinks[1] != "warn" {
		t.Fatalf("expected sorted sinks [console warn], got %v", sinks)
	}
}
