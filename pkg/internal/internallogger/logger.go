package internallogger

import (
	"os"
	"sync"

	"github.com/joeydtaylor/meditation/pkg/internal/types"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap config, the starting level and the caller skip.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap. It always writes JSON to stdout and
// can fan out to further sinks added at runtime.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	callerOn    bool
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 1

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	encConfig := standardEncoderConfig()
	if config.Development {
		encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	z := &ZapLoggerAdapter{
		atomicLevel: zap.NewAtomicLevelAt(level),
		callerDepth: callerDepth,
		callerOn:    !config.DisableCaller,
		encConfig:   encConfig,
		baseFields:  fieldsFromMap(withSchema(config.InitialFields)),
		sinks:       make(map[string]sinkEntry),
	}
	z.baseCore = zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), zapcore.Lock(os.Stdout), z.atomicLevel)
	z.rebuildLoggerLocked()
	return z
}

// IsLevelEnabled reports whether entries at level would be written.
func (z *ZapLoggerAdapter) IsLevelEnabled(level types.LogLevel) bool {
	return z.atomicLevel.Enabled(ConvertLevel(level))
}
