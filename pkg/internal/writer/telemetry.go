package writer

import "github.com/joeydtaylor/meditation/pkg/internal/types"

// ConnectLogger attaches loggers to the writer.
func (w *Writer) ConnectLogger(loggers ...types.Logger) {
	w.loggersLock.Lock()
	defer w.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			w.loggers = append(w.loggers, l)
		}
	}
}

// NotifyLoggers emits a log entry to all configured loggers.
func (w *Writer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	w.loggersLock.Lock()
	loggers := append([]types.Logger(nil), w.loggers...)
	w.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
