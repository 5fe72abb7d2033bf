package voice

import "github.com/joeydtaylor/meditation/pkg/internal/types"

// ConnectLogger attaches loggers to the voice synthesizer.
func (v *Synthesizer) ConnectLogger(loggers ...types.Logger) {
	v.loggersLock.Lock()
	defer v.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			v.loggers = append(v.loggers, l)
		}
	}
}

// NotifyLoggers emits a log entry to all configured loggers.
func (v *Synthesizer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	v.loggersLock.Lock()
	loggers := append([]types.Logger(nil), v.loggers...)
	v.loggersLock.Unlock()

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
