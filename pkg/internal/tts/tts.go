// Package tts holds the text-to-speech engines used for guidance narration: the Google Translate
// speech endpoint and AWS Polly. Both return encoded MP3 and retry transient failures.
package tts

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

const (
	defaultMaxRetries      = 4
	defaultInitialInterval = 250 * time.Millisecond
	defaultMaxInterval     = 4 * time.Second
)

// ErrEmptyText is returned when there is nothing to speak.
var ErrEmptyText = errors.New("tts: empty text")

// retryPolicy configures the exponential backoff around one engine request.
type retryPolicy struct {
	maxRetries      uint64
	initialInterval time.Duration
	maxInterval     time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		maxRetries:      defaultMaxRetries,
		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
	}
}

func (p retryPolicy) backOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.initialInterval
	eb.MaxInterval = p.maxInterval
	eb.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(eb, p.maxRetries), ctx)
}

// do runs op until it succeeds, fails with a non-retryable error or the policy gives up.
// Errors that are not types.RetryableError stop the loop immediately.
func (p retryPolicy) do(ctx context.Context, op func() error, notify func(error, time.Duration)) error {
	return backoff.RetryNotify(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !types.IsRetryable(err) || ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}, p.backOff(ctx), notify)
}

// splitText breaks text into chunks of at most max runes, preferring word boundaries.
func splitText(text string, max int) []string {
	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > max {
			flush()
			r := []rune(word)
			chunks = append(chunks, string(r[:max]))
			word = string(r[max:])
		}
		n := utf8.RuneCountInString(word)
		if curLen > 0 && curLen+1+n > max {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += n
	}
	flush()
	return chunks
}

// notifier fans log entries out to the connected loggers.
type notifier struct {
	loggers     []types.Logger
	loggersLock sync.Mutex
}

// ConnectLogger attaches loggers to the engine.
func (n *notifier) ConnectLogger(loggers ...types.Logger) {
	n.loggersLock.Lock()
	defer n.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			n.loggers = append(n.loggers, l)
		}
	}
}

// NotifyLoggers emits a log entry to all configured loggers.
func (n *notifier) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	n.loggersLock.Lock()
	loggers := append([]types.Logger(nil), n.loggers...)
	n.loggersLock.Unlock()

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
