package publisher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cenkalti/backoff/v4"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
)

// objectKey joins the prefix and the file's base name with a slash.
func (p *Publisher) objectKey(file string) string {
	base := filepath.Base(file)
	prefix := strings.Trim(p.prefix, "/")
	if prefix == "" {
		return base
	}
	return path.Join(prefix, base)
}

func (p *Publisher) upload(ctx context.Context, session types.Session) (string, error) {
	if session.Path == "" {
		return "", errors.New("publisher: session has no file path")
	}
	f, err := os.Open(session.Path)
	if err != nil {
		return "", fmt.Errorf("publisher: open %s: %w", session.Path, err)
	}
	defer f.Close()

	key := p.objectKey(session.Path)
	put := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(wavContentType),
		Metadata: map[string]string{
			"session-id": session.ID.String(),
			"band":       session.Band,
		},
	}

	attempt := 0
	op := func() error {
		attempt++
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return backoff.Permanent(err)
		}
		_, err := p.s3Client.PutObject(ctx, put)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		p.NotifyLoggers(types.WarnLevel, "PutObject retry",
			"component", p.componentMetadata,
			"event", "PutObject",
			"attempt", attempt,
			"max_attempts", p.maxAttempts,
			"key", key,
			"wait", wait.String(),
			"error", err,
		)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.baseBackoff
	eb.MaxElapsedTime = 0
	retries := uint64(0)
	if p.maxAttempts > 1 {
		retries = uint64(p.maxAttempts - 1)
	}
	b := backoff.WithContext(backoff.WithMaxRetries(eb, retries), ctx)

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		p.NotifyLoggers(types.ErrorLevel, "Publish: upload failed", "component", p.componentMetadata, "bucket", p.bucket, "key", key, "error", err)
		return "", fmt.Errorf("publisher: put s3://%s/%s: %w", p.bucket, key, err)
	}

	uri := "s3://" + p.bucket + "/" + key
	p.NotifyLoggers(types.InfoLevel, "Publish: session uploaded", "component", p.componentMetadata, "uri", uri, "attempts", attempt)
	return uri, nil
}

// isRetryable classifies S3 errors by message, matching throttling and server-side failures.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "throttl"),
		strings.Contains(msg, "slowdown"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "tempor"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "internalerror"),
		strings.Contains(msg, "service unavailable"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "500"):
		return true
	default:
		return false
	}
}
