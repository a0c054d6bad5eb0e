package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	defaultMaxAttempts  = 3
	defaultInitialDelay = 500 * time.Millisecond
)

// RetryingSender wraps a Sender with bounded retries and exponential
// backoff. The delay doubles after each failed attempt.
type RetryingSender struct {
	inner        Sender
	maxAttempts  int
	initialDelay time.Duration
	logger       *slog.Logger
}

// NewRetryingSender wraps inner with the default retry policy (3 attempts,
// 500ms initial delay, doubling).
func NewRetryingSender(inner Sender, logger *slog.Logger) *RetryingSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryingSender{
		inner:        inner,
		maxAttempts:  defaultMaxAttempts,
		initialDelay: defaultInitialDelay,
		logger:       logger,
	}
}

var _ Sender = (*RetryingSender)(nil)

func (r *RetryingSender) Send(ctx context.Context, msg Message) error {
	delay := r.initialDelay
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		lastErr = r.inner.Send(ctx, msg)
		if lastErr == nil {
			return nil
		}
		r.logger.Warn("Mail delivery attempt failed",
			slog.Int("attempt", attempt),
			slog.String("subject", msg.Subject),
			slog.String("error", lastErr.Error()))
		if attempt == r.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("mail delivery failed after %d attempts: %w", r.maxAttempts, lastErr)
}

// SendAsync dispatches a fire-and-forget send on its own goroutine.
// Failures are logged and swallowed.
func (r *RetryingSender) SendAsync(msg Message) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := r.Send(ctx, msg); err != nil {
			r.logger.Error("Async mail delivery failed",
				slog.String("subject", msg.Subject),
				slog.String("error", err.Error()))
		}
	}()
}
