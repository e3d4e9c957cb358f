package trumf

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures retry behavior with exponential backoff.
type RetryConfig struct {
	MaxRetries     int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	BackoffFactor  float64
	JitterFraction float64 // 0.0 to 1.0, fraction of the delay to randomize
}

// DefaultRetryConfig is tuned for transient Trumf platform errors.
var DefaultRetryConfig = RetryConfig{
	MaxRetries:     2,
	InitialDelay:   500 * time.Millisecond,
	MaxDelay:       5 * time.Second,
	BackoffFactor:  2.0,
	JitterFraction: 0.2,
}

// withRetry executes fn with exponential backoff + jitter. It stops when
// the error is a non-retryable *APIError, the context is cancelled, or the
// attempts are exhausted.
func withRetry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if apiErr, ok := err.(*APIError); ok && !apiErr.Retryable {
			return zero, err
		}
		if attempt >= cfg.MaxRetries {
			break
		}

		delay := float64(cfg.InitialDelay) * math.Pow(cfg.BackoffFactor, float64(attempt))
		if delay > float64(cfg.MaxDelay) {
			delay = float64(cfg.MaxDelay)
		}
		if cfg.JitterFraction > 0 {
			jitter := delay * cfg.JitterFraction * (rand.Float64()*2 - 1)
			delay += jitter
			if delay < 0 {
				delay = float64(cfg.InitialDelay)
			}
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(time.Duration(delay)):
		}
	}

	return zero, lastErr
}
