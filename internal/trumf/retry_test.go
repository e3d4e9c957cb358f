package trumf

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      10 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func TestWithRetrySuccessFirstAttempt(t *testing.T) {
	attempts := 0
	result, err := withRetry(context.Background(), fastRetryConfig(), func(ctx context.Context) (string, error) {
		attempts++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Fatalf("result = %q", result)
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestWithRetryTransientThenSuccess(t *testing.T) {
	attempts := 0
	result, err := withRetry(context.Background(), fastRetryConfig(), func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", &APIError{StatusCode: 502, Message: "transient", Retryable: true}
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Fatalf("result = %q", result)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	attempts := 0
	_, err := withRetry(context.Background(), fastRetryConfig(), func(ctx context.Context) (string, error) {
		attempts++
		return "", &APIError{StatusCode: 404, Message: "not found"}
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	cfg := fastRetryConfig()
	attempts := 0
	_, err := withRetry(context.Background(), cfg, func(ctx context.Context) (string, error) {
		attempts++
		return "", errors.New("always fails")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != cfg.MaxRetries+1 {
		t.Fatalf("attempts = %d, want %d", attempts, cfg.MaxRetries+1)
	}
}

func TestWithRetryRespectsContextCancellation(t *testing.T) {
	cfg := fastRetryConfig()
	cfg.InitialDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := withRetry(ctx, cfg, func(ctx context.Context) (string, error) {
			attempts++
			return "", errors.New("fail")
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retry did not stop after cancellation")
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}
