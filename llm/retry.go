package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryProvider retries rate-limit and availability errors with capped
// exponential backoff and jitter. Bad responses and context errors are
// returned immediately.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}
	return nil, lastErr
}

// Stream passes through to the inner provider when it streams; otherwise
// it completes in one shot and emits the whole answer as a single delta.
// Retrying a half-delivered stream would duplicate output, so stream
// errors are not retried.
func (r *retryProvider) Stream(ctx context.Context, req Request, emit func(delta string) error) error {
	if s, ok := r.inner.(Streamer); ok {
		return s.Stream(ctx, req, emit)
	}
	resp, err := r.Complete(ctx, req)
	if err != nil {
		return err
	}
	return emit(string(resp.Content))
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var rateLimited *ErrRateLimited
	var unavailable *ErrUnavailable
	return errors.As(err, &rateLimited) || errors.As(err, &unavailable)
}

func (r *retryProvider) backoff(attempt int) time.Duration {
	wait := r.cfg.InitialWait << attempt
	if wait > r.cfg.MaxWait {
		wait = r.cfg.MaxWait
	}
	// Up to 25% jitter keeps concurrent retries from aligning.
	jitter := time.Duration(rand.Int64N(int64(wait)/4 + 1))
	return wait + jitter
}
