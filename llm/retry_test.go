package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUnavailable{Err: errors.New("boom")}},
		MockResponse{Content: json.RawMessage(`"ok"`)},
	)
	p := WithRetry(mock, fastRetry(3))

	resp, err := p.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"ok"`), resp.Content)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimited{Err: errors.New("429")}},
		MockResponse{Err: &ErrRateLimited{Err: errors.New("429")}},
	)
	p := WithRetry(mock, fastRetry(2))

	_, err := p.Complete(context.Background(), Request{})
	var rateLimited *ErrRateLimited
	assert.ErrorAs(t, err, &rateLimited)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetryDoesNotRetryBadResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrBadResponse{Err: errors.New("not json")}},
		MockResponse{Content: json.RawMessage(`"never reached"`)},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Complete(context.Background(), Request{})
	var bad *ErrBadResponse
	assert.ErrorAs(t, err, &bad)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Minute, MaxWait: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Complete(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
