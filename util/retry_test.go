package util

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	attempts := 0
	result, err := Retry(context.Background(), RetryPolicy{MaxAttempts: 3, Interval: time.Millisecond},
		func(ctx context.Context) (string, error) {
			attempts++
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, attempts)
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	attempts := 0
	result, err := Retry(context.Background(), RetryPolicy{MaxAttempts: 3, Interval: time.Millisecond},
		func(ctx context.Context) (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, attempts)
}

func TestRetry_ExhaustionReturnsLastError(t *testing.T) {
	attempts := 0
	_, err := Retry(context.Background(), RetryPolicy{MaxAttempts: 3, Interval: time.Millisecond},
		func(ctx context.Context) (int, error) {
			attempts++
			return 0, fmt.Errorf("attempt %d failed", attempts)
		})

	require.Error(t, err)
	assert.Equal(t, "attempt 3 failed", err.Error())
	assert.Equal(t, 3, attempts)
}

func TestRetry_MaxAttemptsBelowOneMeansSingleTry(t *testing.T) {
	attempts := 0
	_, err := Retry(context.Background(), RetryPolicy{MaxAttempts: 0, Interval: time.Millisecond},
		func(ctx context.Context) (int, error) {
			attempts++
			return 0, errors.New("nope")
		})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetry_PerAttemptTimeoutCountsAsFailure(t *testing.T) {
	attempts := 0
	_, err := Retry(context.Background(),
		RetryPolicy{MaxAttempts: 2, Interval: time.Millisecond, PerAttemptTimeout: 10 * time.Millisecond},
		func(ctx context.Context) (int, error) {
			attempts++
			<-ctx.Done()
			return 0, ctx.Err()
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, attempts)
}

func TestRetry_CanceledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	_, err := Retry(ctx, RetryPolicy{MaxAttempts: 10, Interval: time.Hour},
		func(ctx context.Context) (int, error) {
			attempts++
			cancel()
			return 0, errors.New("transient")
		})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetry_ExponentialBackoffStillBoundsAttempts(t *testing.T) {
	attempts := 0
	_, err := Retry(context.Background(),
		RetryPolicy{MaxAttempts: 3, Backoff: BackoffExponential, Interval: time.Millisecond},
		func(ctx context.Context) (int, error) {
			attempts++
			return 0, errors.New("still broken")
		})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}
