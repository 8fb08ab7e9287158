// api/util/retry.go

package util

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Backoff strategies for RetryPolicy.
const (
	BackoffFixed       = "fixed"
	BackoffExponential = "exponential"
)

// RetryPolicy bounds a retried operation. MaxAttempts counts the first try;
// values below 1 are treated as 1.
type RetryPolicy struct {
	MaxAttempts       int
	Backoff           string
	Interval          time.Duration
	PerAttemptTimeout time.Duration
}

// Retry runs op until it succeeds or MaxAttempts is exhausted, sleeping
// between attempts according to the policy. Every attempt gets its own
// timeout-bounded context; a timed-out attempt counts as a failed attempt.
// On exhaustion the last error is returned unmodified.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func(context.Context) (T, error)) (T, error) {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	var strategy backoff.BackOff
	switch policy.Backoff {
	case BackoffExponential:
		expo := backoff.NewExponentialBackOff()
		if policy.Interval > 0 {
			expo.InitialInterval = policy.Interval
		}
		strategy = expo
	default:
		strategy = backoff.NewConstantBackOff(policy.Interval)
	}
	strategy = backoff.WithContext(backoff.WithMaxRetries(strategy, uint64(policy.MaxAttempts-1)), ctx)

	attempt := func() (T, error) {
		attemptCtx := ctx
		if policy.PerAttemptTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, policy.PerAttemptTimeout)
			defer cancel()
		}
		return op(attemptCtx)
	}

	return backoff.RetryWithData(attempt, strategy)
}
