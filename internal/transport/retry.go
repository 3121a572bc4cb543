// Package transport provides the HTTP client used for every remote call:
// bearer-token authentication, versioned headers, and bounded retry with
// exponential backoff on transient failures.
package transport

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/agentstation/mirrorsync/pkg/constants"
	"github.com/agentstation/mirrorsync/pkg/errors"
	"github.com/agentstation/mirrorsync/pkg/logging"
)

// newBackOff returns the retry schedule for one remote call: exponential
// backoff starting at RetryBackoff, doubling up to MaxRetryBackoff, for at
// most MaxAttempts total attempts. Swapped out in tests.
var newBackOff = func() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = constants.RetryBackoff
	policy.Multiplier = constants.BackoffMultiplier
	policy.MaxInterval = constants.MaxRetryBackoff
	policy.MaxElapsedTime = 0 // bounded by attempt count, not wall clock
	return backoff.WithMaxRetries(policy, constants.MaxAttempts-1)
}

// Retry executes op under the transport retry policy. Only transient remote
// conditions (rate limiting, service unavailability) are retried;
// non-retryable errors propagate immediately without consuming retry budget.
// When attempts are exhausted the last error is returned.
func Retry(ctx context.Context, op func() error) error {
	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if !errors.Retryable(err) {
			return backoff.Permanent(err)
		}
		logging.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("Transient remote failure, will retry")
		return err
	}, backoff.WithContext(newBackOff(), ctx))
}
