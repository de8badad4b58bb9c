package store

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy is a fixed-delay retry: up to MaxAttempts calls with Delay
// between consecutive attempts. A zero value makes a single attempt.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// NoRetry makes exactly one attempt.
var NoRetry = RetryPolicy{MaxAttempts: 1}

// Do calls fn until it succeeds, returns a permanent error, the attempts are
// exhausted or ctx is done. notify, when non-nil, is called after each failed
// attempt that will be retried.
func (p RetryPolicy) Do(ctx context.Context, fn func() error, notify func(attempt int, err error)) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var b backoff.BackOff = backoff.NewConstantBackOff(p.Delay)
	b = backoff.WithMaxRetries(b, uint64(attempts-1))
	b = backoff.WithContext(b, ctx)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		return fn()
	}, b, func(err error, _ time.Duration) {
		if notify != nil {
			notify(attempt, err)
		}
	})
}

// Permanent marks err so that Do stops retrying immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
