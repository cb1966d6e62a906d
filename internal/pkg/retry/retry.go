// Package retry provides a bounded retry combinator with randomized backoff
// for calls against flaky external collaborators.
package retry

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

const defaultAttempts = 3

// Policy controls how an operation is retried.
type Policy struct {
	// Attempts is the total invocation ceiling. Defaults to 3 when <= 0.
	Attempts int
	// Sleep replaces time.Sleep between attempts. Tests inject a no-op here.
	Sleep func(time.Duration)
	// OnRetry is invoked before each re-attempt, after the backoff sleep has
	// been scheduled. Optional.
	OnRetry func(attempt int, err error)
}

// Do invokes op until it succeeds or the attempt ceiling is reached. Failures
// before the last attempt are logged at warn and retried after a random
// backoff of [attempt, 3*attempt] seconds; the final failure is logged at
// error and returned to the caller.
func Do[T any](ctx context.Context, log zerolog.Logger, p Policy, op func(context.Context) (T, error)) (T, error) {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var zero T
	for attempt := 1; ; attempt++ {
		val, err := op(ctx)
		if err == nil {
			return val, nil
		}

		if attempt == attempts {
			log.Error().Err(err).Int("attempt", attempt).Msg("retries exhausted")
			return zero, err
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("transient failure, retrying")
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}

		sleep(backoff(attempt))
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
	}
}

// backoff picks a uniform random duration between attempt and 3*attempt
// seconds.
func backoff(attempt int) time.Duration {
	lo := attempt
	hi := attempt * 3
	return time.Duration(lo+rand.IntN(hi-lo+1)) * time.Second
}
