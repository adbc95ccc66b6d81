// Package retry provides a bounded retry helper with exponential backoff.
//
// It exists to absorb replication lag and transient upstream failures in
// eventually-consistent lookups: the relation resolver and the external
// record source both retry through it with a fixed attempt budget, so the
// worst-case added latency of any single operation stays deterministic.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStop marks errors that must not be retried. Return
// retry.Stop(err) from fn to abort immediately.
var ErrStop = errors.New("retry: stop")

type stopError struct {
	err error
}

func (e stopError) Error() string { return e.err.Error() }

func (e stopError) Unwrap() error { return e.err }

// Is reports ErrStop so callers can detect aborted retries with errors.Is.
func (e stopError) Is(target error) bool { return target == ErrStop }

// Stop marks err as non-retryable.
func Stop(err error) error {
	return stopError{err: err}
}

// Do invokes fn up to attempts times, sleeping between failures starting at
// initialDelay and multiplying by factor after each attempt. It returns nil
// on the first success, the context error if the context is cancelled, and
// the last failure wrapped once the attempt budget is exhausted.
func Do(ctx context.Context, attempts int, initialDelay time.Duration, factor float64, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	delay := initialDelay
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		var stopped stopError
		if errors.As(lastErr, &stopped) {
			return stopped.err
		}

		if attempt < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay = time.Duration(float64(delay) * factor)
			}
		}
	}

	return fmt.Errorf("retry: %d attempts exhausted: %w", attempts, lastErr)
}
