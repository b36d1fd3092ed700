package utils

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

// Retry executes a function with exponential backoff retry
func Retry(maxAttempts int, initialDelay time.Duration, fn func() error) error {
	return RetryWithContext(context.Background(), maxAttempts, initialDelay, fn, nil)
}

// RetryWithContext executes a function with exponential backoff until it
// succeeds, shouldRetry rejects the error or ctx is done. A nil shouldRetry
// retries every error.
func RetryWithContext(ctx context.Context, maxAttempts int, initialDelay time.Duration, fn func() error, shouldRetry func(error) bool) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	delay := initialDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		// Check if we should retry this error
		if shouldRetry != nil && !shouldRetry(err) {
			return err
		}

		if attempt < maxAttempts {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.CombineErrors(ctx.Err(), err)
			case <-timer.C:
			}
			delay *= 2 // Exponential backoff
		}
	}

	return errors.Wrapf(err, "failed after %d attempts", maxAttempts)
}
