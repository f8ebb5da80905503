package transcripts

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"
)

// RetryPolicy bounds the retry loop around one acquisition attempt
type RetryPolicy struct {
	MaxRetries   int              // retries allowed after the first attempt
	InitialDelay time.Duration    // delay before the first retry
	Multiplier   float64          // backoff growth factor
	MaxDelay     time.Duration    // backoff ceiling
	Retryable    func(error) bool // which errors are worth another attempt
}

// DefaultRetryPolicy returns the standard acquisition policy
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   3,
		InitialDelay: time.Second,
		Multiplier:   2.0,
		MaxDelay:     10 * time.Second,
		Retryable:    IsRetryable,
	}
}

// delay computes the backoff for the given zero-based attempt
func (p RetryPolicy) delay(attempt int) time.Duration {
	d := time.Duration(float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt)))
	if d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

// WithRetry runs op until it succeeds, fails terminally, or the retry
// budget is spent, in which case the last error is returned. Only
// errors the policy marks retryable consume budget; terminal and
// unclassified errors propagate on first occurrence. The backoff wait
// honors ctx so an abandoned request does not keep the loop alive.
func WithRetry(ctx context.Context, policy RetryPolicy, op func() error) error {
	if policy.Retryable == nil {
		policy.Retryable = IsRetryable
	}

	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}

		if !policy.Retryable(lastErr) {
			return lastErr
		}

		if attempt == policy.MaxRetries {
			break
		}

		delay := policy.delay(attempt)
		log.Printf("[DEBUG] Attempt %d/%d failed, retrying in %v: %v",
			attempt+1, policy.MaxRetries+1, delay, lastErr)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("retry abandoned: %w", ctx.Err())
		}
	}

	return lastErr
}
