package llm

import (
	"context"
	"time"
)

// withRetry runs fn up to 1+maxRetries times, retrying only errors the
// transient predicate accepts. Waits backoff between attempts, doubling each
// time, and gives up early when ctx is cancelled.
func withRetry(ctx context.Context, maxRetries int, backoff time.Duration, transient func(error) bool, fn func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !transient(err) {
			break
		}
	}
	return "", lastErr
}
