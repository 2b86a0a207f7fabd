package github

import (
	"context"
	"errors"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// withRetry runs call, retrying primary rate-limit errors whose reset is
// close enough to wait for. Other errors are returned as *APIError when
// GitHub answered, unchanged otherwise.
func (c *client) withRetry(ctx context.Context, call func() (*gh.Response, error)) error {
	for attempt := 0; ; attempt++ {
		resp, err := call()
		if err == nil {
			return nil
		}

		var rateLimitErr *gh.RateLimitError
		if !errors.As(err, &rateLimitErr) || attempt >= c.maxRetries {
			return wrapError(resp, err)
		}

		waitDuration := time.Until(rateLimitErr.Rate.Reset.Time)
		if waitDuration > c.maxWait {
			return wrapError(resp, err)
		}
		if waitDuration <= 0 {
			waitDuration = c.baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
