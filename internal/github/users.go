package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

// ValidateToken checks the token by fetching the authenticated user.
func (c *client) ValidateToken(ctx context.Context) error {
	return c.withRetry(ctx, func() (*gh.Response, error) {
		_, resp, err := c.github.Users.Get(ctx, "")
		return resp, err
	})
}
