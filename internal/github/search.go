package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	gh "github.com/google/go-github/v80/github"
)

// defaultSearchRemaining is assumed when GitHub omits the rate-limit header;
// it matches the search API's per-minute quota.
const defaultSearchRemaining = 30

// SearchCode runs a code search limited to the client's repository and
// returns the results with text matches plus the remaining search quota.
// A 403 is reported as an empty result with no quota left, not as an error.
func (c *client) SearchCode(ctx context.Context, terms string) ([]*gh.CodeResult, int, error) {
	query := fmt.Sprintf("%s repo:%s/%s", terms, c.owner, c.repo)
	opts := &gh.SearchOptions{TextMatch: true}

	result, resp, err := c.github.Search.Code(ctx, query, opts)
	remaining := searchRemaining(resp)

	if err != nil {
		var rateLimitErr *gh.RateLimitError
		if errors.As(err, &rateLimitErr) || (resp != nil && resp.Response != nil && resp.StatusCode == http.StatusForbidden) {
			return nil, 0, nil
		}
		return nil, remaining, wrapError(resp, err)
	}

	return result.CodeResults, remaining, nil
}

func searchRemaining(resp *gh.Response) int {
	if resp == nil || resp.Response == nil {
		return defaultSearchRemaining
	}
	raw := resp.Header.Get("X-RateLimit-Remaining")
	if raw == "" {
		return defaultSearchRemaining
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultSearchRemaining
	}
	return n
}
