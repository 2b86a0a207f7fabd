package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetTree(ctx context.Context, ref string, recursive bool) (*gh.Tree, error) {
	var tree *gh.Tree
	err := c.withRetry(ctx, func() (*gh.Response, error) {
		var (
			resp *gh.Response
			err  error
		)
		tree, resp, err = c.github.Git.GetTree(ctx, c.owner, c.repo, ref, recursive)
		return resp, err
	})
	return tree, err
}
