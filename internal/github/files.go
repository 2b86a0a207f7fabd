package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

// GetFileContent returns the decoded content of a file at ref and its blob SHA.
func (c *client) GetFileContent(ctx context.Context, path, ref string) (string, string, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}

	var content *gh.RepositoryContent
	err := c.withRetry(ctx, func() (*gh.Response, error) {
		var (
			resp *gh.Response
			err  error
		)
		content, _, resp, err = c.github.Repositories.GetContents(ctx, c.owner, c.repo, path, opts)
		return resp, err
	})
	if err != nil {
		return "", "", err
	}
	if content == nil {
		return "", "", fmt.Errorf("%s is a directory", path)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return "", "", err
	}
	return decoded, content.GetSHA(), nil
}

// CreateOrUpdateFile commits content to path on branch and returns the new
// blob SHA. A nil fileSHA creates the file.
func (c *client) CreateOrUpdateFile(ctx context.Context, path, branch, message, content string, fileSHA *string) (string, error) {
	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(message),
		Content: []byte(content),
		Branch:  gh.Ptr(branch),
	}
	if fileSHA != nil {
		opts.SHA = fileSHA
	}

	var res *gh.RepositoryContentResponse
	err := c.withRetry(ctx, func() (*gh.Response, error) {
		var (
			resp *gh.Response
			err  error
		)
		if fileSHA == nil {
			res, resp, err = c.github.Repositories.CreateFile(ctx, c.owner, c.repo, path, opts)
		} else {
			res, resp, err = c.github.Repositories.UpdateFile(ctx, c.owner, c.repo, path, opts)
		}
		return resp, err
	})
	if err != nil {
		return "", err
	}
	if res == nil || res.Content == nil {
		return "", nil
	}
	return res.Content.GetSHA(), nil
}
