package github

import (
	"context"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// Client is the subset of the GitHub API the dashboard needs, bound to a
// single owner/repo.
type Client interface {
	ValidateToken(ctx context.Context) error
	ListWorkflows(ctx context.Context) ([]*gh.Workflow, error)
	ListWorkflowRuns(ctx context.Context, workflowID int64, count int) ([]*gh.WorkflowRun, error)
	DispatchWorkflow(ctx context.Context, fileName string, inputs map[string]string) error
	GetTree(ctx context.Context, ref string, recursive bool) (*gh.Tree, error)
	GetFileContent(ctx context.Context, path, ref string) (string, string, error)
	CreateOrUpdateFile(ctx context.Context, path, branch, message, content string, fileSHA *string) (string, error)
	SearchCode(ctx context.Context, terms string) ([]*gh.CodeResult, int, error)
}

type client struct {
	github     *gh.Client
	owner      string
	repo       string
	ref        string
	maxRetries int
	baseDelay  time.Duration
	maxWait    time.Duration
}

type Option func(*client)

// WithBaseURL points the client at another API root, e.g. GitHub Enterprise
// or a test server. The URL must end with a slash.
func WithBaseURL(u *url.URL) Option {
	return func(c *client) {
		c.github.BaseURL = u
	}
}

// WithRef sets the branch used for dispatches.
func WithRef(ref string) Option {
	return func(c *client) {
		c.ref = ref
	}
}

// WithRetry tunes the rate-limit retry loop.
func WithRetry(maxRetries int, baseDelay, maxWait time.Duration) Option {
	return func(c *client) {
		c.maxRetries = maxRetries
		c.baseDelay = baseDelay
		c.maxWait = maxWait
	}
}

type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func New(token, owner, repo string, opts ...Option) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
			Timeout: 30 * time.Second,
		}
	}

	c := &client{
		github:     gh.NewClient(httpClient),
		owner:      owner,
		repo:       repo,
		ref:        "main",
		maxRetries: 3,
		baseDelay:  1 * time.Second,
		maxWait:    10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
