package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

const workflowsPerPage = 50

func (c *client) ListWorkflows(ctx context.Context) ([]*gh.Workflow, error) {
	opts := &gh.ListOptions{PerPage: workflowsPerPage}

	var workflows *gh.Workflows
	err := c.withRetry(ctx, func() (*gh.Response, error) {
		var (
			resp *gh.Response
			err  error
		)
		workflows, resp, err = c.github.Actions.ListWorkflows(ctx, c.owner, c.repo, opts)
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return workflows.Workflows, nil
}

// ListWorkflowRuns returns the most recent count runs, newest first.
func (c *client) ListWorkflowRuns(ctx context.Context, workflowID int64, count int) ([]*gh.WorkflowRun, error) {
	opts := &gh.ListWorkflowRunsOptions{
		ListOptions: gh.ListOptions{PerPage: count},
	}

	var runs *gh.WorkflowRuns
	err := c.withRetry(ctx, func() (*gh.Response, error) {
		var (
			resp *gh.Response
			err  error
		)
		runs, resp, err = c.github.Actions.ListWorkflowRunsByID(ctx, c.owner, c.repo, workflowID, opts)
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return runs.WorkflowRuns, nil
}

// DispatchWorkflow fires a workflow_dispatch event for fileName on the
// client's ref. GitHub answers 204 without a run ID.
func (c *client) DispatchWorkflow(ctx context.Context, fileName string, inputs map[string]string) error {
	event := gh.CreateWorkflowDispatchEventRequest{Ref: c.ref}
	if len(inputs) > 0 {
		event.Inputs = make(map[string]any, len(inputs))
		for k, v := range inputs {
			event.Inputs[k] = v
		}
	}

	return c.withRetry(ctx, func() (*gh.Response, error) {
		return c.github.Actions.CreateWorkflowDispatchEventByFileName(ctx, c.owner, c.repo, fileName, event)
	})
}
