package service

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/hcstnb2047/lvdash/models"
)

type WorkflowService interface {
	// List returns the workflows that can still be dispatched or re-enabled.
	List(ctx context.Context) ([]models.Workflow, error)
	Runs(ctx context.Context, workflowID int64, count int) ([]models.WorkflowRun, error)
	Dispatch(ctx context.Context, fileName string, inputs map[string]string) error
}

type workflowService struct {
	src ClientSource
}

func NewWorkflowService(src ClientSource) WorkflowService {
	return &workflowService{src: src}
}

func (s *workflowService) List(ctx context.Context) ([]models.Workflow, error) {
	client, err := s.src.Client(ctx)
	if err != nil {
		return nil, err
	}

	workflows, err := client.ListWorkflows(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Workflow, 0, len(workflows))
	for _, wf := range workflows {
		if wf == nil {
			continue
		}
		switch wf.GetState() {
		case "active", "disabled_manually":
		default:
			continue
		}

		result = append(result, models.Workflow{
			ID:    wf.GetID(),
			Name:  wf.GetName(),
			Path:  wf.GetPath(),
			State: wf.GetState(),
		})
	}

	return result, nil
}

func (s *workflowService) Runs(ctx context.Context, workflowID int64, count int) ([]models.WorkflowRun, error) {
	client, err := s.src.Client(ctx)
	if err != nil {
		return nil, err
	}

	runs, err := client.ListWorkflowRuns(ctx, workflowID, count)
	if err != nil {
		return nil, err
	}

	result := make([]models.WorkflowRun, 0, len(runs))
	for _, run := range runs {
		if run == nil {
			continue
		}
		result = append(result, toRun(run))
	}
	return result, nil
}

func (s *workflowService) Dispatch(ctx context.Context, fileName string, inputs map[string]string) error {
	client, err := s.src.Client(ctx)
	if err != nil {
		return err
	}
	return client.DispatchWorkflow(ctx, fileName, inputs)
}

func toRun(run *gh.WorkflowRun) models.WorkflowRun {
	r := models.WorkflowRun{
		ID:         run.GetID(),
		Status:     run.GetStatus(),
		Conclusion: run.GetConclusion(),
		CreatedAt:  run.GetCreatedAt().Time,
		UpdatedAt:  run.GetUpdatedAt().Time,
		HTMLURL:    run.GetHTMLURL(),
	}
	if run.RunStartedAt != nil {
		started := run.RunStartedAt.Time
		r.RunStartedAt = &started
	}
	return r
}
