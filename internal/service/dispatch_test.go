package service

import (
	"sync"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/hcstnb2047/lvdash/internal/github"
	githubMocks "github.com/hcstnb2047/lvdash/internal/github/mocks"
	"github.com/hcstnb2047/lvdash/internal/notify"
	"github.com/hcstnb2047/lvdash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedRun struct {
	WorkflowID int64
	RunID      int64
	Status     string
	Replace    bool
}

type fakeRecorder struct {
	mu   sync.Mutex
	runs []recordedRun
}

func (r *fakeRecorder) RecordRun(workflowID int64, run models.WorkflowRun, replace bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, recordedRun{WorkflowID: workflowID, RunID: run.ID, Status: run.Status, Replace: replace})
}

func (r *fakeRecorder) Runs() []recordedRun {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRun(nil), r.runs...)
}

func testPollConfig() PollConfig {
	return PollConfig{
		Interval:       5 * time.Millisecond,
		Timeout:        100 * time.Millisecond,
		LookupDelay:    time.Millisecond,
		LookupAttempts: 3,
		Cooldown:       time.Minute,
	}
}

func clipsState() models.WorkflowState {
	return models.WorkflowState{
		Workflow: models.Workflow{ID: 1, Name: "daily-clips", Path: ".github/workflows/daily-clips.yml", State: "active"},
		Meta: &models.WorkflowMeta{
			FileName:    "daily-clips.yml",
			DisplayName: "Daily Clips",
			Category:    models.CategoryCollect,
			Inputs: []models.WorkflowInput{
				{Name: "topic", Type: models.InputString, Required: true},
				{Name: "mode", Type: models.InputChoice, Options: []string{"fast", "full"}},
			},
		},
		IsVisible: true,
	}
}

func ghRun(id int64, status, conclusion string, created time.Time) *gh.WorkflowRun {
	run := &gh.WorkflowRun{
		ID:        gh.Ptr(id),
		Status:    gh.Ptr(status),
		CreatedAt: &gh.Timestamp{Time: created},
	}
	if conclusion != "" {
		run.Conclusion = gh.Ptr(conclusion)
	}
	return run
}

func newTestDispatcher(t *testing.T, client github.Client, cfg PollConfig) (Dispatcher, *fakeNotifier, *fakeRecorder) {
	t.Helper()
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	d := NewDispatcher(NewWorkflowService(staticSource{client: client}), notifier, cfg)
	d.SetRecorder(recorder)
	t.Cleanup(d.Close)
	return d, notifier, recorder
}

func waitResult(t *testing.T, results <-chan PollResult) PollResult {
	t.Helper()
	select {
	case res, ok := <-results:
		require.True(t, ok, "result channel closed without a result")
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for poll result")
	}
	return PollResult{}
}

func TestDispatch_TracksRunToCompletion(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	created := time.Now().Add(time.Minute)

	mockClient.
		EXPECT().
		DispatchWorkflow(mock.Anything, "daily-clips.yml", map[string]string{"topic": "go", "mode": "full"}).
		Once().
		Return(nil)

	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Once().
		Return([]*gh.WorkflowRun{ghRun(50, "queued", "", created)}, nil)

	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Once().
		Return([]*gh.WorkflowRun{ghRun(50, "in_progress", "", created)}, nil)

	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Once().
		Return([]*gh.WorkflowRun{ghRun(50, "completed", "success", created)}, nil)

	d, notifier, recorder := newTestDispatcher(t, mockClient, testPollConfig())

	results, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "  go ", "mode": "full", "note": "   "})
	require.NoError(t, err)

	res := waitResult(t, results)
	require.NoError(t, res.Err)
	require.NotNil(t, res.Run)
	assert.False(t, res.TimedOut)
	assert.Equal(t, models.RunSuccess, res.Run.RunStatus())

	assert.Equal(t, []recordedRun{
		{WorkflowID: 1, RunID: 50, Status: "queued", Replace: false},
		{WorkflowID: 1, RunID: 50, Status: "in_progress", Replace: true},
		{WorkflowID: 1, RunID: 50, Status: "completed", Replace: true},
	}, recorder.Runs())

	assert.Equal(t, []models.Toast{
		{Kind: models.ToastSuccess, Message: "Daily Clips dispatched"},
		{Kind: models.ToastSuccess, Message: "Daily Clips: success"},
	}, notifier.Toasts())

	assert.Len(t, notifier.Events(notify.EventRunUpdated), 3)
	assert.Eventually(t, func() bool { return !d.IsPolling(1) }, time.Second, 5*time.Millisecond)
	assert.Empty(t, d.Polling())
}

func TestDispatch_FailureConclusion(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	created := time.Now().Add(time.Minute)

	mockClient.EXPECT().DispatchWorkflow(mock.Anything, "daily-clips.yml", mock.Anything).Once().Return(nil)
	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Once().
		Return([]*gh.WorkflowRun{ghRun(51, "completed", "failure", created)}, nil)

	d, notifier, _ := newTestDispatcher(t, mockClient, testPollConfig())

	results, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})
	require.NoError(t, err)

	res := waitResult(t, results)
	require.NotNil(t, res.Run)
	assert.Equal(t, models.RunFailure, res.Run.RunStatus())
	assert.Contains(t, notifier.Toasts(), models.Toast{Kind: models.ToastError, Message: "Daily Clips: failure"})
}

func TestDispatch_NoRunFound(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	old := time.Now().Add(-time.Hour)

	mockClient.EXPECT().DispatchWorkflow(mock.Anything, "daily-clips.yml", mock.Anything).Once().Return(nil)
	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Times(3).
		Return([]*gh.WorkflowRun{ghRun(40, "completed", "success", old)}, nil)

	d, _, recorder := newTestDispatcher(t, mockClient, testPollConfig())

	results, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})
	require.NoError(t, err)

	res := waitResult(t, results)
	assert.Nil(t, res.Run)
	assert.NoError(t, res.Err)
	assert.Empty(t, recorder.Runs())
}

func TestDispatch_PollingTimesOut(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	created := time.Now().Add(time.Minute)

	mockClient.EXPECT().DispatchWorkflow(mock.Anything, "daily-clips.yml", mock.Anything).Once().Return(nil)
	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Return([]*gh.WorkflowRun{ghRun(52, "in_progress", "", created)}, nil)

	cfg := testPollConfig()
	cfg.Timeout = 30 * time.Millisecond
	d, _, _ := newTestDispatcher(t, mockClient, cfg)

	results, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})
	require.NoError(t, err)

	res := waitResult(t, results)
	assert.True(t, res.TimedOut)
	require.NotNil(t, res.Run)
	assert.Equal(t, int64(52), res.Run.ID)
}

func TestDispatch_PollErrorStops(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	created := time.Now().Add(time.Minute)

	mockClient.EXPECT().DispatchWorkflow(mock.Anything, "daily-clips.yml", mock.Anything).Once().Return(nil)
	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Once().
		Return([]*gh.WorkflowRun{ghRun(53, "queued", "", created)}, nil)
	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Once().
		Return(nil, &github.APIError{Status: 500, Message: "API error: 500"})

	d, _, _ := newTestDispatcher(t, mockClient, testPollConfig())

	results, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})
	require.NoError(t, err)

	res := waitResult(t, results)
	assert.Error(t, res.Err)
	assert.False(t, res.TimedOut)
}

func TestDispatch_MissingRequiredInput(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	d, _, _ := newTestDispatcher(t, mockClient, testPollConfig())

	_, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "  "})

	assert.ErrorIs(t, err, ErrMissingInput)
	mockClient.AssertNotCalled(t, "DispatchWorkflow", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_APIError(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		DispatchWorkflow(mock.Anything, "daily-clips.yml", mock.Anything).
		Once().
		Return(&github.APIError{Status: 422, Message: "API error: 422"})

	d, notifier, _ := newTestDispatcher(t, mockClient, testPollConfig())

	_, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})

	assert.Error(t, err)
	assert.Equal(t, []models.Toast{{Kind: models.ToastError, Message: "dispatch failed: API error: 422"}}, notifier.Toasts())
	assert.False(t, d.IsPolling(1))
}

func TestDispatch_Cooldown(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	old := time.Now().Add(-time.Hour)

	mockClient.EXPECT().DispatchWorkflow(mock.Anything, "daily-clips.yml", mock.Anything).Once().Return(nil)
	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Return([]*gh.WorkflowRun{ghRun(40, "completed", "success", old)}, nil)

	d, _, _ := newTestDispatcher(t, mockClient, testPollConfig())

	results, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})
	require.NoError(t, err)

	_, err = d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})
	assert.ErrorIs(t, err, ErrCooldown)

	waitResult(t, results)
}

func TestDispatch_FailedDispatchCanBeRetried(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	old := time.Now().Add(-time.Hour)

	mockClient.
		EXPECT().
		DispatchWorkflow(mock.Anything, "daily-clips.yml", mock.Anything).
		Return(&github.APIError{Status: 422, Message: "API error: 422"}).
		Once()
	mockClient.
		EXPECT().
		DispatchWorkflow(mock.Anything, "daily-clips.yml", mock.Anything).
		Return(nil).
		Once()
	mockClient.
		EXPECT().
		ListWorkflowRuns(mock.Anything, int64(1), 1).
		Return([]*gh.WorkflowRun{ghRun(40, "completed", "success", old)}, nil)

	d, _, _ := newTestDispatcher(t, mockClient, testPollConfig())

	_, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})
	require.Error(t, err)

	results, err := d.Dispatch(t.Context(), clipsState(), map[string]string{"topic": "go"})
	require.NoError(t, err)
	waitResult(t, results)
}

func TestPrepareInputs(t *testing.T) {
	meta := &models.WorkflowMeta{
		Inputs: []models.WorkflowInput{
			{Name: "topic", Type: models.InputString, Required: true},
			{Name: "mode", Type: models.InputChoice, Options: []string{"fast", "full"}},
			{Name: "dry_run", Type: models.InputBoolean},
		},
	}

	tests := []struct {
		name    string
		meta    *models.WorkflowMeta
		inputs  map[string]string
		want    map[string]string
		wantErr error
	}{
		{
			name:   "trims and drops blanks",
			meta:   meta,
			inputs: map[string]string{"topic": " go ", "mode": "", "extra": " x "},
			want:   map[string]string{"topic": "go", "extra": "x"},
		},
		{
			name:    "required missing",
			meta:    meta,
			inputs:  map[string]string{"mode": "fast"},
			wantErr: ErrMissingInput,
		},
		{
			name:    "choice outside options",
			meta:    meta,
			inputs:  map[string]string{"topic": "go", "mode": "slow"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "boolean not true or false",
			meta:    meta,
			inputs:  map[string]string{"topic": "go", "dry_run": "yes"},
			wantErr: ErrInvalidInput,
		},
		{
			name:   "no metadata passes values through",
			inputs: map[string]string{"anything": "1"},
			want:   map[string]string{"anything": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrepareInputs(tt.meta, tt.inputs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultInputs(t *testing.T) {
	meta := &models.WorkflowMeta{
		Inputs: []models.WorkflowInput{
			{Name: "mode", Type: models.InputChoice, Default: "fast", Options: []string{"fast", "full"}},
			{Name: "dry_run", Type: models.InputBoolean},
			{Name: "topic", Type: models.InputString},
		},
	}

	assert.Equal(t, map[string]string{"mode": "fast", "dry_run": "false"}, DefaultInputs(meta))
	assert.Empty(t, DefaultInputs(nil))
}
