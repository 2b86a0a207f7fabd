package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowRun_RunStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		conclusion string
		want       RunStatus
	}{
		{name: "completed success", status: "completed", conclusion: "success", want: RunSuccess},
		{name: "completed failure", status: "completed", conclusion: "failure", want: RunFailure},
		{name: "completed cancelled", status: "completed", conclusion: "cancelled", want: RunCancelled},
		{name: "completed skipped", status: "completed", conclusion: "skipped", want: RunUnknown},
		{name: "in progress", status: "in_progress", want: RunInProgress},
		{name: "queued", status: "queued", want: RunQueued},
		{name: "waiting", status: "waiting", want: RunUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := WorkflowRun{Status: tt.status, Conclusion: tt.conclusion}
			assert.Equal(t, tt.want, run.RunStatus())
		})
	}
}

func TestWorkflow_FileName(t *testing.T) {
	assert.Equal(t, "daily-clips.yml", Workflow{Path: ".github/workflows/daily-clips.yml"}.FileName())
	assert.Equal(t, "", Workflow{}.FileName())
}

func TestWorkflowState_DisplayNameAndCategory(t *testing.T) {
	bare := WorkflowState{Workflow: Workflow{Name: "CI"}}
	assert.Equal(t, "CI", bare.DisplayName())
	assert.Equal(t, CategoryUncategorized, bare.Category())

	withMeta := WorkflowState{
		Workflow: Workflow{Name: "daily"},
		Meta:     &WorkflowMeta{DisplayName: "記事収集", Category: CategoryCollect},
	}
	assert.Equal(t, "記事収集", withMeta.DisplayName())
	assert.Equal(t, CategoryCollect, withMeta.Category())
}

func states() []WorkflowState {
	collect := &WorkflowMeta{Category: CategoryCollect}
	system := &WorkflowMeta{Category: CategorySystem}
	return []WorkflowState{
		{Workflow: Workflow{ID: 1}, Meta: collect, IsVisible: true},
		{Workflow: Workflow{ID: 2}, Meta: system, IsVisible: true, IsFavorite: true},
		{Workflow: Workflow{ID: 3}, IsVisible: true},
		{Workflow: Workflow{ID: 4}, Meta: collect, IsVisible: false, IsFavorite: true},
		{Workflow: Workflow{ID: 5}, Meta: collect, IsVisible: true, IsFavorite: true},
	}
}

func ids(states []WorkflowState) []int64 {
	out := make([]int64, 0, len(states))
	for _, s := range states {
		out = append(out, s.Workflow.ID)
	}
	return out
}

func TestFilterWorkflows(t *testing.T) {
	assert.Equal(t, []int64{2, 5, 1, 3}, ids(FilterWorkflows(states(), FilterAll)))
	assert.Equal(t, []int64{2, 5, 1, 3}, ids(FilterWorkflows(states(), "")))
	assert.Equal(t, []int64{2, 5}, ids(FilterWorkflows(states(), FilterFavorites)))
	assert.Equal(t, []int64{5, 1}, ids(FilterWorkflows(states(), "collect")))
	assert.Equal(t, []int64{3}, ids(FilterWorkflows(states(), "uncategorized")))
	assert.Empty(t, FilterWorkflows(states(), "reminder"))
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(states())

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Favorites)
	assert.Equal(t, 3, stats.Categories)
	assert.Equal(t, CategoryCollect, stats.Top[0].Category)
	assert.Equal(t, 2, stats.Top[0].Count)
	assert.Equal(t, "記録・収集", stats.Top[0].Label)
}

func TestComputeStats_CapsTopCategories(t *testing.T) {
	var in []WorkflowState
	for _, c := range []WorkflowCategory{CategoryCollect, CategoryAnalysis, CategoryReminder, CategoryResearch, CategoryIPhone, CategorySystem} {
		in = append(in, WorkflowState{Meta: &WorkflowMeta{Category: c}, IsVisible: true})
	}
	in = append(in, WorkflowState{IsVisible: true})

	stats := ComputeStats(in)

	assert.Equal(t, 7, stats.Categories)
	assert.Len(t, stats.Top, 6)
}
