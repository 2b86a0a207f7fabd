package models

import (
	"path"
	"sort"
	"time"
)

type WorkflowCategory string

const (
	CategoryCollect       WorkflowCategory = "collect"
	CategoryAnalysis      WorkflowCategory = "analysis"
	CategoryReminder      WorkflowCategory = "reminder"
	CategoryResearch      WorkflowCategory = "research"
	CategoryIPhone        WorkflowCategory = "iphone"
	CategorySystem        WorkflowCategory = "system"
	CategoryUncategorized WorkflowCategory = "uncategorized"
)

var workflowCategoryLabels = map[WorkflowCategory]string{
	CategoryCollect:       "記録・収集",
	CategoryAnalysis:      "分析・レポート",
	CategoryReminder:      "リマインダー",
	CategoryResearch:      "リサーチ",
	CategoryIPhone:        "iPhone",
	CategorySystem:        "システム",
	CategoryUncategorized: "未分類",
}

func (c WorkflowCategory) Label() string {
	if l, ok := workflowCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c WorkflowCategory) Valid() bool {
	_, ok := workflowCategoryLabels[c]
	return ok
}

type InputType string

const (
	InputString  InputType = "string"
	InputChoice  InputType = "choice"
	InputBoolean InputType = "boolean"
)

type WorkflowInput struct {
	Name        string    `json:"name"`
	Type        InputType `json:"type"`
	Required    bool      `json:"required"`
	Default     string    `json:"default,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Description string    `json:"description,omitempty"`
}

type WorkflowMeta struct {
	FileName      string           `json:"fileName"`
	DisplayName   string           `json:"displayName"`
	Category      WorkflowCategory `json:"category"`
	Inputs        []WorkflowInput  `json:"inputs,omitempty"`
	DefaultHidden bool             `json:"defaultHidden,omitempty"`
}

type Workflow struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	State string `json:"state"`
}

// FileName is the workflow file name, e.g. "daily-clips.yml".
func (w Workflow) FileName() string {
	if w.Path == "" {
		return ""
	}
	return path.Base(w.Path)
}

type RunStatus string

const (
	RunSuccess    RunStatus = "success"
	RunFailure    RunStatus = "failure"
	RunInProgress RunStatus = "in_progress"
	RunQueued     RunStatus = "queued"
	RunCancelled  RunStatus = "cancelled"
	RunUnknown    RunStatus = "unknown"
)

type WorkflowRun struct {
	ID           int64      `json:"id"`
	Status       string     `json:"status"`
	Conclusion   string     `json:"conclusion,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	RunStartedAt *time.Time `json:"run_started_at,omitempty"`
	HTMLURL      string     `json:"html_url"`
}

func (r WorkflowRun) Completed() bool {
	return r.Status == "completed"
}

func (r WorkflowRun) RunStatus() RunStatus {
	switch r.Status {
	case "completed":
		switch r.Conclusion {
		case "success":
			return RunSuccess
		case "failure":
			return RunFailure
		case "cancelled":
			return RunCancelled
		}
		return RunUnknown
	case "in_progress":
		return RunInProgress
	case "queued":
		return RunQueued
	}
	return RunUnknown
}

type WorkflowState struct {
	Workflow   Workflow      `json:"workflow"`
	Meta       *WorkflowMeta `json:"meta"`
	LatestRuns []WorkflowRun `json:"latestRuns"`
	IsFavorite bool          `json:"isFavorite"`
	IsVisible  bool          `json:"isVisible"`
	IsPolling  bool          `json:"isPolling"`
}

func (s WorkflowState) DisplayName() string {
	if s.Meta != nil && s.Meta.DisplayName != "" {
		return s.Meta.DisplayName
	}
	return s.Workflow.Name
}

func (s WorkflowState) Category() WorkflowCategory {
	if s.Meta != nil && s.Meta.Category != "" {
		return s.Meta.Category
	}
	return CategoryUncategorized
}

const (
	FilterAll       = "all"
	FilterFavorites = "favorites"
)

// FilterWorkflows keeps visible states matching filter ("all", "favorites"
// or a category) and moves favorites to the front, preserving order otherwise.
func FilterWorkflows(states []WorkflowState, filter string) []WorkflowState {
	out := make([]WorkflowState, 0, len(states))
	for _, s := range states {
		if !s.IsVisible {
			continue
		}
		switch filter {
		case "", FilterAll:
		case FilterFavorites:
			if !s.IsFavorite {
				continue
			}
		default:
			if string(s.Category()) != filter {
				continue
			}
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsFavorite && !out[j].IsFavorite
	})
	return out
}

type CategoryCount struct {
	Category WorkflowCategory `json:"category"`
	Label    string           `json:"label"`
	Count    int              `json:"count"`
}

type WorkflowStats struct {
	Total      int             `json:"total"`
	Favorites  int             `json:"favorites"`
	Categories int             `json:"categories"`
	Top        []CategoryCount `json:"top"`
}

const maxTopCategories = 6

func ComputeStats(states []WorkflowState) WorkflowStats {
	var stats WorkflowStats
	counts := map[WorkflowCategory]int{}
	var order []WorkflowCategory

	for _, s := range states {
		if !s.IsVisible {
			continue
		}
		stats.Total++
		if s.IsFavorite {
			stats.Favorites++
		}
		cat := s.Category()
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat]++
	}

	stats.Categories = len(counts)
	for _, cat := range order {
		stats.Top = append(stats.Top, CategoryCount{Category: cat, Label: cat.Label(), Count: counts[cat]})
	}
	sort.SliceStable(stats.Top, func(i, j int) bool {
		return stats.Top[i].Count > stats.Top[j].Count
	})
	if len(stats.Top) > maxTopCategories {
		stats.Top = stats.Top[:maxTopCategories]
	}
	return stats
}
