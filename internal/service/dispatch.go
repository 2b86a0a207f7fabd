package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hcstnb2047/lvdash/internal/notify"
	"github.com/hcstnb2047/lvdash/models"
	"github.com/sirupsen/logrus"
)

type PollConfig struct {
	Interval       time.Duration
	Timeout        time.Duration
	LookupDelay    time.Duration
	LookupAttempts int
	Cooldown       time.Duration
}

func DefaultPollConfig() PollConfig {
	return PollConfig{
		Interval:       30 * time.Second,
		Timeout:        10 * time.Minute,
		LookupDelay:    2 * time.Second,
		LookupAttempts: 3,
		Cooldown:       3 * time.Second,
	}
}

// RunRecorder keeps the latest runs shown for each workflow.
type RunRecorder interface {
	// RecordRun prepends run to the workflow's runs, or replaces the newest
	// one when replace is set.
	RecordRun(workflowID int64, run models.WorkflowRun, replace bool)
}

// RunUpdate is the payload of run.updated events.
type RunUpdate struct {
	WorkflowID int64              `json:"workflowId"`
	Run        models.WorkflowRun `json:"run"`
}

// PollResult is delivered once when tracking of a dispatched run ends.
// Run is nil when no run showed up after the dispatch.
type PollResult struct {
	Run      *models.WorkflowRun
	TimedOut bool
	Err      error
}

type Dispatcher interface {
	// Dispatch triggers the workflow and tracks the run it creates in the
	// background. The returned channel yields one result and is closed.
	Dispatch(ctx context.Context, state models.WorkflowState, inputs map[string]string) (<-chan PollResult, error)
	Polling() []int64
	IsPolling(workflowID int64) bool
	SetRecorder(r RunRecorder)
	// Close cancels all tracking and waits for it to stop.
	Close()
}

type dispatcher struct {
	workflows WorkflowService
	notifier  Notifier
	cfg       PollConfig
	now       func() time.Time
	log       logrus.FieldLogger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	recorder RunRecorder
	polling  map[int64]int
	lastSent map[string]time.Time
}

func NewDispatcher(workflows WorkflowService, notifier Notifier, cfg PollConfig) Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &dispatcher{
		workflows: workflows,
		notifier:  notifier,
		cfg:       cfg,
		now:       time.Now,
		log:       logrus.WithField("component", "dispatcher"),
		ctx:       ctx,
		cancel:    cancel,
		polling:   make(map[int64]int),
		lastSent:  make(map[string]time.Time),
	}
}

func (d *dispatcher) SetRecorder(r RunRecorder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recorder = r
}

func (d *dispatcher) Dispatch(ctx context.Context, state models.WorkflowState, inputs map[string]string) (<-chan PollResult, error) {
	fileName := state.Workflow.FileName()
	name := state.DisplayName()

	cleaned, err := PrepareInputs(state.Meta, inputs)
	if err != nil {
		return nil, err
	}

	if err := d.claim(fileName); err != nil {
		return nil, err
	}

	dispatchedAt := d.now().Truncate(time.Second)
	if err := d.workflows.Dispatch(ctx, fileName, cleaned); err != nil {
		d.release(fileName)
		d.notifier.Toast(models.ToastError, fmt.Sprintf("dispatch failed: %s", ToastMessage(err)))
		return nil, fmt.Errorf("dispatching %s: %w", fileName, err)
	}

	d.log.WithFields(logrus.Fields{"workflow": fileName, "inputs": len(cleaned)}).Info("workflow dispatched")
	d.notifier.Toast(models.ToastSuccess, fmt.Sprintf("%s dispatched", name))

	results := make(chan PollResult, 1)
	d.startPolling(state.Workflow.ID)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(results)
		defer d.stopPolling(state.Workflow.ID)
		results <- d.track(d.ctx, state, dispatchedAt)
	}()

	return results, nil
}

func (d *dispatcher) Polling() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]int64, 0, len(d.polling))
	for id := range d.polling {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (d *dispatcher) IsPolling(workflowID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.polling[workflowID] > 0
}

func (d *dispatcher) Close() {
	d.cancel()
	d.wg.Wait()
}

// claim enforces the per-workflow cooldown between dispatches.
func (d *dispatcher) claim(fileName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if last, ok := d.lastSent[fileName]; ok && now.Sub(last) < d.cfg.Cooldown {
		return fmt.Errorf("%w: %s", ErrCooldown, fileName)
	}
	d.lastSent[fileName] = now
	return nil
}

// release lifts the cooldown after a dispatch GitHub did not accept.
func (d *dispatcher) release(fileName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.lastSent, fileName)
}

func (d *dispatcher) track(ctx context.Context, state models.WorkflowState, dispatchedAt time.Time) PollResult {
	id := state.Workflow.ID
	log := d.log.WithField("workflow", state.Workflow.FileName())

	run, err := d.findRun(ctx, id, dispatchedAt)
	if err != nil {
		log.WithError(err).Warn("looking up dispatched run failed")
		return PollResult{Err: err}
	}
	if run == nil {
		log.Info("no run found after dispatch")
		return PollResult{}
	}

	log = log.WithField("run_id", run.ID)
	d.record(id, *run, false)
	if run.Completed() {
		d.announce(state, *run)
		return PollResult{Run: run}
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	latest := *run
	for {
		select {
		case <-ctx.Done():
			log.Info("stopped polling before the run completed")
			return PollResult{Run: &latest, TimedOut: true}
		case <-ticker.C:
			runs, err := d.workflows.Runs(ctx, id, 1)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.WithError(err).Warn("polling run failed")
				return PollResult{Run: &latest, Err: err}
			}
			if len(runs) == 0 {
				continue
			}

			latest = runs[0]
			d.record(id, latest, true)
			if latest.Completed() {
				log.WithField("conclusion", latest.Conclusion).Info("run completed")
				d.announce(state, latest)
				return PollResult{Run: &latest}
			}
		}
	}
}

// findRun waits for the run created by a dispatch. GitHub reports created_at
// with second precision, so dispatchedAt is truncated to the second.
func (d *dispatcher) findRun(ctx context.Context, workflowID int64, dispatchedAt time.Time) (*models.WorkflowRun, error) {
	for range d.cfg.LookupAttempts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d.cfg.LookupDelay):
		}

		runs, err := d.workflows.Runs(ctx, workflowID, 1)
		if err != nil {
			return nil, err
		}
		if len(runs) > 0 && !runs[0].CreatedAt.Before(dispatchedAt) {
			return &runs[0], nil
		}
	}
	return nil, nil
}

func (d *dispatcher) record(workflowID int64, run models.WorkflowRun, replace bool) {
	d.mu.Lock()
	recorder := d.recorder
	d.mu.Unlock()

	if recorder != nil {
		recorder.RecordRun(workflowID, run, replace)
	}
	d.notifier.Publish(notify.EventRunUpdated, RunUpdate{WorkflowID: workflowID, Run: run})
}

func (d *dispatcher) announce(state models.WorkflowState, run models.WorkflowRun) {
	if run.Conclusion == "success" {
		d.notifier.Toast(models.ToastSuccess, fmt.Sprintf("%s: success", state.DisplayName()))
		return
	}
	d.notifier.Toast(models.ToastError, fmt.Sprintf("%s: failure", state.DisplayName()))
}

func (d *dispatcher) startPolling(workflowID int64) {
	d.mu.Lock()
	d.polling[workflowID]++
	d.mu.Unlock()
	d.notifier.Publish(notify.EventPolling, d.Polling())
}

func (d *dispatcher) stopPolling(workflowID int64) {
	d.mu.Lock()
	if d.polling[workflowID] <= 1 {
		delete(d.polling, workflowID)
	} else {
		d.polling[workflowID]--
	}
	d.mu.Unlock()
	d.notifier.Publish(notify.EventPolling, d.Polling())
}

// PrepareInputs trims values, drops blank ones and checks them against the
// workflow's declared inputs.
func PrepareInputs(meta *models.WorkflowMeta, inputs map[string]string) (map[string]string, error) {
	cleaned := make(map[string]string, len(inputs))
	for k, v := range inputs {
		if v = strings.TrimSpace(v); v != "" {
			cleaned[k] = v
		}
	}

	if meta == nil {
		return cleaned, nil
	}

	for _, in := range meta.Inputs {
		v, ok := cleaned[in.Name]
		if !ok {
			if in.Required {
				return nil, fmt.Errorf("%w: %s", ErrMissingInput, in.Name)
			}
			continue
		}

		switch in.Type {
		case models.InputChoice:
			if !slices.Contains(in.Options, v) {
				return nil, fmt.Errorf("%w: %s must be one of %s", ErrInvalidInput, in.Name, strings.Join(in.Options, ", "))
			}
		case models.InputBoolean:
			if v != "true" && v != "false" {
				return nil, fmt.Errorf("%w: %s must be true or false", ErrInvalidInput, in.Name)
			}
		}
	}

	return cleaned, nil
}

// DefaultInputs returns the declared defaults, as a form would prefill them.
func DefaultInputs(meta *models.WorkflowMeta) map[string]string {
	defaults := map[string]string{}
	if meta == nil {
		return defaults
	}
	for _, in := range meta.Inputs {
		switch {
		case in.Default != "":
			defaults[in.Name] = in.Default
		case in.Type == models.InputBoolean:
			defaults[in.Name] = "false"
		}
	}
	return defaults
}
