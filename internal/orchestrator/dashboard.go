package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hcstnb2047/lvdash/internal/github"
	"github.com/hcstnb2047/lvdash/internal/service"
	"github.com/hcstnb2047/lvdash/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	runsPerWorkflow = 3
	fetchLimit      = 8
)

// Catalog resolves workflow metadata by file name.
type Catalog interface {
	Lookup(fileName string) *models.WorkflowMeta
}

// Snapshot is the dashboard's view of every listed workflow.
type Snapshot struct {
	Workflows []models.WorkflowState `json:"workflows"`
	UpdatedAt time.Time              `json:"updatedAt"`
	// Stale is set when GitHub could not be reached and the last saved
	// status is shown instead.
	Stale bool `json:"stale"`
}

type View struct {
	Workflows []models.WorkflowState `json:"workflows"`
	Stats     models.WorkflowStats   `json:"stats"`
	UpdatedAt time.Time              `json:"updatedAt"`
	Stale     bool                   `json:"stale"`
}

// View filters the snapshot the way the workflow list shows it. Stats always
// cover every visible workflow.
func (s Snapshot) View(filter string) View {
	return View{
		Workflows: models.FilterWorkflows(s.Workflows, filter),
		Stats:     models.ComputeStats(s.Workflows),
		UpdatedAt: s.UpdatedAt,
		Stale:     s.Stale,
	}
}

// Find returns the state of the workflow with the given file name.
func (s Snapshot) Find(fileName string) (models.WorkflowState, bool) {
	for _, st := range s.Workflows {
		if st.Workflow.FileName() == fileName {
			return st, true
		}
	}
	return models.WorkflowState{}, false
}

type statusCache struct {
	Workflows []models.Workflow              `json:"workflows"`
	Runs      map[int64][]models.WorkflowRun `json:"runs"`
	UpdatedAt time.Time                      `json:"updatedAt"`
}

type Dashboard struct {
	src        service.ClientSource
	workflows  service.WorkflowService
	prefs      service.PreferencesService
	dispatcher service.Dispatcher
	catalog    Catalog
	store      service.Store
	notifier   service.Notifier
	now        func() time.Time
	log        logrus.FieldLogger

	mu      sync.RWMutex
	current *statusCache
	stale   bool
	// client the current status was loaded with
	owner github.Client
}

func NewDashboard(
	src service.ClientSource,
	workflows service.WorkflowService,
	prefs service.PreferencesService,
	dispatcher service.Dispatcher,
	catalog Catalog,
	store service.Store,
	notifier service.Notifier,
) *Dashboard {
	return &Dashboard{
		src:        src,
		workflows:  workflows,
		prefs:      prefs,
		dispatcher: dispatcher,
		catalog:    catalog,
		store:      store,
		notifier:   notifier,
		now:        time.Now,
		log:        logrus.WithField("component", "dashboard"),
	}
}

// Snapshot returns the current state, refreshing from GitHub when nothing has
// been loaded yet, the token changed or refresh is set.
func (d *Dashboard) Snapshot(ctx context.Context, refresh bool) (Snapshot, error) {
	client, err := d.client(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	d.mu.RLock()
	current, stale, owner := d.current, d.stale, d.owner
	d.mu.RUnlock()

	if current == nil || refresh || owner != client {
		return d.refresh(ctx, client)
	}
	return d.build(ctx, current, stale), nil
}

// Refresh lists the workflows and their latest runs. When GitHub fails the
// error is toasted and the last saved status is returned marked stale.
func (d *Dashboard) Refresh(ctx context.Context) (Snapshot, error) {
	client, err := d.client(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return d.refresh(ctx, client)
}

// client returns the active GitHub client. Without one the loaded status is
// dropped so nothing is served from it.
func (d *Dashboard) client(ctx context.Context) (github.Client, error) {
	client, err := d.src.Client(ctx)
	if err != nil {
		d.mu.Lock()
		d.current, d.stale, d.owner = nil, false, nil
		d.mu.Unlock()
		return nil, err
	}
	return client, nil
}

func (d *Dashboard) refresh(ctx context.Context, client github.Client) (Snapshot, error) {
	status, err := d.fetch(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoToken) {
			return Snapshot{}, err
		}
		d.log.WithError(err).Warn("refreshing workflows failed")
		d.notifier.Toast(models.ToastError, service.ToastMessage(err))

		cached := d.fallback(ctx, client)
		if cached == nil {
			return Snapshot{}, fmt.Errorf("refreshing workflows: %w", err)
		}
		d.mu.Lock()
		d.current, d.stale, d.owner = cached, true, client
		d.mu.Unlock()
		return d.build(ctx, cached, true), nil
	}

	d.mu.Lock()
	d.current, d.stale, d.owner = status, false, client
	d.mu.Unlock()

	if err := d.store.PutCache(ctx, service.CacheStatus, status); err != nil {
		d.log.WithError(err).Warn("saving status cache failed")
	}
	return d.build(ctx, status, false), nil
}

// Dispatch triggers the workflow with the given file name.
func (d *Dashboard) Dispatch(ctx context.Context, fileName string, inputs map[string]string) (<-chan service.PollResult, error) {
	snap, err := d.Snapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	state, ok := snap.Find(fileName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrUnknownWorkflow, fileName)
	}
	return d.dispatcher.Dispatch(ctx, state, inputs)
}

// RecordRun implements service.RunRecorder.
func (d *Dashboard) RecordRun(workflowID int64, run models.WorkflowRun, replace bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current == nil {
		return
	}

	runs := slices.Clone(d.current.Runs[workflowID])
	if replace && len(runs) > 0 {
		runs[0] = run
	} else {
		runs = append([]models.WorkflowRun{run}, runs...)
	}
	if len(runs) > runsPerWorkflow {
		runs = runs[:runsPerWorkflow]
	}

	updated := *d.current
	updated.Runs = make(map[int64][]models.WorkflowRun, len(d.current.Runs))
	for id, r := range d.current.Runs {
		updated.Runs[id] = r
	}
	updated.Runs[workflowID] = runs
	d.current = &updated
}

func (d *Dashboard) fetch(ctx context.Context) (*statusCache, error) {
	workflows, err := d.workflows.List(ctx)
	if err != nil {
		return nil, err
	}

	runs := make([][]models.WorkflowRun, len(workflows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchLimit)
	for i, wf := range workflows {
		g.Go(func() error {
			r, err := d.workflows.Runs(gctx, wf.ID, runsPerWorkflow)
			if err != nil {
				d.log.WithError(err).WithField("workflow", wf.FileName()).Warn("fetching runs failed")
				r = []models.WorkflowRun{}
			}
			runs[i] = r
			return nil
		})
	}
	_ = g.Wait()

	status := &statusCache{
		Workflows: workflows,
		Runs:      make(map[int64][]models.WorkflowRun, len(workflows)),
		UpdatedAt: d.now(),
	}
	for i, wf := range workflows {
		status.Runs[wf.ID] = runs[i]
	}
	return status, nil
}

// fallback returns the status loaded with the same client, else the saved
// one.
func (d *Dashboard) fallback(ctx context.Context, client github.Client) *statusCache {
	d.mu.RLock()
	current, owner := d.current, d.owner
	d.mu.RUnlock()
	if current != nil && owner == client {
		return current
	}

	var cached statusCache
	_, ok, err := d.store.GetCache(ctx, service.CacheStatus, 0, &cached)
	if err != nil {
		d.log.WithError(err).Warn("reading status cache failed")
		return nil
	}
	if !ok {
		return nil
	}
	return &cached
}

func (d *Dashboard) build(ctx context.Context, status *statusCache, stale bool) Snapshot {
	prefs, err := d.prefs.Get(ctx)
	if err != nil {
		d.log.WithError(err).Warn("loading preferences failed")
	}

	states := make([]models.WorkflowState, 0, len(status.Workflows))
	for _, wf := range status.Workflows {
		fileName := wf.FileName()
		runs := status.Runs[wf.ID]
		if runs == nil {
			runs = []models.WorkflowRun{}
		}

		states = append(states, models.WorkflowState{
			Workflow:   wf,
			Meta:       d.catalog.Lookup(fileName),
			LatestRuns: runs,
			IsFavorite: slices.Contains(prefs.Favorites, fileName),
			IsVisible:  !slices.Contains(prefs.Hidden, fileName),
			IsPolling:  d.dispatcher.IsPolling(wf.ID),
		})
	}

	return Snapshot{Workflows: states, UpdatedAt: status.UpdatedAt, Stale: stale}
}
