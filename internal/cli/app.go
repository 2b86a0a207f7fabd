package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hcstnb2047/lvdash/internal/catalog"
	"github.com/hcstnb2047/lvdash/internal/config"
	"github.com/hcstnb2047/lvdash/internal/github"
	"github.com/hcstnb2047/lvdash/internal/orchestrator"
	"github.com/hcstnb2047/lvdash/internal/service"
	"github.com/hcstnb2047/lvdash/internal/store"
)

// app wires the services shared by every command.
type app struct {
	cfg        *config.Config
	store      *store.Store
	catalog    *catalog.Catalog
	auth       service.AuthService
	prefs      service.PreferencesService
	workflows  service.WorkflowService
	dispatcher service.Dispatcher
	dashboard  *orchestrator.Dashboard
	knowledge  service.KnowledgeService
	books      service.BooksService
}

func newApp(cfg *config.Config, catalogJSON []byte, notifier service.Notifier) (*app, error) {
	cat, err := catalog.FromJSON(catalogJSON)
	if err != nil {
		return nil, fmt.Errorf("loading workflow catalog: %w", err)
	}

	opts := []github.Option{github.WithRef(cfg.GithubRef)}
	if cfg.GithubAPIURL != "" {
		u, err := url.Parse(strings.TrimSuffix(cfg.GithubAPIURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid %sGITHUB_API_URL: %w", config.Prefix, err)
		}
		opts = append(opts, github.WithBaseURL(u))
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	factory := func(token string) github.Client {
		return github.New(token, cfg.GithubOwner, cfg.GithubRepo, opts...)
	}

	a := &app{cfg: cfg, store: st, catalog: cat}
	a.auth = service.NewAuthService(st, factory, cfg.GithubPAT)
	a.prefs = service.NewPreferencesService(st, cat.DefaultHidden())
	a.workflows = service.NewWorkflowService(a.auth)
	a.dispatcher = service.NewDispatcher(a.workflows, notifier, service.PollConfig{
		Interval:       cfg.PollInterval,
		Timeout:        cfg.PollTimeout,
		LookupDelay:    cfg.RunLookupDelay,
		LookupAttempts: cfg.RunLookupAttempts,
		Cooldown:       cfg.DispatchCooldown,
	})
	a.dashboard = orchestrator.NewDashboard(a.auth, a.workflows, a.prefs, a.dispatcher, cat, st, notifier)
	a.dispatcher.SetRecorder(a.dashboard)
	a.knowledge = service.NewKnowledgeService(a.auth, st, cfg.GithubRef, cfg.KnowledgeCacheTTL)
	a.books = service.NewBooksService(a.auth, st, cfg.ReadingLogPath, cfg.GithubRef, cfg.ReadingLogCacheTTL)

	return a, nil
}

func (a *app) Close() error {
	a.dispatcher.Close()
	return a.store.Close()
}
