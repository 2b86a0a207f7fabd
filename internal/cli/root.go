package cli

import (
	"io"
	"os"

	"github.com/hcstnb2047/lvdash/internal/config"
	"github.com/hcstnb2047/lvdash/internal/logger"
	"github.com/hcstnb2047/lvdash/internal/notify"
	"github.com/hcstnb2047/lvdash/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type deps struct {
	catalogJSON []byte
	loadConfig  func() (*config.Config, error)
	out         io.Writer
	logOut      io.Writer
}

func Execute(catalogJSON []byte) {
	cmd := newRootCmd(deps{
		catalogJSON: catalogJSON,
		loadConfig:  config.Load,
		out:         os.Stdout,
		logOut:      os.Stderr,
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(d deps) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "lvdash",
		Short:        "Dashboard for LifeVault workflows, knowledge notes and reading log",
		SilenceUsage: true,
	}
	cmd.SetOut(d.out)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// setup loads configuration and logging, then builds the app around the
	// given notifier. Commands other than serve log toasts.
	setup := func(notifier service.Notifier) (*app, error) {
		cfg, err := d.loadConfig()
		if err != nil {
			return nil, err
		}
		log := logger.Setup(logger.Config{
			Debug:  cfg.Debug || debug,
			Format: cfg.LogFormat,
			Output: d.logOut,
		})
		if notifier == nil {
			notifier = notify.Log{Logger: log}
		}
		return newApp(cfg, d.catalogJSON, notifier)
	}

	cmd.AddCommand(
		serveCmd(setup),
		patCmd(setup),
		workflowsCmd(setup),
		dispatchCmd(setup),
		knowledgeCmd(setup),
		booksCmd(setup),
	)
	return cmd
}

type setupFunc func(notifier service.Notifier) (*app, error)

// withApp runs fn with an app that logs toasts and closes it afterwards.
func withApp(setup setupFunc, fn func(a *app) error) error {
	a, err := setup(nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logrus.WithError(err).Warn("closing store failed")
		}
	}()
	return fn(a)
}
