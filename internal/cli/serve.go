package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hcstnb2047/lvdash/internal/handler"
	"github.com/hcstnb2047/lvdash/internal/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(setup setupFunc) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API and live event stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hub := notify.New()
			go hub.Run()
			defer hub.Stop()

			a, err := setup(hub)
			if err != nil {
				return err
			}
			defer a.Close()

			if addr == "" {
				addr = a.cfg.Addr
			}

			api := handler.New(handler.Services{
				Auth:        a.auth,
				Preferences: a.prefs,
				Workflows:   a.workflows,
				Dashboard:   a.dashboard,
				Knowledge:   a.knowledge,
				Books:       a.books,
				Events:      hub,
			})

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logrus.WithFields(logrus.Fields{"addr": addr, "repo": a.cfg.FullName()}).Info("serving dashboard")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logrus.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (defaults to LVDASH_ADDR)")
	return c
}
