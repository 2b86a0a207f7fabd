package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Debug  bool
	Format string // "text" or "json"
	Output io.Writer
}

// Setup configures the standard logrus logger and returns it.
func Setup(cfg Config) *logrus.Logger {
	l := logrus.StandardLogger()

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		l.SetLevel(logrus.DebugLevel)
		l.SetReportCaller(true)
	}

	return l
}
