package notify

import (
	"github.com/hcstnb2047/lvdash/models"
	"github.com/sirupsen/logrus"
)

// Log writes toasts and events to a logger instead of streaming them. The
// CLI uses it where no dashboard is connected.
type Log struct {
	Logger logrus.FieldLogger
}

func (l Log) Publish(eventType EventType, payload any) {
	l.Logger.WithField("event", eventType).Debugf("%+v", payload)
}

func (l Log) Toast(kind models.ToastKind, message string) {
	entry := l.Logger.WithField("toast", kind)
	if kind == models.ToastError {
		entry.Error(message)
		return
	}
	entry.Info(message)
}
