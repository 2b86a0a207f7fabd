package service

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/hcstnb2047/lvdash/internal/github"
	"github.com/hcstnb2047/lvdash/internal/notify"
	"github.com/hcstnb2047/lvdash/internal/store"
	"github.com/hcstnb2047/lvdash/models"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	client github.Client
	err    error
}

func (s staticSource) Client(context.Context) (github.Client, error) {
	return s.client, s.err
}

type publishedEvent struct {
	Type    notify.EventType
	Payload any
}

type fakeNotifier struct {
	mu     sync.Mutex
	toasts []models.Toast
	events []publishedEvent
}

func (n *fakeNotifier) Publish(eventType notify.EventType, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, publishedEvent{Type: eventType, Payload: payload})
}

func (n *fakeNotifier) Toast(kind models.ToastKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, models.Toast{Kind: kind, Message: message})
}

func (n *fakeNotifier) Toasts() []models.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.toasts)
}

func (n *fakeNotifier) Events(eventType notify.EventType) []any {
	n.mu.Lock()
	defer n.mu.Unlock()
	var payloads []any
	for _, e := range n.events {
		if e.Type == eventType {
			payloads = append(payloads, e.Payload)
		}
	}
	return payloads
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "lvdash.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}
