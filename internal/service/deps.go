package service

import (
	"context"
	"time"

	"github.com/hcstnb2047/lvdash/internal/notify"
	"github.com/hcstnb2047/lvdash/models"
)

// CacheStatus holds the dashboard's last workflow listing.
const CacheStatus = "status"

// repoCaches hold repository data and are dropped with the token.
var repoCaches = []string{CacheStatus, cacheKnowledgeTree, cacheReadingLog}

// Store is the persistence the services need; *store.Store satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	GetCache(ctx context.Context, key string, ttl time.Duration, v any) (time.Time, bool, error)
	PutCache(ctx context.Context, key string, v any) error
	DeleteCache(ctx context.Context, key string) error
}

// Notifier receives user-facing toasts and live updates; *notify.Hub
// satisfies it.
type Notifier interface {
	Publish(eventType notify.EventType, payload any)
	Toast(kind models.ToastKind, message string)
}
