package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences_SetGetDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	_, ok, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "theme", "dark"))
	require.NoError(t, s.Set(ctx, "theme", "light"))

	value, ok, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	require.NoError(t, s.Delete(ctx, "theme"))
	require.NoError(t, s.Delete(ctx, "theme"))
	_, ok, err = s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferences_JSON(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	require.NoError(t, s.SetJSON(ctx, "favorites", []string{"a.yml", "b.yml"}))

	var favs []string
	ok, err := s.GetJSON(ctx, "favorites", &favs)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a.yml", "b.yml"}, favs)

	require.NoError(t, s.Set(ctx, "broken", "{"))
	_, err = s.GetJSON(ctx, "broken", &favs)
	assert.Error(t, err)
}

func TestCache_TTL(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.PutCache(ctx, "knowledge-tree", map[string]int{"files": 3}))

	var got map[string]int
	at, ok, err := s.GetCache(ctx, "knowledge-tree", 5*time.Minute, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, got["files"])
	assert.True(t, at.Equal(now))

	now = now.Add(6 * time.Minute)
	_, ok, err = s.GetCache(ctx, "knowledge-tree", 5*time.Minute, &got)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.GetCache(ctx, "knowledge-tree", 0, &got)
	require.NoError(t, err)
	assert.True(t, ok, "zero ttl never expires")

	require.NoError(t, s.DeleteCache(ctx, "knowledge-tree"))
	_, ok, err = s.GetCache(ctx, "knowledge-tree", 0, &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(t.Context(), "theme", "dark"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	value, ok, err := s.Get(t.Context(), "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}
