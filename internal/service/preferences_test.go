package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hcstnb2047/lvdash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences_Defaults(t *testing.T) {
	svc := NewPreferencesService(openStore(t), []string{"vault-sync.yml"})

	prefs, err := svc.Get(t.Context())

	require.NoError(t, err)
	assert.Equal(t, models.ThemeSystem, prefs.Theme)
	assert.Empty(t, prefs.Favorites)
	assert.NotNil(t, prefs.Favorites)
	assert.Equal(t, []string{"vault-sync.yml"}, prefs.Hidden)
}

func TestPreferences_ToggleFavorite(t *testing.T) {
	ctx := t.Context()
	svc := NewPreferencesService(openStore(t), nil)

	on, err := svc.ToggleFavorite(ctx, "daily-clips.yml")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = svc.ToggleFavorite(ctx, "weekly-review.yml")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := svc.ToggleFavorite(ctx, "daily-clips.yml")
	require.NoError(t, err)
	assert.False(t, off)

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"weekly-review.yml"}, prefs.Favorites)
}

func TestPreferences_ConcurrentTogglesKeepEveryChange(t *testing.T) {
	ctx := t.Context()
	svc := NewPreferencesService(openStore(t), nil)

	const n = 16
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ToggleFavorite(ctx, fmt.Sprintf("wf-%02d.yml", i))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, prefs.Favorites, n)
}

func TestPreferences_ToggleHiddenStartsFromDefaults(t *testing.T) {
	ctx := t.Context()
	st := openStore(t)
	svc := NewPreferencesService(st, []string{"vault-sync.yml", "cleanup.yml"})

	hidden, err := svc.ToggleHidden(ctx, "vault-sync.yml")
	require.NoError(t, err)
	assert.False(t, hidden)

	hidden, err = svc.ToggleHidden(ctx, "daily-clips.yml")
	require.NoError(t, err)
	assert.True(t, hidden)

	// once stored, the defaults no longer apply
	prefs, err := NewPreferencesService(st, []string{"vault-sync.yml"}).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cleanup.yml", "daily-clips.yml"}, prefs.Hidden)
}

func TestPreferences_SetTheme(t *testing.T) {
	ctx := t.Context()
	svc := NewPreferencesService(openStore(t), nil)

	require.NoError(t, svc.SetTheme(ctx, models.ThemeDark))

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, prefs.Theme)
}

func TestPreferences_SetThemeInvalid(t *testing.T) {
	svc := NewPreferencesService(openStore(t), nil)

	err := svc.SetTheme(t.Context(), models.Theme("sepia"))

	assert.ErrorIs(t, err, ErrInvalidTheme)
}
