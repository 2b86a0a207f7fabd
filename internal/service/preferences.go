package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/hcstnb2047/lvdash/models"
)

const (
	keyFavorites = "favorites"
	keyHidden    = "hidden"
	keyTheme     = "theme"
)

type PreferencesService interface {
	Get(ctx context.Context) (models.Preferences, error)
	// ToggleFavorite flips the favorite flag and returns the new value.
	ToggleFavorite(ctx context.Context, fileName string) (bool, error)
	// ToggleHidden flips the hidden flag and returns the new value.
	ToggleHidden(ctx context.Context, fileName string) (bool, error)
	SetTheme(ctx context.Context, theme models.Theme) error
}

type preferencesService struct {
	store         Store
	defaultHidden []string

	// guards the load-change-save cycle of the toggles
	mu sync.Mutex
}

// NewPreferencesService keeps preferences in store. defaultHidden seeds the
// hidden set until the user changes it for the first time.
func NewPreferencesService(store Store, defaultHidden []string) PreferencesService {
	return &preferencesService{store: store, defaultHidden: defaultHidden}
}

func (s *preferencesService) Get(ctx context.Context) (models.Preferences, error) {
	favorites, err := s.loadSet(ctx, keyFavorites, nil)
	if err != nil {
		return models.Preferences{}, err
	}
	hidden, err := s.loadSet(ctx, keyHidden, s.defaultHidden)
	if err != nil {
		return models.Preferences{}, err
	}

	theme := models.ThemeSystem
	raw, ok, err := s.store.Get(ctx, keyTheme)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("loading theme: %w", err)
	}
	if ok && models.Theme(raw).Valid() {
		theme = models.Theme(raw)
	}

	return models.Preferences{Theme: theme, Favorites: favorites, Hidden: hidden}, nil
}

func (s *preferencesService) ToggleFavorite(ctx context.Context, fileName string) (bool, error) {
	return s.toggle(ctx, keyFavorites, fileName, nil)
}

func (s *preferencesService) ToggleHidden(ctx context.Context, fileName string) (bool, error) {
	return s.toggle(ctx, keyHidden, fileName, s.defaultHidden)
}

func (s *preferencesService) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	if err := s.store.Set(ctx, keyTheme, string(theme)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

func (s *preferencesService) toggle(ctx context.Context, key, fileName string, seed []string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.loadSet(ctx, key, seed)
	if err != nil {
		return false, err
	}

	var enabled bool
	if i := slices.Index(set, fileName); i >= 0 {
		set = slices.Delete(set, i, i+1)
	} else {
		set = append(set, fileName)
		enabled = true
	}

	if err := s.store.SetJSON(ctx, key, set); err != nil {
		return false, fmt.Errorf("saving %s: %w", key, err)
	}
	return enabled, nil
}

func (s *preferencesService) loadSet(ctx context.Context, key string, seed []string) ([]string, error) {
	var set []string
	ok, err := s.store.GetJSON(ctx, key, &set)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		set = slices.Clone(seed)
	}
	if set == nil {
		set = []string{}
	}
	return set, nil
}
