package repository

import (
	"errors"

	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

var ErrInvalidTheme = errors.New("theme must be dark or light")

// PrefsRepository holds the small per-profile preferences: theme, the
// catalog source address, and the install-prompt feature flag. Reads never
// fail; a broken entry degrades to its default.
type PrefsRepository interface {
	Theme() string // "dark", "light", or "" for the system preference
	SetTheme(theme string) error
	InstallPromptEnabled() bool
	SetInstallPromptEnabled(enabled bool) error
	CatalogSource() string // "" when no source has been chosen yet
	SetCatalogSource(url string) error
}

type prefsRepository struct {
	store StateStore
}

func NewPrefsRepository(store StateStore) PrefsRepository {
	return &prefsRepository{store: store}
}

func (r *prefsRepository) readString(key string) string {
	data, ok, err := r.store.Get(key)
	if err != nil {
		logger.Warn("Failed to read preference, using default", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return ""
	}
	if !ok {
		return ""
	}
	return string(data)
}

func (r *prefsRepository) Theme() string {
	theme := r.readString(StateKeyTheme)
	if theme != "dark" && theme != "light" {
		return ""
	}
	return theme
}

func (r *prefsRepository) SetTheme(theme string) error {
	if theme != "dark" && theme != "light" {
		return ErrInvalidTheme
	}
	return r.store.Set(StateKeyTheme, []byte(theme))
}

func (r *prefsRepository) InstallPromptEnabled() bool {
	return r.readString(StateKeyInstallPrompt) == "true"
}

func (r *prefsRepository) SetInstallPromptEnabled(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return r.store.Set(StateKeyInstallPrompt, []byte(value))
}

func (r *prefsRepository) CatalogSource() string {
	return r.readString(StateKeyCatalogSource)
}

func (r *prefsRepository) SetCatalogSource(url string) error {
	return r.store.Set(StateKeyCatalogSource, []byte(url))
}
