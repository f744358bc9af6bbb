package config

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/soundboard/internal/model"
)

// Keys for Fyne preferences
const (
	KeyTracks    = "tracks"
	KeySettings  = "settings"
	KeyReactions = "reactions"
	KeyLanguage  = "app_language"
)

// DefaultLanguage follows the system locale
const DefaultLanguage = "system"

// Store persists user state as JSON values in the Fyne preferences
type Store struct {
	app fyne.App
}

// NewStore creates a new store backed by the app preferences
func NewStore(app fyne.App) *Store {
	return &Store{app: app}
}

// Get decodes the value stored under key into v. It reports false when the
// key is absent, leaving v untouched so callers keep their defaults.
func (s *Store) Get(key string, v any) (bool, error) {
	raw := s.app.Preferences().String(key)
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set encodes v and stores it under key
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.app.Preferences().SetString(key, string(data))
	return nil
}

// LoadSettings returns the stored settings merged over the defaults
func (s *Store) LoadSettings() (model.Settings, error) {
	settings := model.DefaultSettings()
	if _, err := s.Get(KeySettings, &settings); err != nil {
		return model.DefaultSettings(), err
	}
	return settings.Normalize(), nil
}

// LoadTracks returns the stored tracks, or nil when none are stored
func (s *Store) LoadTracks() ([]model.Track, error) {
	var tracks []model.Track
	if _, err := s.Get(KeyTracks, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// LoadReactions returns the stored reactions, or nil when none are stored
func (s *Store) LoadReactions() ([]model.Reaction, error) {
	var reactions []model.Reaction
	if _, err := s.Get(KeyReactions, &reactions); err != nil {
		return nil, err
	}
	return reactions, nil
}

// GetLanguage returns the configured language
func (s *Store) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Store) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Store) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ko":     "한국어",
	}
}
