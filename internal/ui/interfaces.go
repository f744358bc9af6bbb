package ui

import (
	"github.com/ytget/soundboard/internal/library"
	"github.com/ytget/soundboard/internal/model"
)

// Library is the track registry as seen by the UI
type Library interface {
	Tracks() []model.Track
	Track(id string) (model.Track, bool)
	Ingest(paths []string) []model.Track
	Update(id string, field library.Field, value any) error
	SetHotkey(id, accel string) (bool, error)
	HotkeyFailed(accel string) bool
	Remove(id string) error
	SetUpdateCallback(callback func([]model.Track))
}

// Player reports and controls playback
type Player interface {
	Panic()
	SetUpdateCallback(callback func(playing []string))
}

// Clicker triggers a track from the UI
type Clicker interface {
	Click(trackID string)
}

// Board is the primary side of overlay sync
type Board interface {
	Settings() model.Settings
	SaveSettings(settings model.Settings)
	UpdateSettings(fn func(*model.Settings)) model.Settings
	PreviewSettings(settings model.Settings)
	ToggleOverlay()
	Reactions() []model.Reaction
	AddReaction() model.Reaction
	UpdateReaction(r model.Reaction) error
	SetReactionImage(id, path string) error
	RemoveReaction(id string) error
}

// LanguageStore persists the UI language
type LanguageStore interface {
	GetLanguage() string
	SetLanguage(lang string)
}
