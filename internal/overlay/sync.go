package overlay

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/model"
)

// Store keys
const (
	SettingsKey  = "settings"
	ReactionsKey = "reactions"
)

// ErrReactionNotFound is returned for unknown reaction ids
var ErrReactionNotFound = errors.New("reaction not found")

var logger = logging.Zone("soundboard/overlay")

// Store persists JSON-encodable values under string keys
type Store interface {
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
}

// Sync owns the settings and reactions on the primary surface. Committed
// changes are persisted and published; previews are only published.
type Sync struct {
	mu         sync.RWMutex
	store      Store
	bus        *Bus
	settings   model.Settings
	reactions  []model.Reaction
	loaded     bool
	onSettings func(model.Settings)
	newID      func() string
}

// NewSync creates a sync holding the default settings and no reactions
func NewSync(store Store, bus *Bus) *Sync {
	return &Sync{
		store:    store,
		bus:      bus,
		settings: model.DefaultSettings(),
		newID:    uuid.NewString,
	}
}

// SetSettingsCallback sets the callback invoked with committed settings
func (s *Sync) SetSettingsCallback(callback func(model.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSettings = callback
}

// Load reads settings and reactions and publishes them. Stored settings are
// merged over the defaults.
func (s *Sync) Load() error {
	settings := model.DefaultSettings()
	if _, err := s.store.Get(SettingsKey, &settings); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	var reactions []model.Reaction
	if _, err := s.store.Get(ReactionsKey, &reactions); err != nil {
		return fmt.Errorf("load reactions: %w", err)
	}

	s.mu.Lock()
	s.settings = settings.Normalize()
	s.reactions = reactions
	s.loaded = true
	settings, reactions = s.settings, s.reactionsLocked()
	callback := s.onSettings
	s.mu.Unlock()

	s.bus.Publish(Message{Kind: KindSettingsUpdated, Settings: settings})
	s.bus.Publish(Message{Kind: KindReactionsUpdated, Reactions: reactions})
	if callback != nil {
		callback(settings)
	}
	return nil
}

// Settings returns the committed settings
func (s *Sync) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SaveSettings commits settings: they are persisted and pushed to the overlay
func (s *Sync) SaveSettings(settings model.Settings) {
	settings = settings.Normalize()

	s.mu.Lock()
	s.settings = settings
	if s.loaded {
		if err := s.store.Set(SettingsKey, settings); err != nil {
			logger.WithError(err).Error("failed to save settings")
		}
	}
	callback := s.onSettings
	s.mu.Unlock()

	s.bus.Publish(Message{Kind: KindSettingsUpdated, Settings: settings})
	if callback != nil {
		callback(settings)
	}
}

// UpdateSettings applies fn to a copy of the committed settings and saves the result
func (s *Sync) UpdateSettings(fn func(*model.Settings)) model.Settings {
	settings := s.Settings()
	fn(&settings)
	s.SaveSettings(settings)
	return s.Settings()
}

// PreviewSettings pushes settings to the overlay without persisting or
// committing them
func (s *Sync) PreviewSettings(settings model.Settings) {
	s.bus.Publish(Message{Kind: KindPreviewSettings, Settings: settings.Normalize()})
}

// ToggleOverlay asks the overlay controller to show or hide the overlay
func (s *Sync) ToggleOverlay() {
	s.bus.Publish(Message{Kind: KindToggleOverlay})
}

// Reactions returns a copy of the reactions in order
func (s *Sync) Reactions() []model.Reaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reactionsLocked()
}

// AddReaction appends a reaction with the default labels
func (s *Sync) AddReaction() model.Reaction {
	r := model.NewReaction(s.newID())

	s.mu.Lock()
	s.reactions = append(s.reactions, r)
	reactions := s.commitReactionsLocked()
	s.mu.Unlock()

	s.publishReactions(reactions)
	return r
}

// UpdateReaction replaces the reaction with the same id
func (s *Sync) UpdateReaction(r model.Reaction) error {
	return s.modifyReaction(r.ID, func(existing *model.Reaction) {
		*existing = r
	})
}

// SetReactionImage attaches an image to a reaction, or detaches it when path is empty
func (s *Sync) SetReactionImage(id, path string) error {
	return s.modifyReaction(id, func(existing *model.Reaction) {
		existing.ImagePath = path
	})
}

// RemoveReaction deletes a reaction
func (s *Sync) RemoveReaction(id string) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrReactionNotFound, id)
	}
	s.reactions = append(s.reactions[:i], s.reactions[i+1:]...)
	reactions := s.commitReactionsLocked()
	s.mu.Unlock()

	s.publishReactions(reactions)
	return nil
}

func (s *Sync) modifyReaction(id string, fn func(*model.Reaction)) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrReactionNotFound, id)
	}
	fn(&s.reactions[i])
	reactions := s.commitReactionsLocked()
	s.mu.Unlock()

	s.publishReactions(reactions)
	return nil
}

// commitReactionsLocked persists the reactions once loaded and returns a copy to publish
func (s *Sync) commitReactionsLocked() []model.Reaction {
	if s.loaded {
		if err := s.store.Set(ReactionsKey, s.reactions); err != nil {
			logger.WithError(err).Error("failed to save reactions")
		}
	}
	return s.reactionsLocked()
}

func (s *Sync) publishReactions(reactions []model.Reaction) {
	s.bus.Publish(Message{Kind: KindReactionsUpdated, Reactions: reactions})
}

func (s *Sync) indexLocked(id string) int {
	for i, r := range s.reactions {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Sync) reactionsLocked() []model.Reaction {
	return append([]model.Reaction(nil), s.reactions...)
}
