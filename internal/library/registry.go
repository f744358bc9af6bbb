package library

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/soundboard/internal/hotkey"
	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/model"
	"github.com/ytget/soundboard/internal/platform"
)

// StoreKey is the store key of the track list
const StoreKey = "tracks"

// Field names a track field that can be updated
type Field string

// Updatable fields
const (
	FieldName   Field = "name"
	FieldVolume Field = "volume"
	FieldTrim   Field = "trim"
	FieldHotkey Field = "hotkey"
	FieldPath   Field = "path"
)

var (
	// ErrTrackNotFound is returned for unknown track ids
	ErrTrackNotFound = errors.New("track not found")
	// ErrInvalidField is returned for fields that cannot be updated
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidValue is returned when a value has the wrong type or range
	ErrInvalidValue = errors.New("invalid value")
)

var logger = logging.Zone("soundboard/library")

// Registry holds the tracks in display order
type Registry struct {
	mu        sync.RWMutex
	store     Store
	registrar Registrar
	player    Player
	tracks    []model.Track
	loaded    bool
	failed    map[string]bool // accelerators rejected by the last resync
	onUpdate  func([]model.Track)
	newID     func() string
	isAudio   func(string) bool
}

// NewRegistry creates an empty registry. Nothing is persisted until Load
// has completed.
func NewRegistry(store Store, registrar Registrar) *Registry {
	return &Registry{
		store:     store,
		registrar: registrar,
		failed:    make(map[string]bool),
		newID:     uuid.NewString,
		isAudio:   platform.IsAudioFile,
	}
}

// SetPlayer sets the playback engine used for live volume and removal
func (r *Registry) SetPlayer(player Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.player = player
}

// SetUpdateCallback sets the callback invoked with the track list after every mutation
func (r *Registry) SetUpdateCallback(callback func([]model.Track)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUpdate = callback
}

// Load reads the stored tracks and binds their hotkeys. A read failure keeps
// the registry empty and unloaded so the stored list is not overwritten.
func (r *Registry) Load() error {
	var stored []model.Track
	if _, err := r.store.Get(StoreKey, &stored); err != nil {
		return fmt.Errorf("load tracks: %w", err)
	}

	r.mu.Lock()
	r.tracks = make([]model.Track, 0, len(stored))
	for _, t := range stored {
		r.tracks = append(r.tracks, r.sanitize(t))
	}
	r.loaded = true
	r.resyncLocked()
	tracks, callback := r.snapshotLocked(), r.onUpdate
	r.mu.Unlock()

	logger.WithField("count", len(tracks)).Info("tracks loaded")
	if callback != nil {
		callback(tracks)
	}
	return nil
}

func (r *Registry) sanitize(t model.Track) model.Track {
	if t.ID == "" {
		t.ID = r.newID()
	}
	if t.Name == "" {
		t.Name = model.NameFromPath(t.Path)
	}
	t.Volume = model.ClampVolume(t.Volume)
	if t.Hotkey != "" {
		if accel := hotkey.Normalize(t.Hotkey); accel != "" {
			t.Hotkey = accel
		}
	}
	if t.Trim != nil && t.Trim.Validate(0) != nil {
		t.Trim = nil
	}
	return t
}

// Loaded reports whether Load has completed
func (r *Registry) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Tracks returns a copy of the tracks in order
func (r *Registry) Tracks() []model.Track {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// Track returns the track with id
func (r *Registry) Track(id string) (model.Track, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexLocked(id); i >= 0 {
		return r.tracks[i].Clone(), true
	}
	return model.Track{}, false
}

// ByHotkey returns the track claiming accel. Accelerators are compared in
// normalized form; the first claiming track wins.
func (r *Registry) ByHotkey(accel string) (model.Track, bool) {
	name := hotkey.Normalize(accel)
	if name == "" {
		return model.Track{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tracks {
		if t.Hotkey == name {
			return t.Clone(), true
		}
	}
	return model.Track{}, false
}

// HotkeyFailed reports whether accel was rejected by the registrar on the
// last rebinding
func (r *Registry) HotkeyFailed(accel string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.failed[hotkey.Normalize(accel)]
}

// Ingest appends a track for every audio file among paths
func (r *Registry) Ingest(paths []string) []model.Track {
	added := make([]model.Track, 0, len(paths))
	for _, p := range paths {
		if !r.isAudio(p) {
			logger.WithField("path", p).Debug("skipping non-audio file")
			continue
		}
		added = append(added, model.NewTrack(r.newID(), p))
	}
	if len(added) == 0 {
		return added
	}

	r.mu.Lock()
	for _, t := range added {
		r.tracks = append(r.tracks, t.Clone())
	}
	r.commitLocked()
	r.mu.Unlock()

	logger.WithField("count", len(added)).Info("tracks added")
	r.notifyUpdate()
	return added
}

// Update replaces one field of a track. A volume change is applied to the
// live sound right away.
func (r *Registry) Update(id string, field Field, value any) error {
	if field == FieldHotkey {
		accel, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: hotkey must be a string, got %T", ErrInvalidValue, value)
		}
		_, err := r.SetHotkey(id, accel)
		return err
	}

	r.mu.Lock()
	i := r.indexLocked(id)
	if i < 0 {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	track := r.tracks[i]
	if err := applyField(&track, field, value); err != nil {
		r.mu.Unlock()
		return err
	}
	r.tracks[i] = track
	r.commitLocked()
	player := r.player
	r.mu.Unlock()

	if field == FieldVolume && player != nil {
		player.SetTrackVolume(id, track.Volume)
	}
	r.notifyUpdate()
	return nil
}

func applyField(t *model.Track, field Field, value any) error {
	switch field {
	case FieldName:
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: name must be a string, got %T", ErrInvalidValue, value)
		}
		t.Name = name
	case FieldPath:
		path, ok := value.(string)
		if !ok || strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: path must be a non-empty string", ErrInvalidValue)
		}
		t.Path = path
	case FieldVolume:
		volume, err := toVolume(value)
		if err != nil {
			return err
		}
		t.Volume = volume
	case FieldTrim:
		trim, err := toTrim(value)
		if err != nil {
			return err
		}
		t.Trim = trim
	default:
		return fmt.Errorf("%w: %s", ErrInvalidField, field)
	}
	return nil
}

func toVolume(value any) (int, error) {
	var v int
	switch n := value.(type) {
	case int:
		v = n
	case float64:
		v = int(math.Round(n))
	default:
		return 0, fmt.Errorf("%w: volume must be a number, got %T", ErrInvalidValue, value)
	}
	if v < model.MinVolume || v > model.MaxVolume {
		return 0, fmt.Errorf("%w: volume %d out of range", ErrInvalidValue, v)
	}
	return v, nil
}

func toTrim(value any) (*model.Trim, error) {
	var trim model.Trim
	switch t := value.(type) {
	case nil:
		return nil, nil
	case *model.Trim:
		if t == nil {
			return nil, nil
		}
		trim = *t
	case model.Trim:
		trim = t
	default:
		return nil, fmt.Errorf("%w: trim must be a model.Trim, got %T", ErrInvalidValue, value)
	}
	if err := trim.Validate(0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return &trim, nil
}

// SetHotkey binds accel to a track, or clears the binding when accel is
// empty. The previous accelerator is released first. Another track claiming
// the same accelerator loses it. The result reports whether the registrar
// accepted the new binding.
func (r *Registry) SetHotkey(id, accel string) (bool, error) {
	name := ""
	if strings.TrimSpace(accel) != "" {
		name = hotkey.Normalize(accel)
		if name == "" {
			return false, fmt.Errorf("%w: %w: %q", ErrInvalidValue, hotkey.ErrInvalidAccelerator, accel)
		}
	}

	r.mu.Lock()
	i := r.indexLocked(id)
	if i < 0 {
		r.mu.Unlock()
		return false, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	if prev := r.tracks[i].Hotkey; prev != "" {
		r.registrar.Unregister(prev)
	}
	if name != "" {
		for j := range r.tracks {
			if j != i && r.tracks[j].Hotkey == name {
				logger.WithField("accelerator", name).WithField("track", r.tracks[j].ID).Info("hotkey moved to another track")
				r.tracks[j].Hotkey = ""
			}
		}
	}
	r.tracks[i].Hotkey = name
	r.commitLocked()
	ok := name == "" || !r.failed[name]
	r.mu.Unlock()

	r.notifyUpdate()
	return ok, nil
}

// Remove stops the track, releases its hotkey and drops it
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	i := r.indexLocked(id)
	if i < 0 {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	player := r.player
	r.mu.Unlock()

	if player != nil {
		player.StopTrack(id)
	}

	r.mu.Lock()
	if i = r.indexLocked(id); i >= 0 {
		if accel := r.tracks[i].Hotkey; accel != "" {
			r.registrar.Unregister(accel)
		}
		r.tracks = append(r.tracks[:i], r.tracks[i+1:]...)
		r.commitLocked()
	}
	r.mu.Unlock()

	r.notifyUpdate()
	return nil
}

// commitLocked persists the whole list and rebuilds every hotkey binding.
// Before Load completes nothing is written, so an empty startup state cannot
// replace the stored list.
func (r *Registry) commitLocked() {
	if !r.loaded {
		return
	}
	if err := r.store.Set(StoreKey, r.tracks); err != nil {
		logger.WithError(err).Error("failed to save tracks")
	}
	r.resyncLocked()
}

func (r *Registry) resyncLocked() {
	r.registrar.UnregisterAll()
	r.failed = make(map[string]bool)
	for _, t := range r.tracks {
		if t.Hotkey == "" {
			continue
		}
		if !r.registrar.Register(t.Hotkey) {
			r.failed[t.Hotkey] = true
			logger.WithField("accelerator", t.Hotkey).WithField("track", t.ID).Warn("hotkey registration failed")
		}
	}
}

func (r *Registry) indexLocked(id string) int {
	for i, t := range r.tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) snapshotLocked() []model.Track {
	tracks := make([]model.Track, len(r.tracks))
	for i, t := range r.tracks {
		tracks[i] = t.Clone()
	}
	return tracks
}

func (r *Registry) notifyUpdate() {
	r.mu.RLock()
	callback := r.onUpdate
	tracks := r.snapshotLocked()
	r.mu.RUnlock()
	if callback != nil {
		callback(tracks)
	}
}
