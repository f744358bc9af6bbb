package playback

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ytget/soundboard/internal/audio"
	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/model"
)

// DefaultFadeOut is the fade-to-silence used for exclusive cuts and toggles
const DefaultFadeOut = 300 * time.Millisecond

var logger = logging.Zone("soundboard/playback")

// handle is the live sound of one track
type handle struct {
	trackID string
	sound   audio.Sound
	volume  float64 // track volume restored after a fade
	fading  bool    // a fade-stop is pending
}

// Engine applies the playback policy to triggers and tracks what is playing
type Engine struct {
	mu       sync.Mutex
	tracks   TrackSource
	backend  audio.Backend
	policy   model.Policy
	device   string
	fadeOut  time.Duration
	handles  map[string]*handle
	playing  map[string]bool
	onUpdate func([]string) // callback for UI updates
}

// NewEngine creates an engine using the default policy
func NewEngine(tracks TrackSource, backend audio.Backend, fadeOut time.Duration) *Engine {
	if fadeOut <= 0 {
		fadeOut = DefaultFadeOut
	}
	return &Engine{
		tracks:  tracks,
		backend: backend,
		policy:  model.DefaultPolicy,
		device:  model.DefaultOutputDeviceID,
		fadeOut: fadeOut,
		handles: make(map[string]*handle),
		playing: make(map[string]bool),
	}
}

// SetUpdateCallback sets the callback invoked with the playing set after it changes
func (e *Engine) SetUpdateCallback(callback func(playing []string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onUpdate = callback
}

// Trigger plays or stops a track according to the current policy. Unknown
// ids are ignored.
func (e *Engine) Trigger(trackID string) {
	track, ok := e.tracks.Track(trackID)
	if !ok {
		logger.WithField("track", trackID).Debug("trigger for unknown track")
		return
	}

	e.mu.Lock()
	if e.policy.StopsOthers() {
		for id, h := range e.handles {
			if id != trackID && h.sound.Playing() {
				e.fadeStopLocked(h)
			}
		}
	}

	if h, ok := e.handles[trackID]; ok {
		if h.sound.Playing() {
			// toggle off
			e.fadeStopLocked(h)
			e.mu.Unlock()
			return
		}
		h.sound.Unload()
		delete(e.handles, trackID)
	}

	h := &handle{trackID: trackID, volume: track.Gain()}
	opts := audio.Options{Volume: h.volume}
	if track.Trim != nil {
		opts.Sprite = &audio.Range{Start: track.Trim.StartOffset(), End: track.Trim.EndOffset()}
	}
	h.sound = e.backend.Open(audio.Locator(track.Path), opts)
	h.sound.Play()
	e.handles[trackID] = h
	e.playing[trackID] = true
	playing := e.playingLocked()
	e.mu.Unlock()

	logger.WithField("track", trackID).WithField("policy", e.policyName()).Debug("track started")
	e.notifyUpdate(playing)
}

// fadeStopLocked starts the fade that ends in a stop. The stop itself
// happens when the fade event arrives.
func (e *Engine) fadeStopLocked(h *handle) {
	if h.fading {
		return
	}
	h.fading = true
	h.sound.Fade(h.sound.Volume(), 0, e.fadeOut)
}

// Panic stops every sound immediately and clears the playing set. Pending
// fade-stops are cancelled.
func (e *Engine) Panic() {
	e.mu.Lock()
	for _, h := range e.handles {
		h.fading = false
		h.sound.Stop()
		h.sound.SetVolume(h.volume)
	}
	e.playing = make(map[string]bool)
	e.mu.Unlock()

	logger.Info("panic stop")
	e.notifyUpdate(nil)
}

// StopTrack stops and releases the sound of one track without a fade
func (e *Engine) StopTrack(trackID string) {
	e.mu.Lock()
	if h, ok := e.handles[trackID]; ok {
		h.fading = false
		h.sound.Stop()
		h.sound.Unload()
		delete(e.handles, trackID)
	}
	changed := e.playing[trackID]
	delete(e.playing, trackID)
	playing := e.playingLocked()
	e.mu.Unlock()

	if changed {
		e.notifyUpdate(playing)
	}
}

// SetTrackVolume applies a track volume to its live sound. A sound that is
// fading out keeps fading and gets the new volume on reset.
func (e *Engine) SetTrackVolume(trackID string, volume int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	h, ok := e.handles[trackID]
	if !ok {
		return
	}
	h.volume = float64(model.ClampVolume(volume)) / model.MaxVolume
	if !h.fading {
		h.sound.SetVolume(h.volume)
	}
}

// ApplySettings applies the policy, master volume and output device
func (e *Engine) ApplySettings(settings model.Settings) {
	settings = settings.Normalize()

	e.mu.Lock()
	e.policy = settings.Policy
	deviceChanged := settings.OutputDeviceID != e.device
	e.device = settings.OutputDeviceID
	e.mu.Unlock()

	e.backend.SetMasterVolume(settings.MasterGain())
	if deviceChanged {
		if err := e.backend.SetOutputDevice(settings.OutputDeviceID); err != nil {
			logger.WithError(err).Warn("failed to set output device")
		}
	}
}

// Policy returns the active policy
func (e *Engine) Policy() model.Policy {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.policy
}

func (e *Engine) policyName() string {
	return e.Policy().String()
}

// Playing returns the ids of playing tracks, sorted
func (e *Engine) Playing() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playingLocked()
}

// IsPlaying reports whether a track is in the playing set
func (e *Engine) IsPlaying(trackID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing[trackID]
}

func (e *Engine) playingLocked() []string {
	ids := make([]string, 0, len(e.playing))
	for id := range e.playing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Run consumes backend events until ctx is done or the event stream closes
func (e *Engine) Run(ctx context.Context) {
	events := e.backend.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			e.handleEvent(ev)
		}
	}
}

// handleEvent processes one sound event. Events from sounds that no longer
// back a handle are ignored.
func (e *Engine) handleEvent(ev audio.Event) {
	e.mu.Lock()
	h := e.handleFor(ev.Sound)
	if h == nil {
		e.mu.Unlock()
		return
	}

	changed := false
	switch ev.Kind {
	case audio.EventFade:
		if !h.fading {
			break
		}
		h.fading = false
		h.sound.Stop()
		h.sound.SetVolume(h.volume)
		h.sound.Unload()
		delete(e.handles, h.trackID)
		changed = e.removePlayingLocked(h.trackID)
	case audio.EventEnd, audio.EventStop:
		changed = e.removePlayingLocked(h.trackID)
	case audio.EventLoadError:
		logger.WithError(ev.Err).WithField("track", h.trackID).Error("failed to load sound")
		h.sound.Unload()
		delete(e.handles, h.trackID)
		changed = e.removePlayingLocked(h.trackID)
	case audio.EventLoad:
		logger.WithField("track", h.trackID).Debug("sound loaded")
	}
	playing := e.playingLocked()
	e.mu.Unlock()

	if changed {
		e.notifyUpdate(playing)
	}
}

func (e *Engine) handleFor(sound audio.Sound) *handle {
	for _, h := range e.handles {
		if h.sound == sound {
			return h
		}
	}
	return nil
}

func (e *Engine) removePlayingLocked(trackID string) bool {
	if !e.playing[trackID] {
		return false
	}
	delete(e.playing, trackID)
	return true
}

// notifyUpdate calls the update callback outside the engine lock
func (e *Engine) notifyUpdate(playing []string) {
	e.mu.Lock()
	callback := e.onUpdate
	e.mu.Unlock()
	if callback != nil {
		callback(playing)
	}
}
