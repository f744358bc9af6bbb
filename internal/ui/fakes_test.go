package ui

import (
	"sync"
	"time"

	"github.com/ytget/soundboard/internal/audio"
	"github.com/ytget/soundboard/internal/library"
	"github.com/ytget/soundboard/internal/model"
)

type fakeLibrary struct {
	tracks   []model.Track
	ingested [][]string
	updates  []string
	removed  []string
	hotkeys  map[string]string
	failed   map[string]bool
	onUpdate func([]model.Track)
}

func newFakeLibrary(tracks ...model.Track) *fakeLibrary {
	return &fakeLibrary{tracks: tracks, hotkeys: make(map[string]string), failed: make(map[string]bool)}
}

func (l *fakeLibrary) Tracks() []model.Track { return append([]model.Track(nil), l.tracks...) }

func (l *fakeLibrary) Track(id string) (model.Track, bool) {
	for _, t := range l.tracks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Track{}, false
}

func (l *fakeLibrary) Ingest(paths []string) []model.Track {
	l.ingested = append(l.ingested, paths)
	var added []model.Track
	for _, p := range paths {
		if p == "" {
			continue
		}
		t := model.NewTrack(p, p)
		l.tracks = append(l.tracks, t)
		added = append(added, t)
	}
	return added
}

func (l *fakeLibrary) Update(id string, field library.Field, _ any) error {
	l.updates = append(l.updates, id+":"+string(field))
	return nil
}

func (l *fakeLibrary) SetHotkey(id, accel string) (bool, error) {
	l.hotkeys[id] = accel
	return !l.failed[accel], nil
}

func (l *fakeLibrary) HotkeyFailed(accel string) bool { return l.failed[accel] }

func (l *fakeLibrary) Remove(id string) error {
	l.removed = append(l.removed, id)
	return nil
}

func (l *fakeLibrary) SetUpdateCallback(callback func([]model.Track)) { l.onUpdate = callback }

type fakePlayer struct {
	panics   int
	onUpdate func([]string)
}

func (p *fakePlayer) Panic() { p.panics++ }

func (p *fakePlayer) SetUpdateCallback(callback func([]string)) { p.onUpdate = callback }

type fakeClicker struct {
	clicked []string
}

func (c *fakeClicker) Click(id string) { c.clicked = append(c.clicked, id) }

type fakeBoard struct {
	settings  model.Settings
	saves     int
	previews  []model.Settings
	toggles   int
	reactions []model.Reaction
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{settings: model.DefaultSettings()}
}

func (b *fakeBoard) Settings() model.Settings { return b.settings }

func (b *fakeBoard) SaveSettings(s model.Settings) {
	b.settings = s
	b.saves++
}

func (b *fakeBoard) UpdateSettings(fn func(*model.Settings)) model.Settings {
	s := b.settings
	fn(&s)
	b.SaveSettings(s)
	return s
}

func (b *fakeBoard) PreviewSettings(s model.Settings) { b.previews = append(b.previews, s) }

func (b *fakeBoard) ToggleOverlay() { b.toggles++ }

func (b *fakeBoard) Reactions() []model.Reaction {
	return append([]model.Reaction(nil), b.reactions...)
}

func (b *fakeBoard) AddReaction() model.Reaction {
	r := model.NewReaction(time.Now().String())
	b.reactions = append(b.reactions, r)
	return r
}

func (b *fakeBoard) UpdateReaction(r model.Reaction) error {
	for i := range b.reactions {
		if b.reactions[i].ID == r.ID {
			b.reactions[i] = r
		}
	}
	return nil
}

func (b *fakeBoard) SetReactionImage(id, path string) error {
	for i := range b.reactions {
		if b.reactions[i].ID == id {
			b.reactions[i].ImagePath = path
		}
	}
	return nil
}

func (b *fakeBoard) RemoveReaction(id string) error {
	for i := range b.reactions {
		if b.reactions[i].ID == id {
			b.reactions = append(b.reactions[:i], b.reactions[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLanguages struct {
	lang string
}

func (l *fakeLanguages) GetLanguage() string { return l.lang }

func (l *fakeLanguages) SetLanguage(lang string) { l.lang = lang }

// previewSound loads immediately with a fixed duration
type previewSound struct {
	mu       sync.Mutex
	playing  bool
	volume   float64
	duration time.Duration
	unloaded bool
}

func (s *previewSound) Play()                              { s.set(func() { s.playing = true }) }
func (s *previewSound) Stop()                              { s.set(func() { s.playing = false }) }
func (s *previewSound) Unload()                            { s.set(func() { s.unloaded = true }) }
func (s *previewSound) Seek(time.Duration)                 {}
func (s *previewSound) Fade(_, _ float64, _ time.Duration) {}
func (s *previewSound) SetVolume(v float64)                { s.set(func() { s.volume = v }) }
func (s *previewSound) Duration() time.Duration            { return s.duration }

func (s *previewSound) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

func (s *previewSound) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

func (s *previewSound) set(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

type previewBackend struct {
	duration time.Duration
	sound    *previewSound
}

func (b *previewBackend) Open(_ string, opts audio.Options) audio.Sound {
	b.sound = &previewSound{volume: opts.Volume, duration: b.duration}
	opts.Events.Push(audio.Event{Kind: audio.EventLoad, Sound: b.sound})
	return b.sound
}

func (b *previewBackend) Events() <-chan audio.Event { return nil }

func (b *previewBackend) SetMasterVolume(float64) {}

func (b *previewBackend) SetOutputDevice(string) error { return nil }
