package playback

import (
	"sync"
	"time"

	"github.com/ytget/soundboard/internal/audio"
	"github.com/ytget/soundboard/internal/model"
)

type fadeCall struct {
	from, to float64
	d        time.Duration
}

type fakeSound struct {
	mu       sync.Mutex
	locator  string
	opts     audio.Options
	playing  bool
	volume   float64
	duration time.Duration
	position time.Duration
	fades    []fadeCall
	stops    int
	unloaded bool
}

func (s *fakeSound) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
}

func (s *fakeSound) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.stops++
}

func (s *fakeSound) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.unloaded = true
}

func (s *fakeSound) Seek(pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = pos
}

func (s *fakeSound) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

func (s *fakeSound) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = v
}

func (s *fakeSound) Fade(from, to float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fades = append(s.fades, fadeCall{from, to, d})
}

func (s *fakeSound) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

func (s *fakeSound) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

func (s *fakeSound) fadeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fades)
}

type fakeBackend struct {
	mu      sync.Mutex
	sounds  []*fakeSound
	master  float64
	devices []string
	events  chan audio.Event
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{master: 1, events: make(chan audio.Event, 16)}
}

func (b *fakeBackend) Open(locator string, opts audio.Options) audio.Sound {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := &fakeSound{locator: locator, opts: opts, volume: opts.Volume}
	b.sounds = append(b.sounds, s)
	return s
}

func (b *fakeBackend) Events() <-chan audio.Event { return b.events }

func (b *fakeBackend) SetMasterVolume(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.master = v
}

func (b *fakeBackend) SetOutputDevice(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.devices = append(b.devices, id)
	if id != "default" {
		return audio.ErrUnsupportedDevice
	}
	return nil
}

func (b *fakeBackend) last() *fakeSound {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.sounds) == 0 {
		return nil
	}
	return b.sounds[len(b.sounds)-1]
}

func (b *fakeBackend) opened() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sounds)
}

type fakeTracks map[string]model.Track

func (f fakeTracks) Track(id string) (model.Track, bool) {
	t, ok := f[id]
	return t, ok
}
