package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/platform"
)

// Backend timing and format constants
const (
	DefaultOutputDevice = "default"
	bytesPerFrame       = 4 // 16-bit stereo
	pollInterval        = 10 * time.Millisecond
	fadeStep            = 10 * time.Millisecond
)

var logger = logging.Zone("soundboard/audio")

// stream is what the ebiten decoders return
type stream interface {
	io.ReadSeeker
	Length() int64
}

// player is the part of *audio.Player a sound drives
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	Position() time.Duration
	SetPosition(offset time.Duration) error
	SetVolume(volume float64)
	Close() error
}

// EbitenBackend plays sounds through a shared ebiten audio context
type EbitenBackend struct {
	ctx        *audio.Context
	sampleRate int
	events     *Queue
	readFile   func(string) ([]byte, error)
	newPlayer  func(path string) (player, time.Duration, error)

	mu     sync.RWMutex
	master float64
	sounds map[*ebitenSound]struct{}
}

// NewEbitenBackend creates the backend. The ebiten context is process-wide,
// so an existing context is reused and its sample rate wins.
func NewEbitenBackend(sampleRate int) *EbitenBackend {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	b := &EbitenBackend{
		ctx:        ctx,
		sampleRate: ctx.SampleRate(),
		events:     NewQueue(),
		readFile:   os.ReadFile,
		master:     1,
		sounds:     make(map[*ebitenSound]struct{}),
	}
	b.newPlayer = b.openPlayer
	return b
}

// Events returns the ordered event stream of sounds opened without an override queue
func (b *EbitenBackend) Events() <-chan Event {
	return b.events.C()
}

// Close stops event delivery
func (b *EbitenBackend) Close() {
	b.events.Close()
}

// SetMasterVolume scales every live sound
func (b *EbitenBackend) SetMasterVolume(v float64) {
	b.mu.Lock()
	b.master = clamp01(v)
	sounds := make([]*ebitenSound, 0, len(b.sounds))
	for s := range b.sounds {
		sounds = append(sounds, s)
	}
	b.mu.Unlock()

	for _, s := range sounds {
		s.applyVolume()
	}
}

func (b *EbitenBackend) masterVolume() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.master
}

// SetOutputDevice selects the output device. ebiten always plays on the
// system default device.
func (b *EbitenBackend) SetOutputDevice(id string) error {
	if id == "" || id == DefaultOutputDevice {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedDevice, id)
}

// Open creates a sound and starts loading it in the background
func (b *EbitenBackend) Open(locator string, opts Options) Sound {
	events := opts.Events
	if events == nil {
		events = b.events
	}
	s := &ebitenSound{
		backend: b,
		locator: locator,
		sprite:  opts.Sprite,
		volume:  clamp01(opts.Volume),
		events:  events,
		logger:  logger.WithField("locator", locator),
	}

	b.mu.Lock()
	b.sounds[s] = struct{}{}
	b.mu.Unlock()

	go s.load()
	return s
}

func (b *EbitenBackend) forget(s *ebitenSound) {
	b.mu.Lock()
	delete(b.sounds, s)
	b.mu.Unlock()
}

// openPlayer decodes path and creates a player for it
func (b *EbitenBackend) openPlayer(path string) (player, time.Duration, error) {
	st, err := b.decode(path)
	if err != nil {
		return nil, 0, err
	}
	p, err := b.ctx.NewPlayer(st)
	if err != nil {
		return nil, 0, err
	}
	duration := time.Duration(st.Length()/bytesPerFrame) * time.Second / time.Duration(b.sampleRate)
	return p, duration, nil
}

func (b *EbitenBackend) decode(path string) (stream, error) {
	data, err := b.readFile(path)
	if err != nil {
		return nil, err
	}
	src := bytes.NewReader(data)

	format := platform.FormatFromExtension(path)
	if format == platform.FormatUnknown {
		format = platform.SniffFormat(src)
	}

	switch format {
	case platform.FormatMP3:
		return mp3.DecodeWithSampleRate(b.sampleRate, src)
	case platform.FormatWAV:
		return wav.DecodeWithSampleRate(b.sampleRate, src)
	case platform.FormatOgg:
		return vorbis.DecodeWithSampleRate(b.sampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", filepath.Base(path))
	}
}

type ebitenSound struct {
	backend *EbitenBackend
	locator string
	sprite  *Range
	events  *Queue
	logger  *logrus.Entry

	mu          sync.Mutex
	player      player
	duration    time.Duration
	volume      float64
	playPending bool
	seekPending *time.Duration
	unloaded    bool
	stopWatch   chan struct{}
	stopFade    chan struct{}
}

func (s *ebitenSound) load() {
	path, err := ResolveLocator(s.locator)
	var p player
	var duration time.Duration
	if err == nil {
		p, duration, err = s.backend.newPlayer(path)
	}
	if err != nil {
		s.backend.forget(s)
		s.emit(EventLoadError, fmt.Errorf("load %s: %w", s.locator, err))
		return
	}

	s.mu.Lock()
	if s.unloaded {
		s.mu.Unlock()
		_ = p.Close()
		return
	}
	s.player = p
	s.duration = duration
	p.SetVolume(s.volume * s.backend.masterVolume())
	if s.seekPending != nil {
		_ = p.SetPosition(*s.seekPending)
		s.seekPending = nil
	}
	s.mu.Unlock()

	s.emit(EventLoad, nil)

	s.mu.Lock()
	if s.playPending && !s.unloaded {
		s.startLocked()
	}
	s.mu.Unlock()
}

func (s *ebitenSound) emit(kind EventKind, err error) {
	s.events.Push(Event{Kind: kind, Sound: s, Err: err})
}

// Play starts playback, deferred until the resource is loaded
func (s *ebitenSound) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unloaded {
		return
	}
	if s.player == nil {
		s.playPending = true
		return
	}
	s.startLocked()
}

func (s *ebitenSound) startLocked() {
	s.playPending = false
	if s.sprite != nil && (s.player.Position() < s.sprite.Start || s.player.Position() >= s.sprite.End) {
		if err := s.player.SetPosition(s.sprite.Start); err != nil {
			s.logger.WithError(err).Warn("seek to sprite start failed")
		}
	}
	s.player.Play()
	s.watchLocked()
}

// watchLocked polls the player until it reaches the end of the sound or sprite
func (s *ebitenSound) watchLocked() {
	if s.stopWatch != nil {
		close(s.stopWatch)
	}
	stop := make(chan struct{})
	s.stopWatch = stop
	p := s.player
	sprite := s.sprite

	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}

			s.mu.Lock()
			if s.stopWatch != stop {
				s.mu.Unlock()
				return
			}
			ended := !p.IsPlaying()
			if !ended && sprite != nil && p.Position() >= sprite.End {
				p.Pause()
				ended = true
			}
			if ended {
				s.stopWatch = nil
			}
			s.mu.Unlock()

			if ended {
				s.emit(EventEnd, nil)
				return
			}
		}
	}()
}

// Stop pauses and rewinds the sound
func (s *ebitenSound) Stop() {
	s.mu.Lock()
	if s.unloaded {
		s.mu.Unlock()
		return
	}
	s.playPending = false
	s.cancelLocked()
	if s.player != nil {
		s.player.Pause()
		start := time.Duration(0)
		if s.sprite != nil {
			start = s.sprite.Start
		}
		_ = s.player.SetPosition(start)
	}
	s.mu.Unlock()

	s.emit(EventStop, nil)
}

func (s *ebitenSound) cancelLocked() {
	if s.stopWatch != nil {
		close(s.stopWatch)
		s.stopWatch = nil
	}
	if s.stopFade != nil {
		close(s.stopFade)
		s.stopFade = nil
	}
}

// Unload releases the player. The sound is unusable afterwards.
func (s *ebitenSound) Unload() {
	s.mu.Lock()
	if s.unloaded {
		s.mu.Unlock()
		return
	}
	s.unloaded = true
	s.playPending = false
	s.cancelLocked()
	p := s.player
	s.player = nil
	s.mu.Unlock()

	s.backend.forget(s)
	if p != nil {
		if err := p.Close(); err != nil {
			s.logger.WithError(err).Debug("close player")
		}
	}
}

// Seek moves the playback position
func (s *ebitenSound) Seek(pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		s.seekPending = &pos
		return
	}
	if err := s.player.SetPosition(pos); err != nil {
		s.logger.WithError(err).Warn("seek failed")
	}
}

// Volume returns the sound volume before the master volume
func (s *ebitenSound) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetVolume sets the sound volume
func (s *ebitenSound) SetVolume(v float64) {
	s.mu.Lock()
	s.volume = clamp01(v)
	s.mu.Unlock()
	s.applyVolume()
}

func (s *ebitenSound) applyVolume() {
	master := s.backend.masterVolume()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		s.player.SetVolume(s.volume * master)
	}
}

// Fade ramps the volume from one level to another and emits EventFade when
// the target is reached. A new fade, Stop or Unload cancels it silently.
func (s *ebitenSound) Fade(from, to float64, d time.Duration) {
	s.mu.Lock()
	if s.unloaded {
		s.mu.Unlock()
		return
	}
	if s.stopFade != nil {
		close(s.stopFade)
	}
	stop := make(chan struct{})
	s.stopFade = stop
	s.mu.Unlock()

	s.SetVolume(from)

	go func() {
		steps := int(d / fadeStep)
		if steps < 1 {
			steps = 1
		}
		interval := d / time.Duration(steps)
		if interval <= 0 {
			interval = time.Millisecond
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for i := 1; i <= steps; i++ {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
			s.SetVolume(from + (to-from)*float64(i)/float64(steps))
		}

		s.mu.Lock()
		current := s.stopFade == stop
		if current {
			s.stopFade = nil
		}
		s.mu.Unlock()
		if current {
			s.emit(EventFade, nil)
		}
	}()
}

// Duration returns the resource length, zero until loaded
func (s *ebitenSound) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Playing reports whether the sound is playing or will play once loaded
func (s *ebitenSound) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playPending {
		return true
	}
	return s.player != nil && s.player.IsPlaying()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
