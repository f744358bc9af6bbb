package playback

import (
	"math"
	"sync"
	"time"

	"github.com/ytget/soundboard/internal/audio"
	"github.com/ytget/soundboard/internal/model"
)

// DefaultPreviewFade is the fade applied when a trim preview reaches its end
const DefaultPreviewFade = 100 * time.Millisecond

// timer is the part of *time.Timer the editor needs
type timer interface {
	Stop() bool
}

// TrimEditor previews a track and edits its trim range. It owns a private
// sound whose events never reach the engine.
type TrimEditor struct {
	mu          sync.Mutex
	sound       audio.Sound
	events      *audio.Queue
	previewFade time.Duration
	afterFunc   func(time.Duration, func()) timer

	loading    bool
	loadErr    error
	duration   float64
	start      float64
	end        float64
	trimmed    bool
	previewing bool
	closing    bool // preview fade in progress
	stopTimer  timer
	onChange   func()
}

// NewTrimEditor opens a preview sound for track and starts loading it
func NewTrimEditor(backend audio.Backend, track model.Track, previewFade time.Duration) *TrimEditor {
	if previewFade <= 0 {
		previewFade = DefaultPreviewFade
	}
	t := &TrimEditor{
		events:      audio.NewQueue(),
		previewFade: previewFade,
		afterFunc: func(d time.Duration, f func()) timer {
			return time.AfterFunc(d, f)
		},
		loading: true,
	}
	if track.Trim != nil {
		t.start = track.Trim.Start
		t.end = track.Trim.End
		t.trimmed = true
	}
	t.sound = backend.Open(audio.Locator(track.Path), audio.Options{Volume: 1, Events: t.events})
	go t.run()
	return t
}

// SetUpdateCallback sets the callback invoked after load and preview changes
func (t *TrimEditor) SetUpdateCallback(callback func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = callback
}

func (t *TrimEditor) run() {
	for ev := range t.events.C() {
		t.handleEvent(ev)
	}
}

func (t *TrimEditor) handleEvent(ev audio.Event) {
	t.mu.Lock()
	switch ev.Kind {
	case audio.EventLoad:
		t.loading = false
		t.duration = ev.Sound.Duration().Seconds()
		if !t.trimmed {
			t.end = t.duration
		}
	case audio.EventLoadError:
		t.loading = false
		t.loadErr = ev.Err
		logger.WithError(ev.Err).Error("failed to load trim preview")
	case audio.EventEnd:
		t.previewing = false
		t.closing = false
		t.cancelTimerLocked()
	case audio.EventFade:
		if t.closing {
			t.closing = false
			t.previewing = false
			t.sound.Stop()
			t.sound.SetVolume(1)
		}
	}
	callback := t.onChange
	t.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// Loading reports whether the resource is still loading
func (t *TrimEditor) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Err returns the load error, if loading failed
func (t *TrimEditor) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadErr
}

// Duration returns the resource length in seconds, zero until loaded
func (t *TrimEditor) Duration() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duration
}

// Range returns the current start and end in seconds
func (t *TrimEditor) Range() (start, end float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.start, t.end
}

// Previewing reports whether the preview is playing
func (t *TrimEditor) Previewing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.previewing
}

// SetStart moves the start, keeping it at least MinTrimGap before the end
func (t *TrimEditor) SetStart(secs float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start = math.Max(0, math.Min(secs, t.end-model.MinTrimGap))
	return t.start
}

// SetEnd moves the end, keeping it at least MinTrimGap after the start
func (t *TrimEditor) SetEnd(secs float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.end = math.Min(t.duration, math.Max(secs, t.start+model.MinTrimGap))
	return t.end
}

// SetStartFraction sets the start from a 0.0 to 1.0 position on the timeline
func (t *TrimEditor) SetStartFraction(p float64) float64 {
	return t.SetStart(clampFraction(p) * t.Duration())
}

// SetEndFraction sets the end from a 0.0 to 1.0 position on the timeline
func (t *TrimEditor) SetEndFraction(p float64) float64 {
	return t.SetEnd(clampFraction(p) * t.Duration())
}

func clampFraction(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}

// Preview toggles playback of the selected range. The preview fades out when
// the range has played.
func (t *TrimEditor) Preview() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loading || t.loadErr != nil {
		return
	}
	if t.previewing {
		t.sound.Stop()
		t.cancelTimerLocked()
		t.previewing = false
		t.closing = false
		t.sound.SetVolume(1)
		return
	}

	if t.sound.Playing() {
		t.sound.Stop()
	}
	t.sound.Seek(model.Seconds(t.start))
	t.sound.Play()
	t.previewing = true

	t.cancelTimerLocked()
	t.stopTimer = t.afterFunc(model.Seconds(t.end-t.start), t.fadePreview)
}

func (t *TrimEditor) fadePreview() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.previewing {
		return
	}
	t.stopTimer = nil
	t.closing = true
	t.sound.Fade(t.sound.Volume(), 0, t.previewFade)
}

func (t *TrimEditor) cancelTimerLocked() {
	if t.stopTimer != nil {
		t.stopTimer.Stop()
		t.stopTimer = nil
	}
}

// Confirm returns the selected range validated against the duration
func (t *TrimEditor) Confirm() (model.Trim, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	trim := model.Trim{Start: t.start, End: t.end}
	if err := trim.Validate(t.duration); err != nil {
		return model.Trim{}, err
	}
	return trim, nil
}

// Close stops the preview and releases the sound
func (t *TrimEditor) Close() {
	t.mu.Lock()
	t.cancelTimerLocked()
	t.previewing = false
	t.closing = false
	sound := t.sound
	t.mu.Unlock()

	sound.Stop()
	sound.Unload()
	t.events.Close()
}
