package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/soundboard/internal/audio"
	"github.com/ytget/soundboard/internal/model"
)

func newTestEngine(policy model.Policy) (*Engine, *fakeBackend) {
	tracks := fakeTracks{
		"a": {ID: "a", Name: "A", Path: "/s/a.mp3", Hotkey: "F1", Volume: 80},
		"b": {ID: "b", Name: "B", Path: "/s/b.mp3", Hotkey: "F2", Volume: 100},
		"c": {ID: "c", Name: "C", Path: "/s/c.wav", Volume: 50, Trim: &model.Trim{Start: 1.5, End: 3}},
	}
	backend := newFakeBackend()
	e := NewEngine(tracks, backend, DefaultFadeOut)
	settings := model.DefaultSettings()
	settings.Policy = policy
	e.ApplySettings(settings)
	return e, backend
}

// completeFade delivers the fade event for s
func completeFade(e *Engine, s *fakeSound) {
	e.handleEvent(audio.Event{Kind: audio.EventFade, Sound: s})
}

func TestEngine_TriggerStartsTrack(t *testing.T) {
	e, backend := newTestEngine(model.PolicyExclusive)

	e.Trigger("a")

	s := backend.last()
	require.NotNil(t, s)
	assert.Equal(t, audio.Locator("/s/a.mp3"), s.locator)
	assert.InDelta(t, 0.8, s.opts.Volume, 1e-9)
	assert.Nil(t, s.opts.Sprite)
	assert.True(t, s.Playing())
	assert.Equal(t, []string{"a"}, e.Playing())
}

func TestEngine_TriggerUnknownTrack(t *testing.T) {
	e, backend := newTestEngine(model.PolicyExclusive)

	e.Trigger("missing")

	assert.Zero(t, backend.opened())
	assert.Empty(t, e.Playing())
}

func TestEngine_TrimmedTrackUsesSprite(t *testing.T) {
	e, backend := newTestEngine(model.PolicyMix)

	e.Trigger("c")

	s := backend.last()
	require.NotNil(t, s.opts.Sprite)
	assert.Equal(t, 1500*time.Millisecond, s.opts.Sprite.Start)
	assert.Equal(t, 3*time.Second, s.opts.Sprite.End)
}

func TestEngine_ExclusiveScenario(t *testing.T) {
	e, backend := newTestEngine(model.PolicyExclusive)

	e.Trigger("a")
	a := backend.last()
	assert.Equal(t, []string{"a"}, e.Playing())

	e.Trigger("b")
	b := backend.last()
	require.Len(t, a.fades, 1)
	assert.Equal(t, fadeCall{from: 0.8, to: 0, d: DefaultFadeOut}, a.fades[0])
	assert.True(t, b.Playing())

	completeFade(e, a)
	assert.False(t, a.Playing())
	assert.True(t, a.unloaded)
	assert.InDelta(t, 0.8, a.Volume(), 1e-9, "volume reset to the track volume")
	assert.Equal(t, []string{"b"}, e.Playing())

	// toggle B off
	e.Trigger("b")
	require.Len(t, b.fades, 1)
	completeFade(e, b)
	assert.Empty(t, e.Playing())
	assert.Equal(t, 2, backend.opened())
}

func TestEngine_MixScenario(t *testing.T) {
	for _, policy := range []model.Policy{model.PolicyMix, model.PolicyQueue} {
		t.Run(policy.String(), func(t *testing.T) {
			e, backend := newTestEngine(policy)

			e.Trigger("a")
			a := backend.last()
			e.Trigger("b")

			assert.Empty(t, a.fades)
			assert.Equal(t, []string{"a", "b"}, e.Playing())
		})
	}
}

func TestEngine_ToggleLaw(t *testing.T) {
	for _, policy := range model.Policies() {
		t.Run(policy.String(), func(t *testing.T) {
			e, backend := newTestEngine(policy)
			e.Trigger("b")
			before := e.Playing()

			e.Trigger("a")
			e.Trigger("a")
			a := backend.sounds[1]
			completeFade(e, a)

			if policy.StopsOthers() {
				b := backend.sounds[0]
				completeFade(e, b)
				assert.Empty(t, e.Playing())
			} else {
				assert.Equal(t, before, e.Playing())
			}
			assert.False(t, e.IsPlaying("a"))
		})
	}
}

func TestEngine_RetriggerWhileFadingDoesNotRefade(t *testing.T) {
	e, backend := newTestEngine(model.PolicyMix)

	e.Trigger("a")
	a := backend.last()
	e.Trigger("a")
	e.Trigger("a")

	assert.Equal(t, 1, a.fadeCount())
	assert.Equal(t, 1, backend.opened())
}

func TestEngine_StaleHandleReplaced(t *testing.T) {
	e, backend := newTestEngine(model.PolicyMix)

	e.Trigger("a")
	first := backend.last()
	first.Stop()
	e.handleEvent(audio.Event{Kind: audio.EventEnd, Sound: first})
	assert.Empty(t, e.Playing())

	e.Trigger("a")
	second := backend.last()
	assert.NotSame(t, first, second)
	assert.True(t, first.unloaded)
	assert.True(t, second.Playing())

	// events from the superseded sound are ignored
	e.handleEvent(audio.Event{Kind: audio.EventStop, Sound: first})
	assert.Equal(t, []string{"a"}, e.Playing())
}

func TestEngine_PanicMidFade(t *testing.T) {
	e, backend := newTestEngine(model.PolicyExclusive)

	e.Trigger("a")
	a := backend.last()
	e.Trigger("b")
	b := backend.last()
	require.Len(t, a.fades, 1)

	e.Panic()
	assert.Empty(t, e.Playing())
	assert.False(t, a.Playing())
	assert.False(t, b.Playing())

	// the late fade event must not act on the cancelled fade-stop
	completeFade(e, a)
	assert.False(t, a.unloaded)
	assert.Empty(t, e.Playing())

	// a stopped track plays again on the next trigger
	e.Trigger("a")
	assert.Equal(t, []string{"a"}, e.Playing())
}

func TestEngine_LoadError(t *testing.T) {
	e, backend := newTestEngine(model.PolicyMix)

	e.Trigger("a")
	a := backend.last()
	e.handleEvent(audio.Event{Kind: audio.EventLoadError, Sound: a, Err: errors.New("no such file")})

	assert.Empty(t, e.Playing())
	assert.True(t, a.unloaded)

	e.Trigger("a")
	assert.Equal(t, 2, backend.opened(), "no automatic retry, next trigger opens a fresh sound")
}

func TestEngine_StopTrack(t *testing.T) {
	e, backend := newTestEngine(model.PolicyMix)

	e.Trigger("a")
	a := backend.last()
	e.StopTrack("a")

	assert.True(t, a.unloaded)
	assert.False(t, e.IsPlaying("a"))
	e.StopTrack("a")
}

func TestEngine_SetTrackVolume(t *testing.T) {
	e, backend := newTestEngine(model.PolicyMix)

	e.Trigger("a")
	a := backend.last()
	e.SetTrackVolume("a", 30)
	assert.InDelta(t, 0.3, a.Volume(), 1e-9)

	// while fading, the new level is applied on reset
	e.Trigger("a")
	a.SetVolume(0.1)
	e.SetTrackVolume("a", 60)
	assert.InDelta(t, 0.1, a.Volume(), 1e-9)
	completeFade(e, a)
	assert.InDelta(t, 0.6, a.Volume(), 1e-9)

	e.SetTrackVolume("missing", 10)
}

func TestEngine_ApplySettings(t *testing.T) {
	e, backend := newTestEngine(model.PolicyExclusive)

	e.ApplySettings(model.Settings{MasterVolume: 40, Policy: model.PolicyMix, OutputDeviceID: "usb"})
	assert.Equal(t, model.PolicyMix, e.Policy())
	assert.InDelta(t, 0.4, backend.master, 1e-9)
	assert.Equal(t, []string{"usb"}, backend.devices)

	// unchanged device is not reapplied
	e.ApplySettings(model.Settings{MasterVolume: 40, Policy: "Z", OutputDeviceID: "usb"})
	assert.Equal(t, model.DefaultPolicy, e.Policy())
	assert.Len(t, backend.devices, 1)
}

func TestEngine_UpdateCallback(t *testing.T) {
	e, backend := newTestEngine(model.PolicyMix)

	var updates [][]string
	e.SetUpdateCallback(func(playing []string) {
		updates = append(updates, playing)
	})

	e.Trigger("a")
	e.handleEvent(audio.Event{Kind: audio.EventEnd, Sound: backend.last()})
	e.handleEvent(audio.Event{Kind: audio.EventEnd, Sound: backend.last()})

	require.Len(t, updates, 2)
	assert.Equal(t, []string{"a"}, updates[0])
	assert.Empty(t, updates[1])
}

func TestEngine_Run(t *testing.T) {
	e, backend := newTestEngine(model.PolicyMix)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.Run(ctx)
		close(done)
	}()

	e.Trigger("a")
	backend.events <- audio.Event{Kind: audio.EventEnd, Sound: backend.last()}

	require.Eventually(t, func() bool { return !e.IsPlaying("a") }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
