package overlay

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/soundboard/internal/model"
)

type fakeStore struct {
	data   map[string][]byte
	writes map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte), writes: make(map[string]int)}
}

func (s *fakeStore) Get(key string, v any) (bool, error) {
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (s *fakeStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[key] = raw
	s.writes[key]++
	return nil
}

func receive(t *testing.T, ch <-chan Message) Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func assertNoMessage(t *testing.T, ch <-chan Message) {
	t.Helper()
	select {
	case msg := <-ch:
		t.Fatalf("unexpected message %v", msg.Kind)
	case <-time.After(20 * time.Millisecond):
	}
}

func newTestSync(t *testing.T) (*Sync, *fakeStore, <-chan Message) {
	t.Helper()
	store := newFakeStore()
	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	msgs := bus.Subscribe(ctx)

	s := NewSync(store, bus)
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("r%d", n)
	}
	return s, store, msgs
}

func loadedSync(t *testing.T) (*Sync, *fakeStore, <-chan Message) {
	t.Helper()
	s, store, msgs := newTestSync(t)
	require.NoError(t, s.Load())
	receive(t, msgs)
	receive(t, msgs)
	return s, store, msgs
}

func TestSync_LoadMergesDefaults(t *testing.T) {
	s, store, msgs := newTestSync(t)
	store.data[SettingsKey] = []byte(`{"policy":"B","opacity":0.3}`)
	store.data[ReactionsKey] = []byte(`[{"id":"x","trigger":"5 Coins","action":"Dance","active":false}]`)

	var applied []model.Settings
	s.SetSettingsCallback(func(settings model.Settings) { applied = append(applied, settings) })
	require.NoError(t, s.Load())

	settings := s.Settings()
	assert.Equal(t, model.PolicyMix, settings.Policy)
	assert.Equal(t, 0.3, settings.Opacity)
	assert.Equal(t, model.DefaultMasterVolume, settings.MasterVolume)
	assert.Equal(t, model.DefaultOutputDeviceID, settings.OutputDeviceID)
	require.Len(t, applied, 1)

	assert.Equal(t, KindSettingsUpdated, receive(t, msgs).Kind)
	msg := receive(t, msgs)
	assert.Equal(t, KindReactionsUpdated, msg.Kind)
	assert.Len(t, msg.Reactions, 1)
	assert.Zero(t, store.writes[SettingsKey], "loading does not write")
}

func TestSync_PreviewThenRelease(t *testing.T) {
	s, store, msgs := loadedSync(t)
	settings := s.Settings()
	require.Equal(t, 0.6, settings.Opacity)

	// drag
	settings.Opacity = 0.2
	s.PreviewSettings(settings)

	preview := receive(t, msgs)
	assert.Equal(t, KindPreviewSettings, preview.Kind)
	assert.Equal(t, 0.2, preview.Settings.Opacity)
	assert.Zero(t, store.writes[SettingsKey])
	assert.Equal(t, 0.6, s.Settings().Opacity, "preview does not commit")

	// release
	s.SaveSettings(settings)

	committed := receive(t, msgs)
	assert.Equal(t, KindSettingsUpdated, committed.Kind)
	assert.Equal(t, 0.2, committed.Settings.Opacity)
	assert.Equal(t, 1, store.writes[SettingsKey])
	assertNoMessage(t, msgs)
}

func TestSync_SaveSettingsBeforeLoad(t *testing.T) {
	s, store, msgs := newTestSync(t)

	s.SaveSettings(model.Settings{MasterVolume: 250, Policy: model.PolicyMix})

	assert.Zero(t, store.writes[SettingsKey])
	msg := receive(t, msgs)
	assert.Equal(t, 100, msg.Settings.MasterVolume)
}

func TestSync_UpdateSettings(t *testing.T) {
	s, store, msgs := loadedSync(t)

	got := s.UpdateSettings(func(settings *model.Settings) {
		settings.MasterVolume = 40
	})

	assert.Equal(t, 40, got.MasterVolume)
	assert.Equal(t, 1, store.writes[SettingsKey])
	assert.Equal(t, KindSettingsUpdated, receive(t, msgs).Kind)
}

func TestSync_Reactions(t *testing.T) {
	s, store, msgs := loadedSync(t)

	r := s.AddReaction()
	assert.Equal(t, model.Reaction{ID: "r1", Trigger: "1 Coin", Action: "Clap", Active: true}, r)
	assert.Equal(t, KindReactionsUpdated, receive(t, msgs).Kind)

	r.Active = false
	r.Action = "Dance"
	require.NoError(t, s.UpdateReaction(r))
	msg := receive(t, msgs)
	assert.Equal(t, "Dance", msg.Reactions[0].Action)

	require.NoError(t, s.SetReactionImage("r1", "/img/coin.png"))
	msg = receive(t, msgs)
	assert.Equal(t, "/img/coin.png", msg.Reactions[0].ImagePath)

	require.NoError(t, s.RemoveReaction("r1"))
	msg = receive(t, msgs)
	assert.Empty(t, msg.Reactions)
	assert.Equal(t, 4, store.writes[ReactionsKey])

	assert.ErrorIs(t, s.RemoveReaction("r1"), ErrReactionNotFound)
	assert.ErrorIs(t, s.UpdateReaction(model.Reaction{ID: "nope"}), ErrReactionNotFound)
	assert.ErrorIs(t, s.SetReactionImage("nope", ""), ErrReactionNotFound)
}

func TestSync_ToggleOverlay(t *testing.T) {
	s, _, msgs := loadedSync(t)

	s.ToggleOverlay()
	assert.Equal(t, KindToggleOverlay, receive(t, msgs).Kind)
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		opacity float64
		want    Style
	}{
		{0, Style{}},
		{0.1, Style{Background: 0.1, BorderAlpha: 0.1 * 0.2}},
		{0.6, Style{Background: 0.6, Blur: 6, BorderAlpha: 0.12, Shadow: true}},
		{1, Style{Background: 1, Blur: 10, BorderAlpha: 0.2, Shadow: true}},
	}
	for _, tt := range tests {
		got := StyleFor(tt.opacity)
		assert.InDelta(t, tt.want.Background, got.Background, 1e-9)
		assert.InDelta(t, tt.want.Blur, got.Blur, 1e-9)
		assert.InDelta(t, tt.want.BorderAlpha, got.BorderAlpha, 1e-9)
		assert.Equal(t, tt.want.Shadow, got.Shadow, "opacity %v", tt.opacity)
	}
}

func TestView_Apply(t *testing.T) {
	v := NewView()
	assert.Equal(t, model.DefaultSettings(), v.Settings())

	changed := v.Apply(Message{Kind: KindReactionsUpdated, Reactions: []model.Reaction{
		{ID: "1", Active: true},
		{ID: "2", Active: false},
		{ID: "3", Active: true},
	}})
	assert.True(t, changed)
	active := v.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "3", active[1].ID)

	settings := model.DefaultSettings()
	settings.Opacity = 0.05
	assert.True(t, v.Apply(Message{Kind: KindPreviewSettings, Settings: settings}))
	assert.False(t, v.Style().Shadow)

	assert.False(t, v.Apply(Message{Kind: KindToggleOverlay}))
}

func TestView_RunFollowsBus(t *testing.T) {
	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := NewView()
	changes := make(chan struct{}, 4)
	go v.Run(ctx, bus.Subscribe(ctx), func() { changes <- struct{}{} })

	settings := model.DefaultSettings()
	settings.Opacity = 0.2
	bus.Publish(Message{Kind: KindPreviewSettings, Settings: settings})

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("view did not change")
	}
	assert.Equal(t, 0.2, v.Settings().Opacity)
}

type fakeSurface struct {
	visible bool
	shows   int
}

func (s *fakeSurface) Show() {
	s.visible = true
	s.shows++
}

func (s *fakeSurface) Hide()         { s.visible = false }
func (s *fakeSurface) Visible() bool { return s.visible }

func TestController_Toggle(t *testing.T) {
	created := 0
	surface := &fakeSurface{}
	c := NewController(func() Surface {
		created++
		return surface
	})
	assert.Nil(t, c.Surface())

	assert.True(t, c.Toggle(), "creating implies visible")
	assert.False(t, c.Toggle())
	assert.True(t, c.Toggle())
	assert.Equal(t, 1, created, "the surface is never recreated")
	assert.Equal(t, 2, surface.shows)
}

func TestController_Run(t *testing.T) {
	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	surface := &fakeSurface{}
	c := NewController(func() Surface { return surface })
	done := make(chan struct{})
	msgs := bus.Subscribe(ctx)
	go func() {
		c.Run(ctx, msgs)
		close(done)
	}()

	bus.Publish(Message{Kind: KindSettingsUpdated})
	bus.Publish(Message{Kind: KindToggleOverlay})

	require.Eventually(t, func() bool { return c.Surface() != nil }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.True(t, surface.Visible())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	msgs := bus.Subscribe(ctx)
	assert.Equal(t, 1, bus.Subscribers())

	cancel()
	select {
	case _, ok := <-msgs:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
	assert.Equal(t, 0, bus.Subscribers())

	bus.Publish(Message{Kind: KindToggleOverlay})
}
