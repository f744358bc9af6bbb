package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/soundboard/internal/model"
)

type rootFixture struct {
	ui      *RootUI
	library *fakeLibrary
	player  *fakePlayer
	clicker *fakeClicker
	board   *fakeBoard
	langs   *fakeLanguages
}

func newRootFixture(t *testing.T, tracks ...model.Track) *rootFixture {
	t.Helper()
	app := test.NewApp()
	w := test.NewWindow(nil)
	f := &rootFixture{
		library: newFakeLibrary(tracks...),
		player:  &fakePlayer{},
		clicker: &fakeClicker{},
		board:   newFakeBoard(),
		langs:   &fakeLanguages{lang: LangSystem},
	}
	f.ui = NewRootUI(w, app, Deps{
		Library:   f.library,
		Player:    f.player,
		Clicker:   f.clicker,
		Board:     f.board,
		Languages: f.langs,
	})
	return f
}

func TestRootUIRegistersCallbacks(t *testing.T) {
	f := newRootFixture(t, model.NewTrack("t1", "/a.mp3"))

	require.NotNil(t, f.library.onUpdate)
	require.NotNil(t, f.player.onUpdate)
	assert.Len(t, f.ui.tracks, 1)
	assert.False(t, f.ui.dropHint.Visible())
}

func TestRootUIDropIngestsFilePaths(t *testing.T) {
	f := newRootFixture(t)
	assert.True(t, f.ui.dropHint.Visible())

	f.ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{
		storage.NewFileURI("/sounds/a.mp3"),
		storage.NewFileURI("/sounds/b.wav"),
	})

	require.Len(t, f.library.ingested, 1)
	assert.Equal(t, []string{"/sounds/a.mp3", "/sounds/b.wav"}, f.library.ingested[0])
	assert.True(t, f.ui.notification.Visible())
}

func TestRootUIPlayingState(t *testing.T) {
	f := newRootFixture(t, model.NewTrack("t1", "/a.mp3"), model.NewTrack("t2", "/b.mp3"))

	f.ui.onPlayingUpdate([]string{"t2"})
	assert.False(t, f.ui.playing["t1"])
	assert.True(t, f.ui.playing["t2"])

	f.ui.onPlayingUpdate(nil)
	assert.Empty(t, f.ui.playing)
}

func TestRootUISettingsControls(t *testing.T) {
	f := newRootFixture(t)
	assert.Equal(t, 0, f.board.saves, "loading settings must not write them back")
	assert.Equal(t, 100.0, f.ui.masterSlider.Value)

	f.ui.policySelect.SetSelected(f.ui.policyName(model.PolicyMix))
	assert.Equal(t, model.PolicyMix, f.board.settings.Policy)

	f.ui.masterSlider.OnChanged(35)
	assert.Equal(t, 35, f.board.settings.MasterVolume)
	assert.Equal(t, "35%", f.ui.masterLabel.Text)

	f.ui.onDeviceChange(f.ui.localization.GetText(KeyDefaultDevice))
	assert.Equal(t, model.DefaultOutputDeviceID, f.board.settings.OutputDeviceID)
}

func TestRootUIActions(t *testing.T) {
	f := newRootFixture(t, model.NewTrack("t1", "/a.mp3"))

	test.Tap(f.ui.panicBtn)
	assert.Equal(t, 1, f.player.panics)

	test.Tap(f.ui.overlayBtn)
	assert.Equal(t, 1, f.board.toggles)

	f.ui.onTrackVolume("t1", 20)
	f.ui.onRenameTrack("t1", "horn")
	f.ui.onRemoveTrack("t1")
	assert.Equal(t, []string{"t1:volume", "t1:name"}, f.library.updates)
	assert.Equal(t, []string{"t1"}, f.library.removed)
}

func TestRootUILanguageChange(t *testing.T) {
	f := newRootFixture(t)

	f.ui.onLanguageChange(LangKorean)
	assert.Equal(t, LangKorean, f.langs.lang)
	assert.Equal(t, "사운드보드", f.ui.window.Title())
	assert.Equal(t, f.ui.localization.GetText(KeyPanic), f.ui.panicBtn.Text)
	assert.Equal(t, f.ui.policyName(model.PolicyExclusive), f.ui.policySelect.Selected)
}
