package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/soundboard/internal/model"
	"github.com/ytget/soundboard/internal/playback"
)

func newTestWindow() fyne.Window {
	test.NewApp()
	w := test.NewWindow(nil)
	w.Resize(fyne.NewSize(800, 600))
	return w
}

func TestHotkeyDialogCapture(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		keys    []string
		saved   []string
	}{
		{"confirm with return", "", []string{"LeftControl", "LeftShift", "a", "Return"}, []string{"Ctrl+Shift+A"}},
		{"backspace undoes", "", []string{"LeftAlt", "F2", "BackSpace", "F3", "KP_Enter"}, []string{"Alt+F3"}},
		{"escape cancels", "Ctrl+1", []string{"F5", "Escape"}, nil},
		{"modifier only is rejected", "", []string{"LeftControl", "Return"}, nil},
		{"clearing saves empty", "Ctrl+1", []string{"BackSpace", "BackSpace", "Return"}, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWindow()
			var saved []string
			hd := ShowHotkeyDialog(w, NewLocalization(), tt.initial, func(accel string) {
				saved = append(saved, accel)
			})
			for _, k := range tt.keys {
				hd.Press(k)
			}
			assert.Equal(t, tt.saved, saved)
		})
	}
}

func TestHotkeyDialogShowsInvalidCombo(t *testing.T) {
	w := newTestWindow()
	hd := ShowHotkeyDialog(w, NewLocalization(), "", nil)

	hd.Press("LeftShift")
	assert.Equal(t, "Shift", hd.Combo())
	hd.Press("Return")
	assert.True(t, hd.errorLabel.Visible())

	hd.Press("b")
	assert.False(t, hd.errorLabel.Visible())
	assert.Equal(t, "Shift+B", hd.Combo())
}

func TestTrimDialogSaveAndClear(t *testing.T) {
	w := newTestWindow()
	backend := &previewBackend{duration: 10 * time.Second}
	track := model.NewTrack("t1", "/sounds/long.mp3")

	var saved []*model.Trim
	editor := playback.NewTrimEditor(backend, track, 0)
	td := NewTrimDialog(w, NewLocalization(), track, editor, func(trim *model.Trim) {
		saved = append(saved, trim)
	})
	td.Show()

	require.Eventually(t, func() bool { return !editor.Loading() }, time.Second, 5*time.Millisecond)
	td.refresh()
	assert.Equal(t, 10.0, td.endSlider.Max)
	assert.False(t, td.saveBtn.Disabled())

	td.startSlider.OnChanged(2)
	td.endSlider.OnChanged(2.2) // pushed out to the minimum gap
	start, end := editor.Range()
	assert.Equal(t, 2.0, start)
	assert.InDelta(t, 2.5, end, 1e-9)

	td.save()
	require.Len(t, saved, 1)
	assert.Equal(t, &model.Trim{Start: 2, End: 2.5}, saved[0])
}

func TestTrimDialogClear(t *testing.T) {
	w := newTestWindow()
	backend := &previewBackend{duration: 4 * time.Second}
	track := model.NewTrack("t1", "/sounds/short.mp3")
	track.Trim = &model.Trim{Start: 1, End: 3}

	var saved []*model.Trim
	cleared := false
	editor := playback.NewTrimEditor(backend, track, 0)
	td := NewTrimDialog(w, NewLocalization(), track, editor, func(trim *model.Trim) {
		saved = append(saved, trim)
		cleared = trim == nil
	})
	td.Show()

	require.Eventually(t, func() bool { return !editor.Loading() }, time.Second, 5*time.Millisecond)
	td.refresh()
	assert.Equal(t, 1.0, td.startSlider.Value)
	assert.Equal(t, 3.0, td.endSlider.Value)
	assert.Equal(t, "0:02.0 / 0:04.0", td.lengthLabel.Text)

	td.onSave(nil)
	assert.True(t, cleared)
	assert.Len(t, saved, 1)
}
