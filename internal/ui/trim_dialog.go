package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/soundboard/internal/model"
	"github.com/ytget/soundboard/internal/playback"
)

// TrimDialog edits the trim range of a track with a live preview
type TrimDialog struct {
	window       fyne.Window
	localization *Localization
	editor       *playback.TrimEditor
	dialog       dialog.Dialog
	onSave       func(trim *model.Trim)
	syncing      bool
	ready        bool

	statusLabel *widget.Label
	startSlider *widget.Slider
	endSlider   *widget.Slider
	startLabel  *widget.Label
	endLabel    *widget.Label
	lengthLabel *widget.Label
	previewBtn  *widget.Button
	saveBtn     *widget.Button
}

// NewTrimDialog creates a trim dialog over editor. onSave receives the new
// range, or nil when the trim is cleared.
func NewTrimDialog(window fyne.Window, localization *Localization, track model.Track, editor *playback.TrimEditor, onSave func(trim *model.Trim)) *TrimDialog {
	td := &TrimDialog{
		window:       window,
		localization: localization,
		editor:       editor,
		onSave:       onSave,
	}
	td.createUI(track)
	editor.SetUpdateCallback(func() {
		fyne.Do(td.refresh)
	})
	return td
}

// Show displays the dialog
func (td *TrimDialog) Show() {
	td.dialog.Show()
	td.refresh()
}

func (td *TrimDialog) createUI(track model.Track) {
	title := widget.NewLabel(track.Name)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	td.statusLabel = widget.NewLabel(td.localization.GetText(KeyLoading))

	td.startSlider = widget.NewSlider(0, 1)
	td.startSlider.Step = TrimStep
	td.startSlider.OnChanged = func(v float64) {
		if td.syncing {
			return
		}
		td.editor.SetStart(v)
		td.refresh()
	}
	td.endSlider = widget.NewSlider(0, 1)
	td.endSlider.Step = TrimStep
	td.endSlider.OnChanged = func(v float64) {
		if td.syncing {
			return
		}
		td.editor.SetEnd(v)
		td.refresh()
	}

	td.startLabel = widget.NewLabel("")
	td.startLabel.TextStyle = fyne.TextStyle{Monospace: true}
	td.endLabel = widget.NewLabel("")
	td.endLabel.TextStyle = fyne.TextStyle{Monospace: true}
	td.lengthLabel = widget.NewLabel("")
	td.lengthLabel.Alignment = fyne.TextAlignCenter

	td.previewBtn = widget.NewButton(IconPlay+" "+td.localization.GetText(KeyPreview), func() {
		td.editor.Preview()
		td.refresh()
	})

	clearBtn := widget.NewButton(td.localization.GetText(KeyClear), func() {
		td.close()
		if td.onSave != nil {
			td.onSave(nil)
		}
	})
	clearBtn.Importance = widget.LowImportance
	cancelBtn := widget.NewButton(td.localization.GetText(KeyCancel), td.close)
	td.saveBtn = widget.NewButton(td.localization.GetText(KeySave), td.save)
	td.saveBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem(td.localization.GetText(KeyStart), container.NewBorder(nil, nil, nil, td.startLabel, td.startSlider)),
		widget.NewFormItem(td.localization.GetText(KeyEnd), container.NewBorder(nil, nil, nil, td.endLabel, td.endSlider)),
	)

	content := container.NewVBox(
		title,
		td.statusLabel,
		form,
		td.lengthLabel,
		container.NewHBox(td.previewBtn, clearBtn, layout.NewSpacer(), cancelBtn, td.saveBtn),
	)

	td.dialog = dialog.NewCustomWithoutButtons(td.localization.GetText(KeyTrim), content, td.window)
	td.dialog.Resize(fyne.NewSize(TrimDialogWidth, TrimDialogHeight))
	td.dialog.SetOnClosed(td.editor.Close)
}

// refresh mirrors the editor state into the widgets
func (td *TrimDialog) refresh() {
	td.syncing = true
	defer func() { td.syncing = false }()

	switch {
	case td.editor.Err() != nil:
		td.statusLabel.SetText(td.localization.GetText(KeyLoadFailed))
		td.statusLabel.Importance = widget.DangerImportance
		td.statusLabel.Show()
		td.setEnabled(false)
		return
	case td.editor.Loading():
		td.statusLabel.SetText(td.localization.GetText(KeyLoading))
		td.statusLabel.Show()
		td.setEnabled(false)
		return
	}
	td.statusLabel.Hide()

	duration := td.editor.Duration()
	if !td.ready {
		td.startSlider.Max = duration
		td.endSlider.Max = duration
		td.ready = true
	}
	td.setEnabled(true)

	start, end := td.editor.Range()
	td.startSlider.SetValue(start)
	td.endSlider.SetValue(end)
	td.startLabel.SetText(model.FormatTime(start))
	td.endLabel.SetText(model.FormatTime(end))
	td.lengthLabel.SetText(model.FormatTime(end-start) + " / " + model.FormatTime(duration))

	if td.editor.Previewing() {
		td.previewBtn.SetText(IconStop + " " + td.localization.GetText(KeyStop))
	} else {
		td.previewBtn.SetText(IconPlay + " " + td.localization.GetText(KeyPreview))
	}
}

func (td *TrimDialog) setEnabled(enabled bool) {
	for _, w := range []fyne.Disableable{td.startSlider, td.endSlider, td.previewBtn, td.saveBtn} {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (td *TrimDialog) save() {
	trim, err := td.editor.Confirm()
	if err != nil {
		td.statusLabel.SetText(td.localization.GetText(KeyInvalidTrim))
		td.statusLabel.Importance = widget.DangerImportance
		td.statusLabel.Show()
		return
	}
	td.close()
	if td.onSave != nil {
		td.onSave(&trim)
	}
}

func (td *TrimDialog) close() {
	td.dialog.Hide()
}
