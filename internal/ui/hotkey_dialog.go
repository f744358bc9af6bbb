package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/soundboard/internal/hotkey"
)

// HotkeyDialog captures an accelerator key by key
type HotkeyDialog struct {
	window       fyne.Window
	localization *Localization
	combo        *hotkey.Combo
	dialog       dialog.Dialog
	onSave       func(accel string)

	comboLabel *widget.Label
	errorLabel *widget.Label
	saveBtn    *widget.Button
}

// NewHotkeyDialog creates a capture dialog starting from current. onSave
// receives the normalized accelerator, or "" when the hotkey is cleared.
func NewHotkeyDialog(window fyne.Window, localization *Localization, current string, onSave func(accel string)) *HotkeyDialog {
	hd := &HotkeyDialog{
		window:       window,
		localization: localization,
		combo:        hotkey.NewCombo(current),
		onSave:       onSave,
	}
	hd.createUI()
	return hd
}

// ShowHotkeyDialog creates and shows a capture dialog
func ShowHotkeyDialog(window fyne.Window, localization *Localization, current string, onSave func(accel string)) *HotkeyDialog {
	hd := NewHotkeyDialog(window, localization, current, onSave)
	hd.Show()
	return hd
}

// Show displays the dialog and starts capturing keys
func (hd *HotkeyDialog) Show() {
	if dc, ok := hd.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			hd.Press(string(ev.Name))
		})
	}
	hd.dialog.Show()
}

// Press feeds a key name into the capture
func (hd *HotkeyDialog) Press(key string) {
	switch hd.combo.Press(key) {
	case hotkey.ComboConfirmed:
		hd.save()
	case hotkey.ComboCancelled:
		hd.close()
	default:
		hd.refresh()
	}
}

// Combo returns the captured accelerator as displayed
func (hd *HotkeyDialog) Combo() string {
	return hd.combo.String()
}

func (hd *HotkeyDialog) createUI() {
	prompt := widget.NewLabel(hd.localization.GetText(KeyHotkeyPrompt))
	prompt.Wrapping = fyne.TextWrapWord

	hd.comboLabel = widget.NewLabel("")
	hd.comboLabel.Alignment = fyne.TextAlignCenter
	hd.comboLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	hd.errorLabel = widget.NewLabel("")
	hd.errorLabel.Importance = widget.DangerImportance
	hd.errorLabel.Hide()

	clearBtn := widget.NewButton(hd.localization.GetText(KeyClear), func() {
		hd.combo.Clear()
		hd.refresh()
	})
	cancelBtn := widget.NewButton(hd.localization.GetText(KeyCancel), hd.close)
	hd.saveBtn = widget.NewButton(hd.localization.GetText(KeySave), hd.save)
	hd.saveBtn.Importance = widget.HighImportance

	content := container.NewVBox(
		prompt,
		widget.NewSeparator(),
		hd.comboLabel,
		hd.errorLabel,
		container.NewHBox(clearBtn, layout.NewSpacer(), cancelBtn, hd.saveBtn),
	)

	hd.dialog = dialog.NewCustomWithoutButtons(hd.localization.GetText(KeyHotkey), content, hd.window)
	hd.dialog.Resize(fyne.NewSize(HotkeyDialogWidth, HotkeyDialogHeight))
	hd.dialog.SetOnClosed(hd.release)
	hd.refresh()
}

func (hd *HotkeyDialog) refresh() {
	keys := hd.combo.Keys()
	if len(keys) == 0 {
		hd.comboLabel.SetText(DashPlaceholder)
	} else {
		hd.comboLabel.SetText(strings.Join(keys, " "+hotkey.Separator+" "))
	}
	hd.errorLabel.Hide()
}

// save accepts the capture. An empty capture clears the hotkey; anything
// else must parse as an accelerator.
func (hd *HotkeyDialog) save() {
	accel := ""
	if raw := hd.combo.String(); raw != "" {
		accel = hotkey.Normalize(raw)
		if accel == "" {
			hd.errorLabel.SetText(hd.localization.GetText(KeyHotkeyFailed) + ": " + raw)
			hd.errorLabel.Show()
			return
		}
	}
	hd.close()
	if hd.onSave != nil {
		hd.onSave(accel)
	}
}

func (hd *HotkeyDialog) close() {
	hd.dialog.Hide()
}

// release stops capturing once the dialog is gone
func (hd *HotkeyDialog) release() {
	if dc, ok := hd.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(nil)
	}
}
