package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/soundboard/internal/model"
)

// TrackRow is one row of the track list
type TrackRow struct {
	widget.BaseWidget

	track        model.Track
	playing      bool
	hotkeyFailed bool
	syncing      bool // set while widgets are updated from track state
	localization *Localization

	// UI components
	playBtn      *widget.Button
	nameEntry    *widget.Entry
	trimmedLabel *widget.Label
	volumeSlider *widget.Slider
	volumeLabel  *widget.Label

	// Action buttons
	trimBtn   *widget.Button
	hotkeyBtn *widget.Button
	revealBtn *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onPlay   func(trackID string)
	onRename func(trackID, name string)
	onVolume func(trackID string, volume int)
	onTrim   func(trackID string)
	onHotkey func(trackID string)
	onReveal func(path string)
	onRemove func(trackID string)
}

// NewTrackRow creates a row for track
func NewTrackRow(track model.Track, localization *Localization) *TrackRow {
	tr := &TrackRow{
		track:        track,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTrack()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TrackRow) SetCallbacks(
	onPlay func(trackID string),
	onRename func(trackID, name string),
	onVolume func(trackID string, volume int),
	onTrim func(trackID string),
	onHotkey func(trackID string),
	onReveal func(path string),
	onRemove func(trackID string),
) {
	tr.onPlay = onPlay
	tr.onRename = onRename
	tr.onVolume = onVolume
	tr.onTrim = onTrim
	tr.onHotkey = onHotkey
	tr.onReveal = onReveal
	tr.onRemove = onRemove
}

// UpdateTrack updates the row with new track data and playback state
func (tr *TrackRow) UpdateTrack(track model.Track, playing, hotkeyFailed bool) {
	tr.track = track
	tr.playing = playing
	tr.hotkeyFailed = hotkeyFailed
	tr.updateFromTrack()
	tr.Refresh()
}

// Track returns the track currently shown
func (tr *TrackRow) Track() model.Track {
	return tr.track
}

// createUI creates the UI components
func (tr *TrackRow) createUI() {
	tr.playBtn = widget.NewButton(IconPlay, func() {
		if tr.onPlay != nil {
			tr.onPlay(tr.track.ID)
		}
	})
	tr.playBtn.Importance = widget.HighImportance

	tr.nameEntry = widget.NewEntry()
	tr.nameEntry.OnSubmitted = func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || name == tr.track.Name {
			tr.nameEntry.SetText(tr.track.Name)
			return
		}
		if tr.onRename != nil {
			tr.onRename(tr.track.ID, name)
		}
	}

	tr.trimmedLabel = widget.NewLabel("")
	tr.trimmedLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.trimmedLabel.Importance = widget.WarningImportance

	tr.volumeSlider = widget.NewSlider(model.MinVolume, model.MaxVolume)
	tr.volumeSlider.Step = VolumeStep
	tr.volumeSlider.OnChanged = func(v float64) {
		volume := int(v)
		tr.volumeLabel.SetText(fmt.Sprintf(VolumeLabelFormat, volume))
		if tr.syncing || volume == tr.track.Volume {
			return
		}
		tr.track.Volume = volume
		if tr.onVolume != nil {
			tr.onVolume(tr.track.ID, volume)
		}
	}
	tr.volumeLabel = widget.NewLabel("")
	tr.volumeLabel.Alignment = fyne.TextAlignTrailing
	tr.volumeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.trimBtn = widget.NewButton(IconScissors+" "+tr.localization.GetText(KeyTrim), func() {
		if tr.onTrim != nil {
			tr.onTrim(tr.track.ID)
		}
	})

	tr.hotkeyBtn = widget.NewButton("", func() {
		if tr.onHotkey != nil {
			tr.onHotkey(tr.track.ID)
		}
	})

	// reveal in file manager (Finder/Explorer) and highlight file
	tr.revealBtn = widget.NewButton(IconFolder, func() {
		if tr.onReveal != nil && tr.track.Path != "" {
			tr.onReveal(tr.track.Path)
		}
	})
	tr.revealBtn.Importance = widget.LowImportance

	tr.removeBtn = widget.NewButton(IconClose, func() {
		if tr.onRemove != nil {
			tr.onRemove(tr.track.ID)
		}
	})
	tr.removeBtn.Importance = widget.DangerImportance
}

// updateFromTrack updates UI components based on track state
func (tr *TrackRow) updateFromTrack() {
	tr.syncing = true
	defer func() { tr.syncing = false }()

	if tr.playing {
		tr.playBtn.SetText(IconStop)
		tr.playBtn.Importance = widget.DangerImportance
	} else {
		tr.playBtn.SetText(IconPlay)
		tr.playBtn.Importance = widget.HighImportance
	}
	tr.playBtn.Refresh()

	tr.trimBtn.SetText(IconScissors + " " + tr.localization.GetText(KeyTrim))

	if tr.nameEntry.Text != tr.track.Name {
		tr.nameEntry.SetText(tr.track.Name)
	}

	if tr.track.IsTrimmed() {
		tr.trimmedLabel.SetText(tr.localization.GetText(KeyTrimmed))
		tr.trimmedLabel.Show()
	} else {
		tr.trimmedLabel.SetText("")
		tr.trimmedLabel.Hide()
	}

	tr.volumeSlider.SetValue(float64(tr.track.Volume))
	tr.volumeLabel.SetText(fmt.Sprintf(VolumeLabelFormat, tr.track.Volume))

	tr.updateHotkeyButton()
}

// updateHotkeyButton shows the accelerator, flagged when registration failed
func (tr *TrackRow) updateHotkeyButton() {
	switch {
	case !tr.track.HasHotkey():
		tr.hotkeyBtn.SetText(IconKeyboard + " " + tr.localization.GetText(KeyNoHotkey))
		tr.hotkeyBtn.Importance = widget.LowImportance
	case tr.hotkeyFailed:
		tr.hotkeyBtn.SetText(IconKeyboard + " " + tr.track.Hotkey + " !")
		tr.hotkeyBtn.Importance = widget.DangerImportance
	default:
		tr.hotkeyBtn.SetText(IconKeyboard + " " + tr.track.Hotkey)
		tr.hotkeyBtn.Importance = widget.MediumImportance
	}
	tr.hotkeyBtn.Refresh()
}

// CreateRenderer creates the widget renderer
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	return &trackRowRenderer{trackRow: tr}
}

// trackRowRenderer renders the track row widget
type trackRowRenderer struct {
	trackRow *TrackRow
	layout   *fyne.Container
}

// Layout arranges the components
func (r *trackRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *trackRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *trackRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *trackRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *trackRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *trackRowRenderer) createLayout() {
	tr := r.trackRow

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	volume := container.NewHBox(
		fixedWidth(VolumeSliderWidth, tr.volumeSlider),
		fixedWidth(VolumeLabelWidth, tr.volumeLabel),
	)
	actions := container.NewHBox(
		volume,
		tr.trimBtn,
		fixedWidth(HotkeyButtonWidth, tr.hotkeyBtn),
		tr.revealBtn,
		tr.removeBtn,
	)

	left := container.NewHBox(tr.playBtn)
	center := container.NewBorder(nil, nil, nil, tr.trimmedLabel, tr.nameEntry)
	main := container.NewBorder(nil, nil, left, actions, center)

	r.layout = container.NewVBox(main, widget.NewSeparator())
}
