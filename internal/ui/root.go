package ui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/soundboard/internal/library"
	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/model"
	"github.com/ytget/soundboard/internal/platform"
	"github.com/ytget/soundboard/internal/playback"
)

var logger = logging.Zone("soundboard/ui")

// Deps are the services the main window drives
type Deps struct {
	Library   Library
	Player    Player
	Clicker   Clicker
	Board     Board
	Languages LanguageStore
	// NewTrimEditor opens a preview editor for a track
	NewTrimEditor func(track model.Track) *playback.TrimEditor
}

// RootUI represents the main UI structure
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	deps         Deps
	localization *Localization

	// state mirrored from the services, touched on the UI goroutine only
	tracks  []model.Track
	playing map[string]bool

	// widgets
	trackList     *widget.List
	dropHint      *widget.Label
	addBtn        *widget.Button
	panicBtn      *widget.Button
	reactionsBtn  *widget.Button
	overlayBtn    *widget.Button
	masterSlider  *widget.Slider
	masterLabel   *widget.Label
	policySelect  *widget.Select
	deviceSelect  *widget.Select
	policyLabel   *widget.Label
	deviceLabel   *widget.Label
	reactionsWin  *ReactionsWindow
	settingsSync  bool
	notifyMu      sync.Mutex
	notifyTimer   *time.Timer
	notification  *fyne.Container
	notifyLabel   *widget.Label
	notifyDismiss *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, deps Deps) *RootUI {
	localization := NewLocalization()
	if deps.Languages != nil {
		localization.SetLanguage(deps.Languages.GetLanguage())
	}

	ui := &RootUI{
		app:          app,
		window:       window,
		deps:         deps,
		localization: localization,
		playing:      make(map[string]bool),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Service callbacks may fire on any goroutine
	deps.Library.SetUpdateCallback(func(tracks []model.Track) {
		fyne.Do(func() { ui.onTracksUpdate(tracks) })
	})
	deps.Player.SetUpdateCallback(func(playing []string) {
		fyne.Do(func() { ui.onPlayingUpdate(playing) })
	})

	ui.setupUI()
	ui.onTracksUpdate(deps.Library.Tracks())
	ui.loadSettings()
	return ui
}

// Localization returns the active localization
func (ui *RootUI) Localization() *Localization {
	return ui.localization
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.addBtn = widget.NewButton(IconMusic+" "+ui.localization.GetText(KeyAddTracks), ui.onAddTracks)
	ui.addBtn.Importance = widget.HighImportance

	ui.panicBtn = widget.NewButton(ui.localization.GetText(KeyPanic), ui.deps.Player.Panic)
	ui.panicBtn.Importance = widget.DangerImportance

	ui.reactionsBtn = widget.NewButton(ui.localization.GetText(KeyReactions), ui.onShowReactions)
	ui.overlayBtn = widget.NewButton(IconOverlay+" "+ui.localization.GetText(KeyToggleOverlay), ui.deps.Board.ToggleOverlay)

	ui.masterLabel = widget.NewLabel("")
	ui.masterLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.masterSlider = widget.NewSlider(model.MinVolume, model.MaxVolume)
	ui.masterSlider.Step = VolumeStep
	ui.masterSlider.OnChanged = ui.onMasterVolumeChange

	ui.policyLabel = widget.NewLabel(ui.localization.GetText(KeyPolicy))
	ui.policySelect = widget.NewSelect(ui.policyOptions(), ui.onPolicyChange)

	ui.deviceLabel = widget.NewLabel(ui.localization.GetText(KeyOutputDevice))
	ui.deviceSelect = widget.NewSelect(ui.deviceOptions(), ui.onDeviceChange)

	master := container.NewBorder(nil, nil,
		widget.NewLabel(ui.localization.GetText(KeyMasterVolume)),
		ui.masterLabel,
		ui.masterSlider,
	)
	controls := container.NewHBox(
		ui.addBtn,
		ui.policyLabel, ui.policySelect,
		ui.deviceLabel, ui.deviceSelect,
		ui.reactionsBtn, ui.overlayBtn,
	)
	topPanel := container.NewBorder(nil, nil, nil, ui.panicBtn, controls)

	// Notification panel under the controls (hidden by default)
	ui.notifyLabel = widget.NewLabel("")
	ui.notifyLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notifyDismiss = widget.NewButton(IconClose, ui.hideNotification)
	ui.notifyDismiss.Importance = widget.LowImportance
	ui.notification = container.NewBorder(nil, nil, nil, ui.notifyDismiss, ui.notifyLabel)
	ui.notification.Hide()

	top := container.NewVBox(topPanel, master, ui.notification, widget.NewSeparator())

	ui.trackList = widget.NewList(
		func() int {
			return len(ui.tracks)
		},
		func() fyne.CanvasObject { return ui.createTrackItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTrackItem(id, obj) },
	)

	ui.dropHint = widget.NewLabel(ui.localization.GetText(KeyDropHint))
	ui.dropHint.Alignment = fyne.TextAlignCenter

	content := container.NewBorder(
		top,
		nil,
		nil,
		nil,
		container.NewStack(ui.trackList, container.NewCenter(ui.dropHint)),
	)

	ui.window.SetContent(content)
	ui.window.SetOnDropped(ui.onDropped)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	addItem := fyne.NewMenuItem(ui.localization.GetText(KeyAddTracks), ui.onAddTracks)
	reactionsItem := fyne.NewMenuItem(ui.localization.GetText(KeyReactions), ui.onShowReactions)
	overlayItem := fyne.NewMenuItem(ui.localization.GetText(KeyToggleOverlay), ui.deps.Board.ToggleOverlay)
	panicItem := fyne.NewMenuItem(ui.localization.GetText(KeyPanic), ui.deps.Player.Panic)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			addItem,
			fyne.NewMenuItemSeparator(),
			reactionsItem,
			overlayItem,
			fyne.NewMenuItemSeparator(),
			panicItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	if ui.deps.Languages != nil {
		ui.deps.Languages.SetLanguage(langCode)
	}

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.addBtn.SetText(IconMusic + " " + ui.localization.GetText(KeyAddTracks))
	ui.panicBtn.SetText(ui.localization.GetText(KeyPanic))
	ui.reactionsBtn.SetText(ui.localization.GetText(KeyReactions))
	ui.overlayBtn.SetText(IconOverlay + " " + ui.localization.GetText(KeyToggleOverlay))
	ui.policyLabel.SetText(ui.localization.GetText(KeyPolicy))
	ui.deviceLabel.SetText(ui.localization.GetText(KeyOutputDevice))
	ui.dropHint.SetText(ui.localization.GetText(KeyDropHint))

	ui.settingsSync = true
	ui.policySelect.Options = ui.policyOptions()
	ui.deviceSelect.Options = ui.deviceOptions()
	ui.settingsSync = false
	ui.loadSettings()

	ui.trackList.Refresh()
}

// loadSettings mirrors the committed settings into the controls
func (ui *RootUI) loadSettings() {
	settings := ui.deps.Board.Settings()

	ui.settingsSync = true
	defer func() { ui.settingsSync = false }()

	ui.masterSlider.SetValue(float64(settings.MasterVolume))
	ui.masterLabel.SetText(fmt.Sprintf(VolumeLabelFormat, settings.MasterVolume))
	ui.policySelect.SetSelected(ui.policyName(settings.Policy))
	ui.deviceSelect.SetSelected(ui.deviceName(settings.OutputDeviceID))
}

// policyOptions returns the localized policy names in display order
func (ui *RootUI) policyOptions() []string {
	options := make([]string, 0, len(model.Policies()))
	for _, p := range model.Policies() {
		options = append(options, ui.policyName(p))
	}
	return options
}

func (ui *RootUI) policyName(p model.Policy) string {
	switch p {
	case model.PolicyExclusive:
		return ui.localization.GetText(KeyPolicyExclusive)
	case model.PolicyMix:
		return ui.localization.GetText(KeyPolicyMix)
	case model.PolicyQueue:
		return ui.localization.GetText(KeyPolicyQueue)
	}
	return p.String()
}

// deviceOptions lists the selectable output devices. Only the system
// default is offered by the audio backend.
func (ui *RootUI) deviceOptions() []string {
	return []string{ui.localization.GetText(KeyDefaultDevice)}
}

func (ui *RootUI) deviceName(id string) string {
	if id == "" || id == model.DefaultOutputDeviceID {
		return ui.localization.GetText(KeyDefaultDevice)
	}
	return id
}

// onMasterVolumeChange applies the master volume live
func (ui *RootUI) onMasterVolumeChange(v float64) {
	volume := int(v)
	ui.masterLabel.SetText(fmt.Sprintf(VolumeLabelFormat, volume))
	if ui.settingsSync || volume == ui.deps.Board.Settings().MasterVolume {
		return
	}
	ui.deps.Board.UpdateSettings(func(s *model.Settings) {
		s.MasterVolume = volume
	})
}

// onPolicyChange handles selection in the policy dropdown
func (ui *RootUI) onPolicyChange(selected string) {
	if ui.settingsSync {
		return
	}
	for _, p := range model.Policies() {
		if ui.policyName(p) != selected {
			continue
		}
		ui.deps.Board.UpdateSettings(func(s *model.Settings) {
			s.Policy = p
		})
		logger.WithField("policy", p.String()).Info("playback policy changed")
		return
	}
}

// onDeviceChange handles selection in the output device dropdown
func (ui *RootUI) onDeviceChange(selected string) {
	if ui.settingsSync {
		return
	}
	device := selected
	if selected == ui.localization.GetText(KeyDefaultDevice) {
		device = model.DefaultOutputDeviceID
	}
	ui.deps.Board.UpdateSettings(func(s *model.Settings) {
		s.OutputDeviceID = device
	})
}

// onTracksUpdate handles track list changes from the registry
func (ui *RootUI) onTracksUpdate(tracks []model.Track) {
	ui.tracks = tracks
	if len(tracks) == 0 {
		ui.dropHint.Show()
	} else {
		ui.dropHint.Hide()
	}
	ui.trackList.Refresh()
}

// onPlayingUpdate handles playing set changes from the engine
func (ui *RootUI) onPlayingUpdate(playing []string) {
	ui.playing = make(map[string]bool, len(playing))
	for _, id := range playing {
		ui.playing[id] = true
	}
	ui.trackList.Refresh()
}

// createTrackItem creates a new track row widget
func (ui *RootUI) createTrackItem() fyne.CanvasObject {
	row := NewTrackRow(model.Track{}, ui.localization)
	row.SetCallbacks(
		ui.deps.Clicker.Click,
		ui.onRenameTrack,
		ui.onTrackVolume,
		ui.onShowTrim,
		ui.onShowHotkey,
		ui.onRevealFile,
		ui.onRemoveTrack,
	)
	return row
}

// updateTrackItem updates a track row with current data
func (ui *RootUI) updateTrackItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.tracks) {
		return
	}
	track := ui.tracks[id]
	if row, ok := item.(*TrackRow); ok {
		failed := track.HasHotkey() && ui.deps.Library.HotkeyFailed(track.Hotkey)
		row.UpdateTrack(track, ui.playing[track.ID], failed)
	}
}

// onAddTracks opens a file dialog for an audio file
func (ui *RootUI) onAddTracks() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			logger.WithError(err).Warn("file dialog failed")
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		ui.ingest([]string{path})
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.AudioExtensions))
	fd.Show()
}

// onDropped handles files dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, u := range uris {
		if u.Scheme() == "file" {
			paths = append(paths, u.Path())
		}
	}
	ui.ingest(paths)
}

func (ui *RootUI) ingest(paths []string) {
	added := ui.deps.Library.Ingest(paths)
	if len(added) == 0 {
		ui.showNotification(ui.localization.GetText(KeyNoAudioFiles))
		return
	}
	logger.WithField("count", len(added)).Info("tracks added")
	ui.showNotification(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyTracksAdded), len(added)))
}

func (ui *RootUI) onRenameTrack(trackID, name string) {
	if err := ui.deps.Library.Update(trackID, library.FieldName, name); err != nil {
		logger.WithError(err).WithField("track", trackID).Warn("failed to rename track")
	}
}

func (ui *RootUI) onTrackVolume(trackID string, volume int) {
	if err := ui.deps.Library.Update(trackID, library.FieldVolume, volume); err != nil {
		logger.WithError(err).WithField("track", trackID).Warn("failed to set track volume")
	}
}

// onShowTrim opens the trim editor for a track
func (ui *RootUI) onShowTrim(trackID string) {
	track, ok := ui.deps.Library.Track(trackID)
	if !ok || ui.deps.NewTrimEditor == nil {
		return
	}
	editor := ui.deps.NewTrimEditor(track)
	NewTrimDialog(ui.window, ui.localization, track, editor, func(trim *model.Trim) {
		if err := ui.deps.Library.Update(trackID, library.FieldTrim, trim); err != nil {
			logger.WithError(err).WithField("track", trackID).Warn("failed to save trim")
			ui.showNotification(ui.localization.GetText(KeyInvalidTrim))
		}
	}).Show()
}

// onShowHotkey opens the hotkey capture dialog for a track
func (ui *RootUI) onShowHotkey(trackID string) {
	track, ok := ui.deps.Library.Track(trackID)
	if !ok {
		return
	}
	ShowHotkeyDialog(ui.window, ui.localization, track.Hotkey, func(accel string) {
		registered, err := ui.deps.Library.SetHotkey(trackID, accel)
		if err != nil {
			logger.WithError(err).WithField("track", trackID).Warn("failed to set hotkey")
		}
		if accel != "" && !registered {
			ui.showNotification(ui.localization.GetText(KeyHotkeyFailed) + ": " + accel)
		}
	})
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		logger.WithError(err).WithField("path", path).Warn("failed to reveal file")
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onRemoveTrack handles removing a track from the list
func (ui *RootUI) onRemoveTrack(trackID string) {
	if err := ui.deps.Library.Remove(trackID); err != nil {
		logger.WithError(err).WithField("track", trackID).Warn("failed to remove track")
	}
}

// onShowReactions shows the reaction board window
func (ui *RootUI) onShowReactions() {
	if ui.reactionsWin == nil {
		ui.reactionsWin = NewReactionsWindow(ui.app, ui.deps.Board, ui.localization)
	}
	ui.reactionsWin.Show()
}

// showNotification displays a message in the notification panel and hides
// it after ToastAutoHide.
func (ui *RootUI) showNotification(message string) {
	ui.notifyLabel.SetText(message)
	ui.notification.Show()

	ui.notifyMu.Lock()
	defer ui.notifyMu.Unlock()
	if ui.notifyTimer != nil {
		ui.notifyTimer.Stop()
	}
	ui.notifyTimer = time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(ui.hideNotification)
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notification.Hide()
}
