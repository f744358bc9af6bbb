package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/soundboard/internal/model"
	"github.com/ytget/soundboard/internal/platform"
)

// ReactionsWindow edits the reaction guide and the overlay opacity
type ReactionsWindow struct {
	app          fyne.App
	window       fyne.Window
	board        Board
	localization *Localization

	opacitySlider *widget.Slider
	opacityLabel  *widget.Label
	rows          *fyne.Container
}

// NewReactionsWindow creates the reaction board window, hidden until Show
func NewReactionsWindow(app fyne.App, board Board, localization *Localization) *ReactionsWindow {
	rw := &ReactionsWindow{
		app:          app,
		board:        board,
		localization: localization,
	}
	rw.createUI()
	return rw
}

// Show displays the window, recreating it if it was closed
func (rw *ReactionsWindow) Show() {
	if rw.window == nil {
		rw.createUI()
	}
	rw.loadCurrentSettings()
	rw.refreshRows()
	rw.window.Show()
	rw.window.RequestFocus()
}

// createUI creates the window UI
func (rw *ReactionsWindow) createUI() {
	rw.window = rw.app.NewWindow(rw.localization.GetText(KeyReactions))
	rw.window.Resize(fyne.NewSize(ReactionsWindowWidth, ReactionsWindowHeight))
	rw.window.SetOnClosed(func() {
		rw.window = nil
	})

	rw.opacityLabel = widget.NewLabel("")
	rw.opacityLabel.TextStyle = fyne.TextStyle{Monospace: true}

	rw.opacitySlider = widget.NewSlider(0, 1)
	rw.opacitySlider.Step = OpacityStep
	// Dragging only previews; the value is committed when the drag ends.
	rw.opacitySlider.OnChanged = func(v float64) {
		rw.setOpacityLabel(v)
		preview := rw.board.Settings()
		preview.Opacity = v
		rw.board.PreviewSettings(preview)
	}
	rw.opacitySlider.OnChangeEnded = func(v float64) {
		rw.board.UpdateSettings(func(s *model.Settings) {
			s.Opacity = v
		})
	}

	overlayBtn := widget.NewButton(IconOverlay+" "+rw.localization.GetText(KeyToggleOverlay), rw.board.ToggleOverlay)
	addBtn := widget.NewButton(IconAdd+" "+rw.localization.GetText(KeyAddReaction), func() {
		rw.board.AddReaction()
		rw.refreshRows()
	})
	addBtn.Importance = widget.HighImportance

	opacityRow := container.NewBorder(nil, nil,
		widget.NewLabel(rw.localization.GetText(KeyOpacity)),
		rw.opacityLabel,
		rw.opacitySlider,
	)

	top := container.NewVBox(
		opacityRow,
		container.NewHBox(overlayBtn, addBtn),
		widget.NewSeparator(),
	)

	rw.rows = container.NewVBox()
	rw.window.SetContent(container.NewBorder(top, nil, nil, nil, container.NewVScroll(rw.rows)))
}

// loadCurrentSettings loads the committed opacity into the slider
func (rw *ReactionsWindow) loadCurrentSettings() {
	opacity := rw.board.Settings().Opacity
	onChanged := rw.opacitySlider.OnChanged
	rw.opacitySlider.OnChanged = nil
	rw.opacitySlider.SetValue(opacity)
	rw.opacitySlider.OnChanged = onChanged
	rw.setOpacityLabel(opacity)
}

func (rw *ReactionsWindow) setOpacityLabel(v float64) {
	rw.opacityLabel.SetText(fmt.Sprintf(VolumeLabelFormat, int(v*100+0.5)))
}

// refreshRows rebuilds the reaction rows from the board
func (rw *ReactionsWindow) refreshRows() {
	rw.rows.RemoveAll()
	for _, r := range rw.board.Reactions() {
		rw.rows.Add(rw.createRow(r))
	}
	rw.rows.Refresh()
}

// createRow builds the editor for one reaction. Text edits are committed as
// they are typed.
func (rw *ReactionsWindow) createRow(r model.Reaction) fyne.CanvasObject {
	update := func(fn func(*model.Reaction)) {
		fn(&r)
		if err := rw.board.UpdateReaction(r); err != nil {
			logger.WithError(err).WithField("reaction", r.ID).Warn("failed to update reaction")
		}
	}

	trigger := widget.NewEntry()
	trigger.SetPlaceHolder(rw.localization.GetText(KeyReactionTrigger))
	trigger.SetText(r.Trigger)
	trigger.OnChanged = func(s string) {
		update(func(r *model.Reaction) { r.Trigger = s })
	}

	action := widget.NewEntry()
	action.SetPlaceHolder(rw.localization.GetText(KeyReactionAction))
	action.SetText(r.Action)
	action.OnChanged = func(s string) {
		update(func(r *model.Reaction) { r.Action = s })
	}

	active := widget.NewCheck(rw.localization.GetText(KeyReactionActive), nil)
	active.SetChecked(r.Active)
	active.OnChanged = func(checked bool) {
		update(func(r *model.Reaction) { r.Active = checked })
	}

	imageBtn := widget.NewButton(IconImage, func() {
		rw.pickImage(r.ID)
	})
	imageBtn.Importance = widget.LowImportance

	removeBtn := widget.NewButton(IconClose, func() {
		if err := rw.board.RemoveReaction(r.ID); err != nil {
			logger.WithError(err).WithField("reaction", r.ID).Warn("failed to remove reaction")
		}
		rw.refreshRows()
	})
	removeBtn.Importance = widget.DangerImportance

	left := container.NewHBox(active, reactionThumbnail(r), imageBtn)
	fields := container.NewGridWithColumns(2, trigger, action)
	return container.NewVBox(
		container.NewBorder(nil, nil, left, removeBtn, fields),
		widget.NewSeparator(),
	)
}

// pickImage lets the user attach an image to a reaction
func (rw *ReactionsWindow) pickImage(id string) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		if !platform.IsImageFile(path) {
			return
		}
		if err := rw.board.SetReactionImage(id, path); err != nil {
			logger.WithError(err).WithField("reaction", id).Warn("failed to set reaction image")
			return
		}
		rw.refreshRows()
	}, rw.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	fd.Show()
}

// reactionThumbnail renders the attached image, or a placeholder
func reactionThumbnail(r model.Reaction) fyne.CanvasObject {
	if !r.HasImage() {
		placeholder := widget.NewLabel(DashPlaceholder)
		placeholder.Alignment = fyne.TextAlignCenter
		return container.NewGridWrap(fyne.NewSize(ReactionImageSize, ReactionImageSize), placeholder)
	}
	img := canvas.NewImageFromFile(r.ImagePath)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(ReactionImageSize, ReactionImageSize))
	return img
}
