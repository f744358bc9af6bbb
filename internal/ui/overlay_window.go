package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/soundboard/internal/model"
	"github.com/ytget/soundboard/internal/overlay"
)

// Panel colors; alpha comes from the overlay style
var (
	overlayPanelColor  = color.NRGBA{R: 0, G: 0, B: 0}
	overlayBorderColor = color.NRGBA{R: 255, G: 255, B: 255}
	overlayShadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 96}
	overlayTextColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// OverlayWindow is the frameless reaction guide captured by streaming software.
// It renders whatever the overlay view holds.
type OverlayWindow struct {
	window       fyne.Window
	view         *overlay.View
	localization *Localization
	visible      bool
}

// NewOverlayWindow creates the overlay window without showing it
func NewOverlayWindow(app fyne.App, view *overlay.View, localization *Localization, size fyne.Size) *OverlayWindow {
	var w fyne.Window
	if drv, ok := app.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
	} else {
		w = app.NewWindow(localization.GetText(KeyOverlayTitle))
	}
	w.SetTitle(localization.GetText(KeyOverlayTitle))
	w.Resize(size)

	ow := &OverlayWindow{
		window:       w,
		view:         view,
		localization: localization,
	}
	// Closing from the window manager only hides, the controller keeps the surface.
	w.SetCloseIntercept(ow.Hide)
	ow.Render()
	return ow
}

// Show displays the overlay
func (ow *OverlayWindow) Show() {
	ow.visible = true
	ow.window.Show()
}

// Hide hides the overlay without destroying it
func (ow *OverlayWindow) Hide() {
	ow.visible = false
	ow.window.Hide()
}

// Visible reports whether the overlay is shown
func (ow *OverlayWindow) Visible() bool {
	return ow.visible
}

// Render rebuilds the panel from the view. Must run on the UI goroutine.
func (ow *OverlayWindow) Render() {
	style := ow.view.Style()

	bg := canvas.NewRectangle(withAlpha(overlayPanelColor, style.Background))
	bg.CornerRadius = OverlayPanelCorner
	bg.StrokeColor = withAlpha(overlayBorderColor, style.BorderAlpha)
	bg.StrokeWidth = OverlayPanelBorderSize

	layers := []fyne.CanvasObject{}
	if style.Shadow {
		shadow := canvas.NewRectangle(overlayShadowColor)
		shadow.CornerRadius = OverlayPanelCorner + float32(style.Blur)
		layers = append(layers, container.NewPadded(shadow))
	}
	layers = append(layers, bg, container.NewPadded(ow.reactionList(ow.view.Active())))

	ow.window.SetContent(container.NewStack(layers...))
}

func (ow *OverlayWindow) reactionList(reactions []model.Reaction) fyne.CanvasObject {
	title := canvas.NewText(ow.localization.GetText(KeyOverlayTitle), overlayTextColor)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	items := container.NewVBox(title, widget.NewSeparator())
	if len(reactions) == 0 {
		empty := canvas.NewText(ow.localization.GetText(KeyOverlayEmpty), overlayTextColor)
		empty.Alignment = fyne.TextAlignCenter
		items.Add(empty)
		return items
	}

	for _, r := range reactions {
		trigger := canvas.NewText(r.Trigger, overlayTextColor)
		trigger.TextStyle = fyne.TextStyle{Bold: true}
		action := canvas.NewText(r.Action, overlayTextColor)

		var left fyne.CanvasObject = trigger
		if r.HasImage() {
			img := canvas.NewImageFromFile(r.ImagePath)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(ReactionImageSize, ReactionImageSize))
			left = container.NewHBox(img, trigger)
		}
		row := container.NewBorder(nil, nil, left, action)
		items.Add(row)
	}
	return items
}

// withAlpha returns c with alpha set from a 0.0 to 1.0 level
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}
