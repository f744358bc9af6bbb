package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BoardTheme is a dark, dense theme. The board usually sits next to
// streaming software, so the variant is always dark.
type BoardTheme struct{}

// NewBoardTheme creates the soundboard theme
func NewBoardTheme() fyne.Theme {
	return &BoardTheme{}
}

// Color returns theme colors
func (t *BoardTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 67, G: 160, B: 71, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 229, G: 57, B: 53, A: 255} // panic and stop buttons
	case theme.ColorNameWarning:
		return color.NRGBA{R: 255, G: 179, B: 0, A: 255} // TRIMMED badge
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 126, G: 87, B: 194, A: 255}
	case theme.ColorNameBackground:
		return color.NRGBA{R: 24, G: 24, B: 28, A: 255}
	case theme.ColorNameInputBackground, theme.ColorNameButton:
		return color.NRGBA{R: 40, G: 40, B: 46, A: 255}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 236, G: 236, B: 240, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *BoardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BoardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; rows stay compact so many clips fit on screen
func (t *BoardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
