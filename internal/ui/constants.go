package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay     = "▶"
	IconStop     = "■"
	IconFolder   = "📁"
	IconClose    = "×"
	IconKeyboard = "⌨"
	IconScissors = "✂"
	IconOverlay  = "🪟"
	IconAdd      = "+"
	IconImage    = "🖼"
	IconMusic    = "🎵"
)

// Text fragments
const (
	DashPlaceholder   = "—"
	VolumeLabelFormat = "%d%%"
)

// Layout sizing (TrackRow / lists)
const (
	VolumeSliderWidth float32 = 140
	VolumeLabelWidth  float32 = 44
	HotkeyButtonWidth float32 = 120

	RowMinWidth  float32 = 520
	RowMinHeight float32 = 44

	ReactionImageSize float32 = 48
)

// Dialog sizes
const (
	TrimDialogWidth        float32 = 460
	TrimDialogHeight       float32 = 260
	HotkeyDialogWidth      float32 = 360
	HotkeyDialogHeight     float32 = 180
	ReactionsWindowWidth   float32 = 560
	ReactionsWindowHeight  float32 = 520
	OverlayPanelCorner     float32 = 12
	OverlayPanelBorderSize float32 = 1
)

// Notification behavior
const (
	ToastAutoHide = 3 * time.Second
)

// Slider steps
const (
	VolumeStep  = 1.0
	OpacityStep = 0.05
	TrimStep    = 0.1
)
