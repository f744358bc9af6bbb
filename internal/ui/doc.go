package ui

// Package ui contains the Fyne-based desktop user interface for the soundboard.
// It renders the track list, the reaction board and the overlay window, and
// forwards user interactions to the registry, the playback engine and overlay
// sync. All UI strings are localized via Localization.
