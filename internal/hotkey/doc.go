package hotkey

// Package hotkey parses and normalizes accelerator strings such as
// "Ctrl+Shift+F1", builds them key by key from captured key presses, and
// registers them as system-wide hotkeys. Fired accelerators are reported as
// normalized strings on a single channel.
