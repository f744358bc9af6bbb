package library

// Package library owns the ordered list of tracks. It is the single source of
// truth for what a hotkey resolves to: every mutation is persisted and the
// global hotkey bindings are rebuilt from the current list.
