package overlay

// Package overlay keeps the on-screen reaction overlay in step with the
// settings and reactions edited in the main window. Committed changes are
// persisted and pushed, preview changes are only pushed. The overlay side
// is a pure view of the last pushed state.
