package playback

// Package playback implements the playback policy engine: it decides what
// happens to sounds already playing when a track is triggered (exclusive,
// mix or queue), applies toggle semantics and fade-outs, and keeps the set of
// playing tracks the UI renders. It also provides the trim editor preview.
