package model

// Package model defines domain data structures shared across the app: sound
// tracks and their trims, the settings singleton with its playback policy, and
// overlay reactions. JSON tags match the persisted store layout.
