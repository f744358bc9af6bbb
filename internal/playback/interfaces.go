package playback

import "github.com/ytget/soundboard/internal/model"

// TrackSource resolves tracks at trigger time
type TrackSource interface {
	Track(id string) (model.Track, bool)
}

// Player defines the playback operations used by the UI and the registry.
type Player interface {
	SetUpdateCallback(func(playing []string))
	Trigger(trackID string)
	Panic()
	StopTrack(trackID string)
	SetTrackVolume(trackID string, volume int)
	ApplySettings(settings model.Settings)
	Playing() []string
	IsPlaying(trackID string) bool
}
