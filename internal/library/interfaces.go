package library

// Store persists JSON-encodable values under string keys
type Store interface {
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
}

// Registrar binds accelerators system-wide
type Registrar interface {
	Register(accel string) bool
	Unregister(accel string)
	UnregisterAll()
}

// Player is the part of the playback engine the registry drives
type Player interface {
	StopTrack(trackID string)
	SetTrackVolume(trackID string, volume int)
}
