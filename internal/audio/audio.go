package audio

import (
	"time"
)

// EventKind identifies a sound lifecycle event
type EventKind int

const (
	// EventLoad is emitted once the resource is decoded and ready
	EventLoad EventKind = iota
	// EventLoadError is emitted when the resource cannot be opened or decoded
	EventLoadError
	// EventEnd is emitted when playback reaches the end of the sound or sprite
	EventEnd
	// EventStop is emitted after an explicit Stop
	EventStop
	// EventFade is emitted when a fade reaches its target volume
	EventFade
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case EventLoad:
		return "load"
	case EventLoadError:
		return "loaderror"
	case EventEnd:
		return "end"
	case EventStop:
		return "stop"
	case EventFade:
		return "fade"
	default:
		return "unknown"
	}
}

// Event is a lifecycle notification for one sound
type Event struct {
	Kind  EventKind
	Sound Sound
	Err   error
}

// Range is a sub-range of a resource played instead of the whole sound
type Range struct {
	Start time.Duration
	End   time.Duration
}

// Options configure a sound when it is opened
type Options struct {
	Volume float64 // 0.0 to 1.0, before the master volume
	Sprite *Range  // nil plays the whole resource

	// Events overrides the backend queue, used by previews that must not
	// reach the playback engine
	Events *Queue
}

// Sound is a playable instance of an audio resource
type Sound interface {
	Play()
	Stop()
	Unload()
	Seek(pos time.Duration)
	Volume() float64
	SetVolume(v float64)
	Fade(from, to float64, d time.Duration)
	Duration() time.Duration
	Playing() bool
}

// Backend opens sounds and owns the shared event queue
type Backend interface {
	Open(locator string, opts Options) Sound
	Events() <-chan Event
	SetMasterVolume(v float64)
	SetOutputDevice(id string) error
}
