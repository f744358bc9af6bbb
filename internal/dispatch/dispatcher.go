// Package dispatch funnels hotkey and click triggers into the playback engine
// through one code path.
package dispatch

import (
	"context"

	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/model"
)

var logger = logging.Zone("soundboard/dispatch")

// Resolver looks up tracks against the current registry state
type Resolver interface {
	ByHotkey(accel string) (model.Track, bool)
	Track(id string) (model.Track, bool)
}

// Trigger is the playback entry point
type Trigger interface {
	Trigger(trackID string)
}

// Dispatcher routes triggers from every origin to the engine
type Dispatcher struct {
	tracks Resolver
	engine Trigger
}

// NewDispatcher creates a dispatcher
func NewDispatcher(tracks Resolver, engine Trigger) *Dispatcher {
	return &Dispatcher{tracks: tracks, engine: engine}
}

// Run handles fired accelerators until ctx is done or fired is closed
func (d *Dispatcher) Run(ctx context.Context, fired <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case accel, ok := <-fired:
			if !ok {
				return
			}
			d.Hotkey(accel)
		}
	}
}

// Hotkey triggers the track claiming accel at the time it fired. It reports
// whether a track was found.
func (d *Dispatcher) Hotkey(accel string) bool {
	track, ok := d.tracks.ByHotkey(accel)
	if !ok {
		logger.WithField("accelerator", accel).Debug("hotkey claims no track")
		return false
	}
	d.trigger(track.ID)
	return true
}

// Click triggers a track from the UI
func (d *Dispatcher) Click(trackID string) {
	if _, ok := d.tracks.Track(trackID); !ok {
		return
	}
	d.trigger(trackID)
}

func (d *Dispatcher) trigger(trackID string) {
	logger.WithField("track", trackID).Debug("trigger")
	d.engine.Trigger(trackID)
}
