package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Track volume bounds
const (
	MinVolume     = 0
	MaxVolume     = 100
	DefaultVolume = 100
)

// MinTrimGap is the smallest trim length, in seconds, accepted while editing.
const MinTrimGap = 0.5

// ErrInvalidTrim is returned when a trim range is outside the resource or empty.
var ErrInvalidTrim = errors.New("invalid trim")

// Trim selects the part of an audio resource to play, in seconds.
type Trim struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Validate checks 0 <= start < end <= duration. A non-positive duration skips
// the upper bound check because the resource length is unknown.
func (t Trim) Validate(duration float64) error {
	if t.Start < 0 {
		return fmt.Errorf("%w: start %.2fs is negative", ErrInvalidTrim, t.Start)
	}
	if t.End <= t.Start {
		return fmt.Errorf("%w: end %.2fs is not after start %.2fs", ErrInvalidTrim, t.End, t.Start)
	}
	if duration > 0 && t.End > duration {
		return fmt.Errorf("%w: end %.2fs exceeds duration %.2fs", ErrInvalidTrim, t.End, duration)
	}
	return nil
}

// Length returns the trimmed length
func (t Trim) Length() time.Duration {
	return Seconds(t.End - t.Start)
}

// StartOffset returns the start as a duration
func (t Trim) StartOffset() time.Duration {
	return Seconds(t.Start)
}

// EndOffset returns the end as a duration
func (t Trim) EndOffset() time.Duration {
	return Seconds(t.End)
}

// Track is a configured sound clip
type Track struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Path   string `json:"path"`
	Hotkey string `json:"hotkey"`
	Volume int    `json:"volume"` // 0 to 100
	Trim   *Trim  `json:"trim"`
}

// NewTrack creates a track for an audio file with default volume, no hotkey
// and no trim. The name is the file name without its extension.
func NewTrack(id, path string) Track {
	return Track{
		ID:     id,
		Name:   NameFromPath(path),
		Path:   path,
		Volume: DefaultVolume,
	}
}

// Gain returns the track volume as a 0.0 to 1.0 level
func (t Track) Gain() float64 {
	return float64(ClampVolume(t.Volume)) / MaxVolume
}

// IsTrimmed reports whether only a sub-range of the resource is played
func (t Track) IsTrimmed() bool {
	return t.Trim != nil
}

// HasHotkey reports whether the track claims an accelerator
func (t Track) HasHotkey() bool {
	return t.Hotkey != ""
}

// Clone returns a copy that does not share the trim pointer
func (t Track) Clone() Track {
	if t.Trim != nil {
		trim := *t.Trim
		t.Trim = &trim
	}
	return t
}

// NameFromPath returns the base file name without extension (support both / and \ separators)
func NameFromPath(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return ""
	}
	name := parts[len(parts)-1]
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ClampVolume clamps a volume to [MinVolume, MaxVolume]
func ClampVolume(v int) int {
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}

// Seconds converts fractional seconds to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// FormatTime returns m:ss.d, or "0:00.0" for negative input
func FormatTime(secs float64) string {
	if secs < 0 {
		return "0:00.0"
	}
	minutes := int(secs) / 60
	seconds := int(secs) % 60
	tenths := int((secs - float64(int(secs))) * 10)
	return fmt.Sprintf("%d:%02d.%d", minutes, seconds, tenths)
}
