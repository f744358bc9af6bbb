// Package output formats command line output
package output

import (
	"fmt"
	"io"

	"github.com/ytget/soundboard/internal/model"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) TrackListHeader(count int) {
	fmt.Fprintf(f.w, "🎵 Tracks (%d):\n\n", count)
}

// TrackListItem prints one track with its hotkey, volume and trim
func (f *Formatter) TrackListItem(t model.Track) {
	hotkey := t.Hotkey
	if hotkey == "" {
		hotkey = "-"
	}
	trim := ""
	if t.Trim != nil {
		trim = fmt.Sprintf("  ✂ %s-%s", model.FormatTime(t.Trim.Start), model.FormatTime(t.Trim.End))
	}
	fmt.Fprintf(f.w, "  %-24s %-16s %3d%%%s\n", t.Name, hotkey, t.Volume, trim)
	fmt.Fprintf(f.w, "    %s\n", t.Path)
}

func (f *Formatter) ReactionListHeader(count int) {
	fmt.Fprintf(f.w, "🎉 Reactions (%d):\n\n", count)
}

func (f *Formatter) ReactionListItem(r model.Reaction) {
	status := "  "
	if r.Active {
		status = "✅"
	}
	image := ""
	if r.HasImage() {
		image = "  🖼 " + r.ImagePath
	}
	fmt.Fprintf(f.w, "  %s %s → %s%s\n", status, r.Trigger, r.Action, image)
}

func (f *Formatter) Settings(s model.Settings) {
	fmt.Fprintf(f.w, "⚙️  Settings:\n\n")
	fmt.Fprintf(f.w, "  Master volume:  %d%%\n", s.MasterVolume)
	fmt.Fprintf(f.w, "  Policy:         %s\n", s.Policy)
	fmt.Fprintf(f.w, "  Output device:  %s\n", s.OutputDeviceID)
	fmt.Fprintf(f.w, "  Opacity:        %.2f\n", s.Opacity)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}
