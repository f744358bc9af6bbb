package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ytget/soundboard/internal/model"
)

func TestTrackListItem(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	track := model.NewTrack("t1", "/sounds/airhorn.mp3")
	f.TrackListItem(track)
	out := buf.String()
	if !strings.Contains(out, "airhorn") || !strings.Contains(out, "100%") || !strings.Contains(out, "/sounds/airhorn.mp3") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Contains(out, "✂") {
		t.Errorf("untrimmed track shows a trim: %q", out)
	}

	buf.Reset()
	track.Hotkey = "Ctrl+1"
	track.Trim = &model.Trim{Start: 1.5, End: 62}
	f.TrackListItem(track)
	out = buf.String()
	if !strings.Contains(out, "Ctrl+1") || !strings.Contains(out, "0:01.5-1:02.0") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestReactionListItem(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.ReactionListItem(model.Reaction{Trigger: "1 Coin", Action: "Clap", Active: true, ImagePath: "/img/clap.png"})
	out := buf.String()
	for _, want := range []string{"✅", "1 Coin", "Clap", "/img/clap.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}

func TestSettings(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf).Settings(model.DefaultSettings())
	out := buf.String()
	if !strings.Contains(out, "EXCLUSIVE") || !strings.Contains(out, "0.60") {
		t.Errorf("unexpected output %q", out)
	}
}
