package audio

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLocator(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain", "/sounds/clap.mp3", "media:///sounds/clap.mp3"},
		{"spaces", "/my sounds/air horn.wav", "media:///my%20sounds/air%20horn.wav"},
		{"hash", "/s/#1.ogg", "media:///s/%231.ogg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Locator(filepath.FromSlash(tt.path)); got != tt.want {
				t.Errorf("Locator(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveLocator(t *testing.T) {
	path := filepath.FromSlash("/my sounds/air horn #2.wav")
	got, err := ResolveLocator(Locator(path))
	if err != nil {
		t.Fatalf("ResolveLocator returned error: %v", err)
	}
	if got != path {
		t.Errorf("round trip = %q, want %q", got, path)
	}

	bad := []string{"", "file:///a.mp3", "media://", "media:///%zz"}
	for _, loc := range bad {
		if _, err := ResolveLocator(loc); !errors.Is(err, ErrBadLocator) {
			t.Errorf("ResolveLocator(%q) error = %v, want ErrBadLocator", loc, err)
		}
	}
}

func TestSetOutputDevice(t *testing.T) {
	b := &EbitenBackend{}

	if err := b.SetOutputDevice(DefaultOutputDevice); err != nil {
		t.Errorf("default device should be accepted: %v", err)
	}
	if err := b.SetOutputDevice(""); err != nil {
		t.Errorf("empty device should be accepted: %v", err)
	}
	if err := b.SetOutputDevice("usb-1"); !errors.Is(err, ErrUnsupportedDevice) {
		t.Errorf("expected ErrUnsupportedDevice, got %v", err)
	}
}
