package hotkey

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single key", "F1", "F1"},
		{"lowercase letter", "ctrl+a", "Ctrl+A"},
		{"reordered modifiers", "Shift+Ctrl+K", "Ctrl+Shift+K"},
		{"aliases", "Control+Option+Meta+1", "Ctrl+Alt+Super+1"},
		{"duplicate modifier", "Ctrl+Ctrl+Space", "Ctrl+Space"},
		{"named keys", "alt+return", "Alt+Enter"},
		{"function key", "Cmd+f12", "Cmd+F12"},
		{"whitespace", " Ctrl + Esc ", "Ctrl+Escape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got := a.String(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{"", "Ctrl", "Ctrl+Shift", "A+B", "F21", "F0", "Ctrl+/", "Hyper+A"}
	for _, in := range inputs {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidAccelerator) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidAccelerator", in, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("shift+f1"); got != "Shift+F1" {
		t.Errorf("Normalize = %q, want Shift+F1", got)
	}
	if got := Normalize("Ctrl+"); got != "" {
		t.Errorf("Normalize of invalid accelerator = %q, want empty", got)
	}
}

func TestCommandOrControl(t *testing.T) {
	saved := runtimeOS
	defer func() { runtimeOS = saved }()

	runtimeOS = "darwin"
	if got := Normalize("CommandOrControl+S"); got != "Cmd+S" {
		t.Errorf("darwin: got %q, want Cmd+S", got)
	}

	runtimeOS = "linux"
	if got := Normalize("CmdOrCtrl+S"); got != "Ctrl+S" {
		t.Errorf("linux: got %q, want Ctrl+S", got)
	}
}

func TestNative(t *testing.T) {
	a, err := Parse("Ctrl+Shift+F5")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	mods, _, err := native(a)
	if err != nil {
		t.Fatalf("native returned error: %v", err)
	}
	if len(mods) != 2 {
		t.Errorf("expected 2 modifiers, got %d", len(mods))
	}
}
