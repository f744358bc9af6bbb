package hotkey

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Canonical modifier names, in normalized order
const (
	ModCtrl  = "Ctrl"
	ModAlt   = "Alt"
	ModShift = "Shift"
	ModCmd   = "Cmd"
	ModSuper = "Super"
)

// Separator joins the parts of an accelerator
const Separator = "+"

// ErrInvalidAccelerator is returned for accelerators without exactly one
// supported key
var ErrInvalidAccelerator = errors.New("invalid accelerator")

var modifierOrder = []string{ModCtrl, ModAlt, ModShift, ModCmd, ModSuper}

var modifierAliases = map[string]string{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"cmd":     ModCmd,
	"command": ModCmd,
	"super":   ModSuper,
	"meta":    ModSuper,
	"win":     ModSuper,
}

var keyAliases = map[string]string{
	"space":  "Space",
	"enter":  "Enter",
	"return": "Enter",
	"esc":    "Escape",
	"escape": "Escape",
	"tab":    "Tab",
	"delete": "Delete",
	"del":    "Delete",
	"up":     "Up",
	"down":   "Down",
	"left":   "Left",
	"right":  "Right",
}

// runtimeOS is replaced in tests
var runtimeOS = runtime.GOOS

// Accelerator is a parsed key combination
type Accelerator struct {
	Modifiers []string // canonical names in normalized order
	Key       string
}

// String returns the normalized accelerator
func (a Accelerator) String() string {
	parts := append(append([]string(nil), a.Modifiers...), a.Key)
	return strings.Join(parts, Separator)
}

// Parse reads an accelerator. Modifier aliases and case are accepted,
// duplicates are folded, and exactly one non-modifier key is required.
func Parse(accel string) (Accelerator, error) {
	var key string
	mods := make(map[string]bool)

	for _, raw := range strings.Split(accel, Separator) {
		part := strings.TrimSpace(raw)
		if part == "" {
			continue
		}
		if mod, ok := modifierName(part); ok {
			mods[mod] = true
			continue
		}
		name, ok := keyName(part)
		if !ok {
			return Accelerator{}, fmt.Errorf("%w: unsupported key %q in %q", ErrInvalidAccelerator, part, accel)
		}
		if key != "" && key != name {
			return Accelerator{}, fmt.Errorf("%w: more than one key in %q", ErrInvalidAccelerator, accel)
		}
		key = name
	}
	if key == "" {
		return Accelerator{}, fmt.Errorf("%w: no key in %q", ErrInvalidAccelerator, accel)
	}

	a := Accelerator{Key: key}
	for _, m := range modifierOrder {
		if mods[m] {
			a.Modifiers = append(a.Modifiers, m)
		}
	}
	return a, nil
}

// Normalize returns the canonical form of accel, or an empty string when it
// cannot be parsed
func Normalize(accel string) string {
	a, err := Parse(accel)
	if err != nil {
		return ""
	}
	return a.String()
}

func modifierName(part string) (string, bool) {
	lower := strings.ToLower(part)
	switch lower {
	case "commandorcontrol", "cmdorctrl":
		if runtimeOS == "darwin" {
			return ModCmd, true
		}
		return ModCtrl, true
	}
	mod, ok := modifierAliases[lower]
	return mod, ok
}

func keyName(part string) (string, bool) {
	if len(part) == 1 {
		c := part[0]
		switch {
		case c >= 'a' && c <= 'z':
			return strings.ToUpper(part), true
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return part, true
		}
		return "", false
	}
	lower := strings.ToLower(part)
	if name, ok := keyAliases[lower]; ok {
		return name, true
	}
	if n, ok := functionKey(lower); ok {
		return fmt.Sprintf("F%d", n), true
	}
	return "", false
}

func functionKey(lower string) (int, bool) {
	if len(lower) < 2 || lower[0] != 'f' {
		return 0, false
	}
	n := 0
	for _, c := range lower[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 || n > 20 {
		return 0, false
	}
	return n, true
}
