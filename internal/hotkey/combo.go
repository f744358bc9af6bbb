package hotkey

import "strings"

// ComboState is the outcome of a key press while capturing
type ComboState int

const (
	// ComboPending means capture continues
	ComboPending ComboState = iota
	// ComboConfirmed means the combo was accepted with Enter
	ComboConfirmed
	// ComboCancelled means capture was abandoned with Escape
	ComboCancelled
)

// Combo builds an accelerator from captured key presses. Keys stack in press
// order without duplicates.
type Combo struct {
	keys []string
	goos string
}

// NewCombo starts a capture from an existing accelerator, which may be empty
func NewCombo(initial string) *Combo {
	c := &Combo{goos: runtimeOS}
	for _, k := range strings.Split(initial, Separator) {
		if k != "" {
			c.keys = append(c.keys, k)
		}
	}
	return c
}

// Press feeds one key. Both DOM style names ("Control", "Meta", " ") and
// Fyne key names ("LeftControl", "Return", "BackSpace") are understood.
func (c *Combo) Press(key string) ComboState {
	switch key {
	case "Escape":
		return ComboCancelled
	case "Enter", "Return", "KP_Enter":
		return ComboConfirmed
	case "Backspace", "BackSpace":
		if len(c.keys) > 0 {
			c.keys = c.keys[:len(c.keys)-1]
		}
		return ComboPending
	}

	label := c.Label(key)
	if label == "" {
		return ComboPending
	}
	for _, k := range c.keys {
		if k == label {
			return ComboPending
		}
	}
	c.keys = append(c.keys, label)
	return ComboPending
}

// Label returns the display label for a key press
func (c *Combo) Label(key string) string {
	switch key {
	case "Control", "LeftControl", "RightControl":
		return ModCtrl
	case "Meta", "LeftSuper", "RightSuper":
		if c.goos == "darwin" {
			return ModCmd
		}
		return ModSuper
	case "LeftShift", "RightShift":
		return ModShift
	case "LeftAlt", "RightAlt":
		return ModAlt
	case " ":
		return "Space"
	}
	if len(key) == 1 {
		return strings.ToUpper(key)
	}
	return key
}

// Keys returns the captured labels
func (c *Combo) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Clear drops every captured key
func (c *Combo) Clear() {
	c.keys = nil
}

// String joins the captured keys with the accelerator separator
func (c *Combo) String() string {
	return strings.Join(c.keys, Separator)
}
