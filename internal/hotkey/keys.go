package hotkey

import (
	"fmt"

	xhotkey "golang.design/x/hotkey"
)

var nativeKeys = map[string]xhotkey.Key{
	"A": xhotkey.KeyA, "B": xhotkey.KeyB, "C": xhotkey.KeyC, "D": xhotkey.KeyD,
	"E": xhotkey.KeyE, "F": xhotkey.KeyF, "G": xhotkey.KeyG, "H": xhotkey.KeyH,
	"I": xhotkey.KeyI, "J": xhotkey.KeyJ, "K": xhotkey.KeyK, "L": xhotkey.KeyL,
	"M": xhotkey.KeyM, "N": xhotkey.KeyN, "O": xhotkey.KeyO, "P": xhotkey.KeyP,
	"Q": xhotkey.KeyQ, "R": xhotkey.KeyR, "S": xhotkey.KeyS, "T": xhotkey.KeyT,
	"U": xhotkey.KeyU, "V": xhotkey.KeyV, "W": xhotkey.KeyW, "X": xhotkey.KeyX,
	"Y": xhotkey.KeyY, "Z": xhotkey.KeyZ,

	"0": xhotkey.Key0, "1": xhotkey.Key1, "2": xhotkey.Key2, "3": xhotkey.Key3,
	"4": xhotkey.Key4, "5": xhotkey.Key5, "6": xhotkey.Key6, "7": xhotkey.Key7,
	"8": xhotkey.Key8, "9": xhotkey.Key9,

	"F1": xhotkey.KeyF1, "F2": xhotkey.KeyF2, "F3": xhotkey.KeyF3, "F4": xhotkey.KeyF4,
	"F5": xhotkey.KeyF5, "F6": xhotkey.KeyF6, "F7": xhotkey.KeyF7, "F8": xhotkey.KeyF8,
	"F9": xhotkey.KeyF9, "F10": xhotkey.KeyF10, "F11": xhotkey.KeyF11, "F12": xhotkey.KeyF12,
	"F13": xhotkey.KeyF13, "F14": xhotkey.KeyF14, "F15": xhotkey.KeyF15, "F16": xhotkey.KeyF16,
	"F17": xhotkey.KeyF17, "F18": xhotkey.KeyF18, "F19": xhotkey.KeyF19, "F20": xhotkey.KeyF20,

	"Space":  xhotkey.KeySpace,
	"Enter":  xhotkey.KeyReturn,
	"Escape": xhotkey.KeyEscape,
	"Tab":    xhotkey.KeyTab,
	"Delete": xhotkey.KeyDelete,
	"Up":     xhotkey.KeyUp,
	"Down":   xhotkey.KeyDown,
	"Left":   xhotkey.KeyLeft,
	"Right":  xhotkey.KeyRight,
}

// native maps a parsed accelerator to the platform hotkey codes
func native(a Accelerator) ([]xhotkey.Modifier, xhotkey.Key, error) {
	key, ok := nativeKeys[a.Key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: no native key for %q", ErrInvalidAccelerator, a.Key)
	}
	mods := make([]xhotkey.Modifier, 0, len(a.Modifiers))
	for _, m := range a.Modifiers {
		mod, ok := nativeModifiers[m]
		if !ok {
			return nil, 0, fmt.Errorf("%w: no native modifier for %q", ErrInvalidAccelerator, m)
		}
		mods = append(mods, mod)
	}
	return mods, key, nil
}
