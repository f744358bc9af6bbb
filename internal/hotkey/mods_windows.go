package hotkey

import xhotkey "golang.design/x/hotkey"

var nativeModifiers = map[string]xhotkey.Modifier{
	ModCtrl:  xhotkey.ModCtrl,
	ModAlt:   xhotkey.ModAlt,
	ModShift: xhotkey.ModShift,
	ModCmd:   xhotkey.ModWin,
	ModSuper: xhotkey.ModWin,
}
