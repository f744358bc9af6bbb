package hotkey

import xhotkey "golang.design/x/hotkey"

var nativeModifiers = map[string]xhotkey.Modifier{
	ModCtrl:  xhotkey.ModCtrl,
	ModAlt:   xhotkey.ModOption,
	ModShift: xhotkey.ModShift,
	ModCmd:   xhotkey.ModCmd,
	ModSuper: xhotkey.ModCmd,
}
