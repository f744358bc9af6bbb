package hotkey

import xhotkey "golang.design/x/hotkey"

// X11 maps Alt to Mod1 and Super to Mod4
var nativeModifiers = map[string]xhotkey.Modifier{
	ModCtrl:  xhotkey.ModCtrl,
	ModAlt:   xhotkey.Mod1,
	ModShift: xhotkey.ModShift,
	ModCmd:   xhotkey.Mod4,
	ModSuper: xhotkey.Mod4,
}
