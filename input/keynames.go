package input

import "github.com/gdamore/tcell/v2"

// keyToName maps tcell keys to config names
var keyToName = map[tcell.Key]string{
	tcell.KeyEscape:    "escape",
	tcell.KeyEnter:     "enter",
	tcell.KeyTab:       "tab",
	tcell.KeyBacktab:   "backtab",
	tcell.KeyBackspace: "backspace",
	tcell.KeyDelete:    "delete",

	tcell.KeyUp:    "up",
	tcell.KeyDown:  "down",
	tcell.KeyLeft:  "left",
	tcell.KeyRight: "right",
	tcell.KeyHome:  "home",
	tcell.KeyEnd:   "end",
	tcell.KeyPgUp:  "page_up",
	tcell.KeyPgDn:  "page_down",
	tcell.KeyF1:    "f1",
	tcell.KeyF2:    "f2",
	tcell.KeyF3:    "f3",
	tcell.KeyF4:    "f4",
	tcell.KeyF5:    "f5",
	tcell.KeyF12:   "f12",
	tcell.KeyCtrlC: "ctrl_c",
	tcell.KeyCtrlD: "ctrl_d",
	tcell.KeyCtrlL: "ctrl_l",
	tcell.KeyCtrlQ: "ctrl_q",
	tcell.KeyCtrlR: "ctrl_r",
	tcell.KeyCtrlS: "ctrl_s",
}

var nameToKey map[string]tcell.Key

func init() {
	nameToKey = make(map[string]tcell.Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	nameToKey["esc"] = tcell.KeyEscape
	nameToKey["shift_tab"] = tcell.KeyBacktab
}

// KeyName returns the config name for a special key
func KeyName(k tcell.Key) string {
	return keyToName[k]
}

// KeyByName resolves a config name to a special key
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}
