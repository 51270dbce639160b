package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Intent
	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentCancel,
			tcell.KeyEnter:  IntentDraw,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyCtrlR:  IntentReloadRoster,
			tcell.KeyLeft:   IntentNudgeLeft,
			tcell.KeyRight:  IntentNudgeRight,
			tcell.KeyUp:     IntentNudgeUp,
			tcell.KeyDown:   IntentNudgeDown,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			' ': IntentDraw,
			'm': IntentToggleMute,
			'r': IntentResetView,
			'+': IntentZoomIn,
			'=': IntentZoomIn,
			'-': IntentZoomOut,
			'h': IntentNudgeLeft,
			'l': IntentNudgeRight,
			'k': IntentNudgeUp,
			'j': IntentNudgeDown,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event
// Some terminals report Ctrl+letter as a rune with ModCtrl, those resolve as the Ctrl key
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r >= 'a' && r <= 'z' {
			return kt.SpecialKeys[tcell.KeyCtrlA+tcell.Key(r-'a')]
		}
	}
	return kt.Runes[r]
}
