package input

// actionRegistry maps config action names to intents
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"quit":          IntentQuit,
	"draw":          IntentDraw,
	"cancel":        IntentCancel,
	"toggle_mute":   IntentToggleMute,
	"reset_view":    IntentResetView,
	"zoom_in":       IntentZoomIn,
	"zoom_out":      IntentZoomOut,
	"nudge_left":    IntentNudgeLeft,
	"nudge_right":   IntentNudgeRight,
	"nudge_up":      IntentNudgeUp,
	"nudge_down":    IntentNudgeDown,
	"reload_roster": IntentReloadRoster,
}

// ActionIntent resolves an action name
func ActionIntent(name string) (Intent, bool) {
	i, ok := actionRegistry[name]
	return i, ok
}

// ActionName returns the config name of an intent, empty for IntentNone
func ActionName(i Intent) string {
	if i == IntentNone {
		return ""
	}
	for name, v := range actionRegistry {
		if v == i {
			return name
		}
	}
	return ""
}
