// Package input maps terminal keys to globe and draw intents
package input

// Intent is a resolved user command
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentDraw
	IntentCancel
	IntentToggleMute
	IntentResetView
	IntentZoomIn
	IntentZoomOut
	IntentNudgeLeft
	IntentNudgeRight
	IntentNudgeUp
	IntentNudgeDown
	IntentReloadRoster
)

// Nudge is the pointer delta a keyboard rotate simulates, in world pixels
const Nudge = 24.0

// ZoomStep is the wheel delta a keyboard zoom simulates
const ZoomStep = 100.0

// NudgeDelta returns the simulated drag for a nudge intent
func NudgeDelta(i Intent) (dx, dy float64, ok bool) {
	switch i {
	case IntentNudgeLeft:
		return -Nudge, 0, true
	case IntentNudgeRight:
		return Nudge, 0, true
	case IntentNudgeUp:
		return 0, -Nudge, true
	case IntentNudgeDown:
		return 0, Nudge, true
	}
	return 0, 0, false
}
