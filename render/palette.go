package render

import "github.com/lixenwraith/lucky-globe/globe"

// Globe palette, gold on deep red-black
var (
	RgbBackground  = RGB{14, 6, 10}
	RgbFrontLabel  = RGB{255, 255, 255}
	RgbBackLabel   = RGB{255, 215, 0}
	RgbConnector   = RGB{255, 215, 0}
	RgbIdleDot     = RGB{255, 255, 255}
	RgbSpinDot     = RGB{253, 224, 71}
	RgbGroupLabel  = RGB{254, 249, 195}
	RgbPlaceholder = RGB{250, 204, 21}
	RgbStatus      = RGB{120, 110, 100}
)

// PlaceholderText is shown while the entity list is empty
const PlaceholderText = "WAITING FOR DATA..."

// LabelColor returns the label palette for a hemisphere
func LabelColor(v globe.ColorVariant) RGB {
	if v == globe.ColorFront {
		return RgbFrontLabel
	}
	return RgbBackLabel
}

// DotColor returns the marker color for a mode
func DotColor(m globe.Mode) RGB {
	if m == globe.ModeSpinning {
		return RgbSpinDot
	}
	return RgbIdleDot
}

// FitScale maps world pixels onto a surface so the glow disc fits at zoom 1
func FitScale(f *globe.Frame) float64 {
	if f.BaseRadius <= 0 {
		return 1
	}
	short := min(float64(f.Width), float64(f.Height))
	return short / (2 * f.BaseRadius * 1.2)
}
