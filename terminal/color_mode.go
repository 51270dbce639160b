package terminal

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// tcellTrueColorEnv disables tcell's 24-bit output when set to "disable"
const tcellTrueColorEnv = "TCELL_TRUECOLOR"

// ParseColorMode resolves a -color flag value, "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(os.Getenv), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	}
	return ColorMode256, fmt.Errorf("unknown color mode %q", s)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode(getenv func(string) string) ColorMode {
	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, key := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if getenv(key) != "" {
			return ColorModeTrueColor
		}
	}

	t := getenv("TERM")
	if strings.Contains(t, "truecolor") ||
		strings.Contains(t, "24bit") ||
		strings.Contains(t, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Apply pins tcell to the given mode, call before the screen is created
func (m ColorMode) Apply() {
	if m == ColorMode256 {
		os.Setenv(tcellTrueColorEnv, "disable")
	}
}

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
