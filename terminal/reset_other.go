//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

// ResetMode is a no-op where termios is unavailable
func ResetMode() {}
