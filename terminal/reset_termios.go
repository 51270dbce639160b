//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// ResetMode restores cooked mode on the controlling tty
// Best-effort for crash recovery when the screen could not be finalized; errors ignored
func ResetMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, ioctlSetTermios, termios)

	// Leave alt screen, show cursor, reset attributes
	tty.WriteString("\x1b[?1049l\x1b[?25h\x1b[0m")
}
