package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores an output surface before the crash report is printed
// tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher
	crashOut    io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the surface to restore on crash, nil clears it
func SetCrashScreen(s Finisher) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = s
}

// HandleCrash restores the screen, prints the panic value and stack, and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mLUCKY-GLOBE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
