//go:build unix

package main

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifySignals subscribes ch to shutdown and reload signals
func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
}

// isReload reports whether sig asks for a roster reload instead of exit
func isReload(sig os.Signal) bool {
	return sig == unix.SIGHUP
}
