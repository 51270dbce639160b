//go:build !unix

package main

import (
	"os"
	"os/signal"
)

func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}

func isReload(os.Signal) bool { return false }
