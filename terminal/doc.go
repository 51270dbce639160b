// Package terminal holds the small amount of tty handling tcell leaves to the host:
// color capability detection, interactive checks and emergency mode recovery
package terminal
