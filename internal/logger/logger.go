// Package logger provides leveled logging for the CLI. Debug output is
// silenced unless verbose mode is enabled with the --verbose flag.
package logger

import (
	"log"
	"os"
	"sync/atomic"
)

var verbose atomic.Bool

// stderr keeps diagnostics away from record output on stdout.
var std = log.New(os.Stderr, "", log.LstdFlags)

// SetVerbose toggles debug output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Debugf logs a debug message when verbose mode is on.
func Debugf(format string, args ...any) {
	if verbose.Load() {
		std.Printf("debug: "+format, args...)
	}
}

// Warnf logs a warning.
func Warnf(format string, args ...any) {
	std.Printf("warning: "+format, args...)
}
