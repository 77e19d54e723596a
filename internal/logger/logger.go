// Package logger provides leveled diagnostic output for extracttext.
// Debug, Info and Section lines are printed only in verbose mode
// (the --verbose flag); warnings are always printed. Everything goes
// to stderr so extracted text on stdout stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer and returns the previous one.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

func write(gated bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(true, "[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(true, "[INFO] ", format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	write(false, "[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	write(true, "\n=== ", "%s ===", name)
}

// Timed logs the start of a step and returns a func that logs its duration.
//
//	defer logger.Timed("pdf parse")()
func Timed(step string) func() {
	if !IsVerbose() {
		return func() {}
	}
	start := time.Now()
	Debug("%s: started", step)
	return func() {
		Debug("%s: done in %s", step, time.Since(start).Round(time.Microsecond))
	}
}
