// Package logger provides verbose logging for the bikeshare CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show how data is loaded, filtered and summarised.
// Section headers carry the current session id so that the output of
// separate explorer sessions can be told apart.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	session string
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

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// StartSession assigns a new session id and returns it.
func StartSession() string {
	id := uuid.NewString()
	mu.Lock()
	defer mu.Unlock()
	session = id
	return id
}

// Session returns the current session id, or "" outside a session.
func Session() string {
	mu.RLock()
	defer mu.RUnlock()
	return session
}

// EndSession clears the session id.
func EndSession() {
	mu.Lock()
	defer mu.Unlock()
	session = ""
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	if session != "" {
		fmt.Fprintf(output, "\n=== %s [%s] ===\n", name, shortID(session))
		return
	}
	fmt.Fprintf(output, "\n=== %s ===\n", name)
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}
