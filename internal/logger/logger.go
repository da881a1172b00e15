// Package logger provides verbose logging for the sercha-notes CLI.
// When verbose mode is enabled via the --verbose flag, pipeline messages
// (extraction, scoring, synthesis, store access) are printed to stderr.
// Warnings can be surfaced on their own with SetWarnAlways, which the
// long-running watch and MCP commands use.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu         sync.RWMutex
	verbose    bool
	warnAlways bool
	output     io.Writer = os.Stderr
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

// SetWarnAlways prints warnings even when verbose mode is off.
func SetWarnAlways(v bool) {
	mu.Lock()
	defer mu.Unlock()
	warnAlways = v
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(level, scope, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose && !(level == "WARN" && warnAlways) {
		return
	}
	if scope != "" {
		fmt.Fprintf(output, "[%s] %s: "+format+"\n", append([]any{level, scope}, args...)...)
		return
	}
	fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("DEBUG", "", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("INFO", "", format, args...)
}

// Warn prints a warning if verbose mode (or warn-always) is enabled.
func Warn(format string, args ...any) {
	write("WARN", "", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Scoped prefixes every message with a component name.
type Scoped struct {
	scope string
}

// For returns a logger scoped to the named component.
func For(scope string) Scoped {
	return Scoped{scope: scope}
}

// Debug prints a scoped debug message.
func (s Scoped) Debug(format string, args ...any) {
	write("DEBUG", s.scope, format, args...)
}

// Info prints a scoped informational message.
func (s Scoped) Info(format string, args ...any) {
	write("INFO", s.scope, format, args...)
}

// Warn prints a scoped warning.
func (s Scoped) Warn(format string, args ...any) {
	write("WARN", s.scope, format, args...)
}
