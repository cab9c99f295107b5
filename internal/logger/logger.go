// Package logger provides the indentation-scoped progress log for srclink.
// Output is a human-readable narrative of the link run (project start/end,
// warnings, summary), not a machine-readable contract.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Log writes indentation-scoped log lines. A Log is passed explicitly down
// the call chain; scopes opened with Indent are closed by the returned
// function on every path, including failure.
type Log struct {
	mu      sync.Mutex
	out     io.Writer
	depth   int
	verbose bool
}

// New creates a Log writing to w.
func New(w io.Writer) *Log {
	return &Log{out: w}
}

// SetVerbose enables or disables debug output.
func (l *Log) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// SetOutput sets the output writer. Useful for testing and for teeing to a
// log file.
func (l *Log) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Indent opens a scope: subsequent lines are indented one level deeper
// until the returned function is called.
//
//	done := log.Indent()
//	defer done()
func (l *Log) Indent() func() {
	l.mu.Lock()
	l.depth++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			if l.depth > 0 {
				l.depth--
			}
			l.mu.Unlock()
		})
	}
}

// Info prints an informational message at the current indent level.
func (l *Log) Info(format string, args ...any) {
	l.write("", format, args...)
}

// Warn prints a warning message at the current indent level.
func (l *Log) Warn(format string, args ...any) {
	l.write("WARNING: ", format, args...)
}

// Error prints an error message at the current indent level.
func (l *Log) Error(format string, args ...any) {
	l.write("ERROR: ", format, args...)
}

// Debug prints a message only when verbose mode is enabled.
func (l *Log) Debug(format string, args ...any) {
	l.mu.Lock()
	verbose := l.verbose
	l.mu.Unlock()
	if verbose {
		l.write("", format, args...)
	}
}

func (l *Log) write(prefix, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out == nil {
		return
	}
	indent := strings.Repeat("  ", l.depth)
	fmt.Fprintf(l.out, indent+prefix+format+"\n", args...)
}

// Discard returns a Log that drops everything. Handy in tests that do not
// assert on output.
func Discard() *Log {
	return New(io.Discard)
}
