// Package log defines the logger interface the core packages accept as an
// optional collaborator (spec §7: the core never decides to log on its
// own), plus a default console implementation built on gosl/io colored
// printing, the way main.go and tools/*.go report progress and errors.
package log

import "github.com/cpmech/gosl/io"

// Logger receives informational and warning messages emitted by
// collaborators around the core. A nil *Console (or any nil Logger) means
// "don't log".
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Console logs to stdout using gosl/io's colored Pf helpers.
type Console struct {
	Verbose bool
}

// Infof prints an informational message in cyan, matching the
// io.Pfcyan/io.Pforan convention used across tools/*.go.
func (c *Console) Infof(format string, args ...interface{}) {
	if c == nil || !c.Verbose {
		return
	}
	io.Pfcyan(format+"\n", args...)
}

// Warnf prints a warning in yellow, matching io.Pfyel usage in tools/*.go.
func (c *Console) Warnf(format string, args ...interface{}) {
	if c == nil {
		return
	}
	io.Pfyel("WARNING: "+format+"\n", args...)
}

// Infof/Warnf are nil-safe helpers so core packages can call a possibly-nil
// Logger without a guard at every call site.
func Infof(l Logger, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.Infof(format, args...)
}

func Warnf(l Logger, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.Warnf(format, args...)
}
