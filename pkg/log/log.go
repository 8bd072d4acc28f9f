// Package log provides the minimal structured-ish logging interface used
// across gbcore. Components take a Logger rather than calling fmt.Print*
// directly, so tests can swap in Null() and host shells can swap in
// whatever sink they like.
package log

import (
	"fmt"
	"os"
	"time"
)

// Logger is the logging surface every component depends on.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	// With returns a Logger that prefixes every line with component.
	With(component string) Logger
}

type stdLogger struct {
	component string
	out       *os.File
}

// New returns a Logger that writes timestamped lines to stderr.
func New() Logger {
	return &stdLogger{out: os.Stderr}
}

func (l *stdLogger) line(level, format string, args ...interface{}) {
	prefix := "[" + level + "]"
	if l.component != "" {
		prefix += "[" + l.component + "]"
	}
	fmt.Fprintf(l.out, "%s %s\t%s\n", time.Now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}

func (l *stdLogger) Infof(format string, args ...interface{})  { l.line("INFO", format, args...) }
func (l *stdLogger) Warnf(format string, args ...interface{})  { l.line("WARN", format, args...) }
func (l *stdLogger) Errorf(format string, args ...interface{}) { l.line("ERROR", format, args...) }
func (l *stdLogger) Debugf(format string, args ...interface{}) { l.line("DEBUG", format, args...) }

func (l *stdLogger) With(component string) Logger {
	next := component
	if l.component != "" {
		next = l.component + "." + component
	}
	return &stdLogger{component: next, out: l.out}
}
