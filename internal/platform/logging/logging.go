// Package logging provides a leveled logger handle that components receive at
// construction. The level is fixed once at startup; there is no global mutable
// logger state.
package logging

import (
	"io"
	"log"
)

// Level controls which messages a Logger emits.
type Level int

const (
	// LevelError emits only errors.
	LevelError Level = iota
	// LevelInfo emits errors and informational messages.
	LevelInfo
	// LevelDebug emits everything.
	LevelDebug
)

// Logger writes prefixed, leveled log lines to one destination.
type Logger struct {
	out   *log.Logger
	level Level
}

// New creates a Logger writing to w with the given prefix and level.
func New(w io.Writer, prefix string, level Level) *Logger {
	return &Logger{
		out:   log.New(w, prefix, log.LstdFlags),
		level: level,
	}
}

// Level returns the level the logger was constructed with.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelError
	}
	return l.level
}

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.out.Printf("ERROR "+format, args...)
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...any) {
	if l == nil || l.level < LevelInfo {
		return
	}
	l.out.Printf("INFO "+format, args...)
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || l.level < LevelDebug {
		return
	}
	l.out.Printf("DEBUG "+format, args...)
}
