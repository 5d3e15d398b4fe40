// Package log provides a simple leveled logger for the conversion pipeline
// and CLI, wrapping the standard log package.
package log

import (
	"io"
	stdlog "log"
	"os"
)

type Level uint8

const (
	Silent Level = iota
	Error
	Warn
	Info
	Debug
)

// ParseLevel maps a level name (silent, error, warn, info, debug) to a Level.
// Unknown names fall back to Info.
func ParseLevel(name string) Level {
	switch name {
	case "silent":
		return Silent
	case "error":
		return Error
	case "warn":
		return Warn
	case "debug":
		return Debug
	default:
		return Info
	}
}

// Logger wraps the standard logger with log level filtering.
type Logger struct {
	level  Level
	logger *stdlog.Logger
}

// New creates a logger writing to stderr at the given level.
func New(level Level) *Logger {
	return NewWithOutput(level, os.Stderr)
}

// NewWithOutput creates a logger writing to w at the given level.
func NewWithOutput(level Level, w io.Writer) *Logger {
	return &Logger{
		level:  level,
		logger: stdlog.New(w, "jsonl: ", stdlog.LstdFlags),
	}
}

// Discard is a logger that drops everything; it is the default for library
// code so logging stays opt-in.
var Discard = NewWithOutput(Silent, io.Discard)

// Errorf logs a message at ERROR level using printf style formatting.
func (l *Logger) Errorf(format string, args ...any) {
	if l.level < Error {
		return
	}
	l.logger.Printf("[ERROR] "+format, args...)
}

// Warnf logs a message at WARN level using printf style formatting.
func (l *Logger) Warnf(format string, args ...any) {
	if l.level < Warn {
		return
	}
	l.logger.Printf("[WARN] "+format, args...)
}

// Infof logs a message at INFO level using printf style formatting.
func (l *Logger) Infof(format string, args ...any) {
	if l.level < Info {
		return
	}
	l.logger.Printf("[INFO] "+format, args...)
}

// Debugf logs a message at DEBUG level using printf style formatting.
func (l *Logger) Debugf(format string, args ...any) {
	if l.level < Debug {
		return
	}
	l.logger.Printf("[DEBUG] "+format, args...)
}
