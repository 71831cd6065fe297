// Package logging provides a small leveled logger. Diagnostics go to
// stderr so headless output and the TUI keep stdout to themselves.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped leveled lines to a single destination.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

// New creates a logger writing to stderr.
func New(level Level) *Logger {
	return &Logger{level: level, out: os.Stderr}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{level: LevelError + 1, out: io.Discard}
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	line := fmt.Sprintf("%s [%s] %s\n",
		time.Now().Format("15:04:05.000"), level, fmt.Sprintf(format, args...))
	_, _ = l.out.Write([]byte(line))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
