// Package logger provides the levelled console logger used by brandcheck
// commands and services.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders log messages by verbosity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelColors = map[Level]*color.Color{
	LevelTrace: color.New(color.FgHiBlack),
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgBlue),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

// ParseLevel converts a level name (case-insensitive) to a Level. Empty or
// unknown names yield LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return "INFO"
}

// Logger writes "[HH:MM:SS] [LEVEL] message" lines. It is safe for
// concurrent use. A nil *Logger discards everything.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	color bool
	now   func() time.Time
}

// New creates a Logger writing to w at the given minimum level. Level tags are
// colored only when w is os.Stdout or os.Stderr and color is not disabled.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		w:     w,
		level: level,
		color: isTerminal(w),
		now:   time.Now,
	}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		// color.NoColor already accounts for NO_COLOR and non-TTY output.
		return !color.NoColor
	}
	return false
}

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *Logger) Tracef(format string, args ...any) { l.logf(LevelTrace, format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	tag := level.String()
	if l.color {
		tag = levelColors[level].Sprint(tag)
	}
	ts := l.now().Format("15:04:05")
	_, _ = fmt.Fprintf(l.w, "[%s] [%s] %s\n", ts, tag, fmt.Sprintf(format, args...))
}
