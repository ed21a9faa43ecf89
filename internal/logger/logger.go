package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Level controls which messages are written.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelPanic
)

var (
	mu       sync.RWMutex
	level    = LevelInfo
	stdlog   = log.New(os.Stderr, "", log.LstdFlags)
	levelTag = map[Level]string{
		LevelTrace: "TRACE",
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		LevelFatal: "FATAL",
		LevelPanic: "PANIC",
	}
)

// ParseLevel converts a level name into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "panic":
		return LevelPanic, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level: %q", s)
}

// SetLevel sets the minimum level that gets written.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// GetLevel returns the current minimum level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

func logf(l Level, format string, v ...interface{}) {
	if l < GetLevel() {
		return
	}
	stdlog.Printf("[%s] %s", levelTag[l], fmt.Sprintf(format, v...))
}

func Trace(format string, v ...interface{}) { logf(LevelTrace, format, v...) }

func Debug(format string, v ...interface{}) { logf(LevelDebug, format, v...) }

func Info(format string, v ...interface{}) { logf(LevelInfo, format, v...) }

func Warn(format string, v ...interface{}) { logf(LevelWarn, format, v...) }

func Error(format string, v ...interface{}) { logf(LevelError, format, v...) }

// Fatal logs at fatal level and exits the process.
func Fatal(format string, v ...interface{}) {
	logf(LevelFatal, format, v...)
	os.Exit(1)
}
