package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu    sync.RWMutex
	std   = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	level = LevelInfo
)

// ParseLevel maps debug/info/warn/error to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Init sets the minimum level and output. A nil writer keeps the current output.
func Init(lvl string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(lvl)
	if w != nil {
		std.SetOutput(w)
	}
}

func Debugf(format string, args ...any) { write(LevelDebug, "DEBUG", format, args...) }

func Infof(format string, args ...any) { write(LevelInfo, "INFO", format, args...) }

func Warnf(format string, args ...any) { write(LevelWarn, "WARN", format, args...) }

func Errorf(format string, args ...any) { write(LevelError, "ERROR", format, args...) }

// Fatalf logs at error level and exits.
func Fatalf(format string, args ...any) {
	write(LevelError, "FATAL", format, args...)
	os.Exit(1)
}

func write(l Level, tag string, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l < level {
		return
	}
	std.Printf("[%s] %s", tag, fmt.Sprintf(format, args...))
}
