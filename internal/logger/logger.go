package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled messages with optional key-value fields. It is
// created once at process start and handed to whatever needs it; there is
// no package-global instance.
type Logger struct {
	out   *log.Logger
	level Level
}

func New(w io.Writer, level Level) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		level: level,
	}
}

// OpenFile builds a logger appending to the given file, creating it if
// absent. The caller owns the returned file handle.
func OpenFile(path string, level Level) (*Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	if l.level > LevelDebug {
		return
	}
	l.out.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	if l.level > LevelInfo {
		return
	}
	l.out.Printf("[INFO] %s%s", msg, formatFields(fields))
}

func (l *Logger) Error(err error, msg string, fields ...interface{}) {
	if err != nil {
		l.out.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
		return
	}
	l.out.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

func formatFields(fields []interface{}) string {
	if len(fields) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i+1 < len(fields); i += 2 {
		sb.WriteString(fmt.Sprintf(" %v=%v", fields[i], fields[i+1]))
	}
	if len(fields)%2 != 0 {
		sb.WriteString(fmt.Sprintf(" %v", fields[len(fields)-1]))
	}
	return sb.String()
}
