package logging

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// LogLevel represents the level of logging
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = map[string]LogLevel{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

// String returns the lowercase name of the level
func (l LogLevel) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel converts a level name (debug, info, warn, error) to a LogLevel
func ParseLevel(name string) (LogLevel, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ErrorLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Logger provides leveled logging for the application
type Logger struct {
	output io.Writer
	level  LogLevel
	now    func() time.Time
}

// NewLogger creates a logger writing messages at or above level to output
func NewLogger(output io.Writer, level LogLevel) *Logger {
	if output == nil {
		output = io.Discard
	}
	return &Logger{
		output: output,
		level:  level,
		now:    time.Now,
	}
}

// NewDebugLogger creates a logger with DEBUG level enabled
func NewDebugLogger(output io.Writer) *Logger {
	return NewLogger(output, DebugLevel)
}

// Discard returns a logger that drops every message
func Discard() *Logger {
	return NewLogger(io.Discard, ErrorLevel)
}

// Level returns the minimum level written by the logger
func (l *Logger) Level() LogLevel {
	return l.level
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.level <= DebugLevel {
		l.log("DEBUG", msg, args...)
	}
}

// Info logs informational messages
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.level <= InfoLevel {
		l.log("INFO", msg, args...)
	}
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, args ...interface{}) {
	if l.level <= WarnLevel {
		l.log("WARN", msg, args...)
	}
}

// Error logs error messages
func (l *Logger) Error(msg string, args ...interface{}) {
	if l.level <= ErrorLevel {
		l.log("ERROR", msg, args...)
	}
}

// TimedOperation tracks and logs the duration of an operation
func (l *Logger) TimedOperation(operation string, fn func() error) error {
	l.Info("starting %s", operation)
	start := l.now()

	err := fn()
	duration := l.now().Sub(start)

	if err != nil {
		l.Error("%s failed after %v: %v", operation, duration, err)
	} else {
		l.Info("%s completed in %v", operation, duration)
	}

	return err
}

func (l *Logger) log(level, msg string, args ...interface{}) {
	timestamp := l.now().Format("15:04:05")
	fmt.Fprintf(l.output, "[%s] %s %s\n", level, timestamp, fmt.Sprintf(msg, args...))
}
