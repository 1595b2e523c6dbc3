package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (l Level) String() string {
	return levelNames[l]
}

// ParseLevel maps a config value such as "debug" or "WARN" to a Level. Unknown values yield INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

type Logger struct {
	level     Level
	component string
	log       *log.Logger
}

func New(level Level) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter is New with a custom destination; tests use it to capture output.
func NewWithWriter(level Level, w io.Writer) *Logger {
	return &Logger{
		level: level,
		log:   log.New(w, "", 0),
	}
}

// Named returns a copy of the logger that tags every line with the component name.
func (l *Logger) Named(component string) *Logger {
	return &Logger{level: l.level, component: component, log: l.log}
}

func (l *Logger) formatMessage(level Level, format string, v ...interface{}) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, v...)
	if l.component != "" {
		return fmt.Sprintf("[%s] [%s] [%s] %s", timestamp, level, l.component, message)
	}
	return fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if l.level <= level {
		l.log.Print(l.formatMessage(level, format, v...))
	}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.logf(DEBUG, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.logf(INFO, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.logf(WARN, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.logf(ERROR, format, v...) }

func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatal(l.formatMessage(FATAL, format, v...))
}

// SetLevel changes the logging level
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns current logging level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Global logger instance
var defaultLogger = New(INFO)

// Default returns the process-wide logger.
func Default() *Logger { return defaultLogger }

// Package-level functions for easy access
func Debug(format string, v ...interface{}) { defaultLogger.Debug(format, v...) }
func Info(format string, v ...interface{})  { defaultLogger.Info(format, v...) }
func Warn(format string, v ...interface{})  { defaultLogger.Warn(format, v...) }
func Error(format string, v ...interface{}) { defaultLogger.Error(format, v...) }
func Fatal(format string, v ...interface{}) { defaultLogger.Fatal(format, v...) }

// SetGlobalLevel sets the level for the global logger. Call it once at startup.
func SetGlobalLevel(level Level) {
	defaultLogger.SetLevel(level)
}
