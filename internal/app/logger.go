package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes plain timestamped lines.
type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// CharmLogger is a structured Logger; the component becomes a key on each line.
type CharmLogger struct {
	l *log.Logger
}

func NewCharmLogger(w io.Writer, debug bool) CharmLogger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return CharmLogger{l: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
		Prefix:          "streamclock",
	})}
}

func (c CharmLogger) Infof(component string, format string, args ...interface{}) {
	c.l.With("component", component).Infof(format, args...)
}

func (c CharmLogger) Errorf(component string, format string, args ...interface{}) {
	c.l.With("component", component).Errorf(format, args...)
}

// LogConfig selects where debug logs go.
type LogConfig struct {
	Debug bool
	// Dir holds the rotating log file; defaults to the working directory.
	Dir string
	// Stderr mirrors every line to stderr.
	Stderr bool
}

// NewLogger returns a NoopLogger unless debug logging is enabled, in which case
// lines go to a rotating streamclock-debug.log.
func NewLogger(cfg LogConfig) (Logger, io.Closer, error) {
	if !cfg.Debug {
		return NoopLogger{}, nopCloser{}, nil
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "streamclock-debug.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	var w io.Writer = file
	if cfg.Stderr {
		w = io.MultiWriter(os.Stderr, file)
	}
	return NewCharmLogger(w, true), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
