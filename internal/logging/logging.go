// Package logging builds the application logger.
//
// The terminal belongs to the UI while the program runs, so log output goes
// to a file or is discarded.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the file logger.
type Options struct {
	Path   string
	Level  string
	Prefix string
}

// Logger wraps a charmbracelet logger and the file it writes to.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates a logger writing to opts.Path. An empty path yields a logger
// that discards everything.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}

	if opts.Path == "" {
		return &Logger{Logger: newLogger(io.Discard, level, opts.Prefix)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Logger{Logger: newLogger(f, level, opts.Prefix), file: f}, nil
}

// NewWithWriter creates a logger writing to w, mostly for tests.
func NewWithWriter(w io.Writer, level log.Level) *Logger {
	return &Logger{Logger: newLogger(w, level, "")}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

func newLogger(w io.Writer, level log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
