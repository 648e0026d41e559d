// Package logger builds charmbracelet/log loggers for the shell, the server and the banner.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger on stderr that follows the global log level.
// stdout is reserved for the IPC stream.
func New(prefix string) *log.Logger {
	return NewWriter(os.Stderr, prefix)
}

// NewWriter creates a plain logger on w that follows the global log level.
func NewWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a logger on w with explicit settings.
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
