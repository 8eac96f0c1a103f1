// Package logger builds charmbracelet/log loggers for the completion
// tool. Everything writes to stderr: in server mode stdout carries the
// msgpack stream, so a stray log line there would corrupt the framing.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default returns a plain text logger at the global log level, used
// for interactive output like the CLI prompt.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:    prefix,
		Formatter: log.TextFormatter,
		Level:     log.GetLevel(),
	})
}

// NewWithConfig returns a logger with an explicit level and
// formatting, independent of the global level. The version banner
// uses this so it prints even when logging is dialed down.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
