// Package logger builds charmbracelet/log loggers with this project's
// defaults, for output streams the global logger doesn't cover.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewWithConfig creates a stdout charm log with custom config. The global
// logger writes to stderr; this is for user-facing output like CLI results,
// which must stay separable from diagnostics.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
