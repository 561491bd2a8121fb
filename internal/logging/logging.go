// Package logging provides the leveled, prefixable logger used across the
// indexer, the daemon, and the CLI.
package logging

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	// Disable color when stderr isn't a terminal so daemon log files don't
	// fill up with escape codes.
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
}

// DebugEnabled controls whether Logger.Debug* calls produce output. It is
// set once at process startup from the --trace flag (see
// cmd/desktop-indexer).
var DebugEnabled bool

// Logger is the core logging type. A nil *Logger is valid and silently
// drops everything, so components can be handed a nil logger in tests
// without special-casing it.
type Logger struct {
	prefix string
}

// Root is the logger from which all other loggers derive.
var Root = &Logger{}

// Sublogger creates a new logger that prefixes its output with name, nested
// under the receiver's own prefix.
func (l *Logger) Sublogger(name string) *Logger {
	if l == nil {
		return nil
	}
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}
	return &Logger{prefix: prefix}
}

func (l *Logger) output(line string) {
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}
	log.Output(3, line)
}

// Printf logs informational output.
func (l *Logger) Printf(format string, v ...any) {
	if l != nil {
		l.output(fmt.Sprintf(format, v...))
	}
}

// Println logs informational output.
func (l *Logger) Println(v ...any) {
	if l != nil {
		l.output(fmt.Sprintln(v...))
	}
}

// Debugf logs diagnostic output, but only when debugging is enabled.
func (l *Logger) Debugf(format string, v ...any) {
	if l != nil && DebugEnabled {
		l.output(fmt.Sprintf(format, v...))
	}
}

// Warn logs a warning in yellow.
func (l *Logger) Warn(err error) {
	if l != nil {
		l.output(color.YellowString("warning: %v", err))
	}
}

// Error logs an error in red.
func (l *Logger) Error(err error) {
	if l != nil {
		l.output(color.RedString("error: %v", err))
	}
}
