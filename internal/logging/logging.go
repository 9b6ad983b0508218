// Package logging configures the logrus logger both binaries share:
// -v (progress/info) and -w (warnings) are independent verbosity gates,
// matching the original tool's separate args.v/args.w flags, rather than
// collapsing them into a single log-level slider.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Logger with the two independent verbosity gates
// yamscan/yamshuf expose on the command line.
type Logger struct {
	*logrus.Logger
	verbose bool
	warn    bool
}

// New builds a Logger writing to w, with plain text output (no timestamps:
// these are short-lived CLI runs, not long-lived services).
func New(w io.Writer, verbose, warn bool) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return &Logger{Logger: l, verbose: verbose, warn: warn}
}

// Verbosef logs a progress message, gated by -v.
func (l *Logger) Verbosef(format string, args ...any) {
	if l.verbose {
		l.Infof(format, args...)
	}
}

// Warnf logs a diagnostic warning, gated by -w.
func (l *Logger) Warnf(format string, args ...any) {
	if l.warn {
		l.Logger.Warnf(format, args...)
	}
}

// Fatalf logs an error and returns it as a formatted error rather than
// exiting the process directly, so callers retain control of the
// process exit code the way the teacher's cmd/*/main.go pattern expects.
func (l *Logger) Fatalf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	l.Logger.Error(msg)
	return &FatalError{Message: msg}
}

// FatalError marks an error as a top-level, run-terminating failure.
type FatalError struct{ Message string }

func (e *FatalError) Error() string { return e.Message }
