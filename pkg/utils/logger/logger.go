// Package logger configures the logrus logger used for diagnostic output.
//
// Operator-facing status lines go through notify; logrus carries the
// structured debug trail (statement names, timings, driver errors) that is
// only shown with --verbose.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05Z07:00"

// New returns a logger writing text entries to out.
// Verbose enables debug level; otherwise only warnings and errors are emitted.
func New(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
		TimestampFormat:  timestampFormat,
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}
