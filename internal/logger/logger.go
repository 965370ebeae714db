// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards output until Init is called,
// so packages can log freely from tests.
var Log = newDiscard()

// Options selects level, format and destination.
type Options struct {
	Level  string // logrus level name, "info" when empty or invalid
	Format string // "json" or "text"
	File   string // log file path; empty writes to stderr
}

// Init configures the global logger. The returned closer releases the log file.
// The terminal belongs to the renderer while the game runs, so a file is the
// usual destination.
func Init(opts Options) (io.Closer, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: opts.File != "",
		})
	}

	var closer io.Closer = io.NopCloser(nil)
	if opts.File == "" {
		l.SetOutput(os.Stderr)
	} else {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		l.SetOutput(f)
		closer = f
	}

	Log = l
	return closer, nil
}

// For returns an entry tagged with the subsystem name.
func For(subsystem string) *logrus.Entry {
	return Log.WithField("subsystem", subsystem)
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
